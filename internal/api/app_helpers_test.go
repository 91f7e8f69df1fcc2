package api

import (
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/ovella/internal/db"
	"github.com/terraincognita07/ovella/internal/services"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, variant services.Variant) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ovella-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewHandler(database, "test-secret-key", variant, logger, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func sessionCookieFromResponse(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	t.Fatalf("expected %s cookie in response", sessionCookieName)
	return ""
}
