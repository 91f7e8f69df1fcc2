package api

import (
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/ovella/internal/db"
	"github.com/terraincognita07/ovella/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	cookieSecure bool
	variant      services.Variant
	logger       *logrus.Logger
	sessions     *db.SessionRepository
	intervals    *db.BleedIntervalRepository
}

func NewHandler(database *gorm.DB, secretKey string, variant services.Variant, logger *logrus.Logger, cookieSecure bool) *Handler {
	return &Handler{
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		variant:      variant,
		logger:       logger,
		sessions:     db.NewSessionRepository(database),
		intervals:    db.NewBleedIntervalRepository(database),
	}
}
