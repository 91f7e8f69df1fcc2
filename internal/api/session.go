package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/terraincognita07/ovella/internal/models"
)

const (
	sessionCookieName = "ovella_session"
	sessionTokenTTL   = 7 * 24 * time.Hour
	contextSessionKey = "session"
)

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionRequired resolves the calculator session from the signed cookie,
// creating a fresh anonymous session when the cookie is missing, invalid, or
// points at a purged session.
func (handler *Handler) SessionRequired(c *fiber.Ctx) error {
	session, err := handler.resolveSession(c)
	if err != nil {
		session, err = handler.startSession(c)
		if err != nil {
			handler.logger.WithError(err).Error("session bootstrap failed")
			return apiError(c, fiber.StatusInternalServerError, "session unavailable")
		}
	}

	c.Locals(contextSessionKey, session)
	return c.Next()
}

func currentSession(c *fiber.Ctx) (models.Session, bool) {
	session, ok := c.Locals(contextSessionKey).(models.Session)
	return session, ok
}

func (handler *Handler) resolveSession(c *fiber.Ctx) (models.Session, error) {
	rawToken := strings.TrimSpace(c.Cookies(sessionCookieName))
	if rawToken == "" {
		return models.Session{}, errors.New("missing session cookie")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return models.Session{}, errors.New("invalid session token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return models.Session{}, errors.New("session token expired")
	}

	session, found, err := handler.sessions.FindByID(claims.SessionID)
	if err != nil {
		return models.Session{}, err
	}
	if !found {
		return models.Session{}, errors.New("session not found")
	}

	if err := handler.sessions.Touch(session.ID, time.Now()); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (handler *Handler) startSession(c *fiber.Ctx) (models.Session, error) {
	now := time.Now()
	session := models.Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := handler.sessions.Create(&session); err != nil {
		return models.Session{}, err
	}

	token, err := handler.buildSessionToken(session.ID, sessionTokenTTL)
	if err != nil {
		return models.Session{}, err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(sessionTokenTTL),
	})
	return session, nil
}

func (handler *Handler) buildSessionToken(sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
