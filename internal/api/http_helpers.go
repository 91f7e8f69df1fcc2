package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ovella/internal/services"
)

// Sanity bounds the presentation contract promises to enforce before the core
// sees raw averages.
const (
	maxRawBleedDays = 15.0
	maxRawCycleDays = 50.0
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// coreError maps a core failure onto the wire: validation failures are the
// caller's problem, anything else is a defect.
func (handler *Handler) coreError(c *fiber.Ctx, err error) error {
	if services.IsValidationError(err) {
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	handler.logger.WithError(err).Error("calculation failed unexpectedly")
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func parseDayField(value string) (time.Time, error) {
	return services.ParseDay(value)
}
