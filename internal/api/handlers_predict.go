package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ovella/internal/services"
)

type predictionInput struct {
	Start     string  `json:"start" form:"start"`
	BleedDays float64 `json:"bleed_days" form:"bleed_days"`
	CycleDays float64 `json:"cycle_days" form:"cycle_days"`
}

func (handler *Handler) Predict(c *fiber.Ctx) error {
	input := predictionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	start, err := parseDayField(input.Start)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	if message, ok := rawAverageBoundsError(input.BleedDays, input.CycleDays); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	prediction, err := services.Predict(start, input.BleedDays, input.CycleDays, handler.variant)
	if err != nil {
		return handler.coreError(c, err)
	}

	response := fiber.Map{"prediction": prediction}
	if handler.variant.RichFertileWindow {
		response["export"] = services.BuildExportDocument(prediction)
	}
	return c.JSON(response)
}

// ExportPrediction recomputes a prediction from query parameters and serves
// the calculation document as a download.
func (handler *Handler) ExportPrediction(c *fiber.Ctx) error {
	start, err := parseDayField(c.Query("start"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	bleed, err := strconv.ParseFloat(c.Query("bleed"), 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid bleed value")
	}
	cycle, err := strconv.ParseFloat(c.Query("cycle"), 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle value")
	}
	if message, ok := rawAverageBoundsError(bleed, cycle); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	prediction, err := services.Predict(start, bleed, cycle, handler.variant)
	if err != nil {
		return handler.coreError(c, err)
	}

	document, err := json.MarshalIndent(services.BuildExportDocument(prediction), "", "    ")
	if err != nil {
		handler.logger.WithError(err).Error("encode export document failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", services.ExportFileName))
	return c.Send(document)
}

func rawAverageBoundsError(bleed float64, cycle float64) (string, bool) {
	if bleed < 0 || bleed > maxRawBleedDays {
		return fmt.Sprintf("bleed average must be within 0-%g days", maxRawBleedDays), false
	}
	if cycle < 0 || cycle > maxRawCycleDays {
		return fmt.Sprintf("cycle average must be within 0-%g days", maxRawCycleDays), false
	}
	return "", true
}
