package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ovella/internal/models"
	"github.com/terraincognita07/ovella/internal/services"
)

type historyEntryInput struct {
	Start string `json:"start" form:"start"`
	End   string `json:"end" form:"end"`
}

type historyEntryView struct {
	ID           uint   `json:"id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	DurationDays int    `json:"duration_days"`
}

func (handler *Handler) AddHistoryEntry(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no session")
	}

	input := historyEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	start, err := parseDayField(input.Start)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	end, err := parseDayField(input.End)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}
	if end.Before(start) {
		return apiError(c, fiber.StatusBadRequest, "end date before start date")
	}

	duration, err := services.ValidateBleedEntry(start, end)
	if err != nil {
		return handler.coreError(c, err)
	}

	interval := models.BleedInterval{
		SessionID: session.ID,
		StartDate: services.DateOnly(start),
		EndDate:   services.DateOnly(end),
		CreatedAt: time.Now(),
	}
	if err := handler.intervals.Create(&interval); err != nil {
		handler.logger.WithError(err).Error("store bleed interval failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to store entry")
	}

	return c.Status(fiber.StatusCreated).JSON(historyView(interval, duration))
}

func (handler *Handler) GetHistory(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no session")
	}

	intervals, err := handler.intervals.ListBySession(session.ID)
	if err != nil {
		handler.logger.WithError(err).Error("list bleed intervals failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}

	averages, err := services.ProcessHistory(intervals, handler.variant)
	if err != nil {
		// Entries are validated on insert, so a failure here is a defect.
		return handler.coreError(c, err)
	}

	entries := make([]historyEntryView, 0, len(intervals))
	for _, interval := range intervals {
		entries = append(entries, historyView(interval, interval.DurationDays()))
	}

	return c.JSON(fiber.Map{
		"entries":  entries,
		"averages": averages,
		"variant":  handler.variant.Name,
	})
}

func (handler *Handler) ResetHistory(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no session")
	}

	if err := handler.intervals.DeleteBySession(session.ID); err != nil {
		handler.logger.WithError(err).Error("reset history failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to reset history")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func historyView(interval models.BleedInterval, duration int) historyEntryView {
	return historyEntryView{
		ID:           interval.ID,
		Start:        interval.StartDate.Format("2006-01-02"),
		End:          interval.EndDate.Format("2006-01-02"),
		DurationDays: duration,
	}
}
