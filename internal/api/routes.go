package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.SessionRequired)

	history := api.Group("/history")
	history.Get("", handler.GetHistory)
	history.Post("/entries", handler.AddHistoryEntry)
	history.Delete("", handler.ResetHistory)

	api.Post("/predict", handler.Predict)
	api.Get("/predict/export", handler.ExportPrediction)
}
