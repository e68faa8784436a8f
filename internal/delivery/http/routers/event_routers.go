package routers

import (
	"image-resizer/internal/delivery/http/handlers"
	"image-resizer/internal/usecases"
	"image-resizer/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupEventRoutes(app *fiber.App, triggerService usecases.TriggerService, log *zap.Logger) {
	eventHandler := handlers.NewEventHandler(triggerService, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": constants.StatusOK})
	})

	// Routes:
	api := app.Group("/api/v1")
	api.Post("/events", eventHandler.HandleEvents)
}
