package handlers

import (
	"encoding/json"

	"image-resizer/internal/domain/mapper"
	"image-resizer/internal/usecases"
	"image-resizer/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EventHandler struct {
	triggerService usecases.TriggerService
	log            *zap.Logger
}

func NewEventHandler(triggerService usecases.TriggerService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		triggerService: triggerService,
		log:            log,
	}
}

// HandleEvents
//
// Accepts an S3 event notification document ({"Records": [...]}), as sent by a
// bucket webhook target, and resizes every original it names. Per-size failures are
// part of the 200 response; only an unparseable body is rejected.
func (h *EventHandler) HandleEvents(c *fiber.Ctx) error {
	var event events.S3Event
	if err := json.Unmarshal(c.Body(), &event); err != nil {
		return errors.HandleError(c, h.log, errors.ErrInvalidEvent(err))
	}

	reports, err := h.triggerService.HandleS3Event(c.UserContext(), event)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	return c.JSON(mapper.ReportsToResponse(len(event.Records), reports))
}
