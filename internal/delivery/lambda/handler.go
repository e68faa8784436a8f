package lambda

import (
	"context"

	"image-resizer/internal/domain/dto"
	"image-resizer/internal/domain/mapper"
	"image-resizer/internal/usecases"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type Handler struct {
	triggerService usecases.TriggerService
	log            *zap.Logger
}

func NewHandler(triggerService usecases.TriggerService, log *zap.Logger) *Handler {
	return &Handler{
		triggerService: triggerService,
		log:            log.Named("lambda"),
	}
}

// Handle is registered with lambda.Start. It only fails when the invocation deadline
// passes; resize and upload errors are reported in the response.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) (dto.InvocationResponse, error) {
	reports, err := h.triggerService.HandleS3Event(ctx, event)
	resp := mapper.ReportsToResponse(len(event.Records), reports)
	if err != nil {
		h.log.Error("invocation aborted", zap.Int("records", len(event.Records)), zap.Error(err))
		return resp, err
	}
	_ = h.log.Sync()
	return resp, nil
}
