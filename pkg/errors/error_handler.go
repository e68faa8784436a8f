package errors

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleError writes err as a JSON error body. Only the code and message reach the client.
func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	if re, ok := err.(*ResizeError); ok {
		if re.Err != nil {
			log.Warn("request failed", zap.String("code", re.Code), zap.Error(re.Err))
		}

		var status int
		switch re.Code {
		case CodeInvalidEvent:
			status = fiber.StatusBadRequest
		case CodeSourceTooLarge:
			status = fiber.StatusRequestEntityTooLarge
		case CodeUnsupportedFormat:
			status = fiber.StatusUnsupportedMediaType
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   re.Code,
			"message": re.Message,
		})
	}

	log.Error("unexpected error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "internal server error",
	})
}
