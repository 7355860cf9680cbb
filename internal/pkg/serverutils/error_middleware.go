package serverutils

import (
	"errors"

	"project-finder-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindValidation:     fiber.StatusBadRequest,
	apperrors.KindNotFound:       fiber.StatusNotFound,
	apperrors.KindUnavailable:    fiber.StatusServiceUnavailable,
	apperrors.KindTransformation: fiber.StatusBadGateway,
	apperrors.KindNoProgress:     fiber.StatusUnprocessableEntity,
}

// ErrorHandlerMiddleware maps typed failures onto HTTP statuses so
// controllers can just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			status, ok := kindStatus[appErr.Kind]
			if !ok {
				status = fiber.StatusInternalServerError
			}
			return ctx.Status(status).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
