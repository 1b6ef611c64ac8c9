package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pageant-coach-be/pkg/llm"
)

// ErrorHandlerMiddleware converts errors that escape a handler into the
// standard envelope. Generation failures carry their kind so a caller
// can tell an auth/config problem from a transient one; internal
// prompt text is never echoed back.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var genErr *llm.GenerationError
		if errors.As(err, &genErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(
				ErrorResponse(fiber.StatusBadGateway, "generation failed ("+string(genErr.Kind)+")"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
