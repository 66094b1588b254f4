package errors

import (
	"errors"

	"github.com/fintrack/ledger-service/internal/constants"
	"github.com/fintrack/ledger-service/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	// Not-found keeps the exact body shape clients assert on.
	if err.Code == constants.ErrCodeTransactionNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": constants.GetErrorMessage(err.Code),
		})
	}

	statusMap := map[string]int{
		constants.ErrCodeInvalidTransactionID: fiber.StatusBadRequest,
		constants.ErrCodeSessionRequired:      fiber.StatusUnauthorized,
		constants.ErrCodeOperationFailed:      fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
