package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"xerosync/internal/gateway"
	"xerosync/internal/http/middleware"
	"xerosync/internal/service"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return s
}

// writeError writes the error envelope. message must be safe to show to
// clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError maps a service failure onto a response. The error text
// itself only reaches the access log.
func writeServiceError(c *fiber.Ctx, err error) error {
	c.Locals(middleware.ErrorLocalKey, err.Error())

	var apiErr *gateway.APIError
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrInvalidEndpoint):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ENDPOINT", "endpoint does not support attachments")
	case errors.Is(err, service.ErrInvalidFileName):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_NAME", "invalid file name")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.As(err, &apiErr):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "xero request failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler is the fiber global error handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
