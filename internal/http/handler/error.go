package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"runbot/internal/http/middleware"
	"runbot/internal/service"
	"runbot/internal/storage"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps service and storage errors onto HTTP responses.
// Validation problems are safe to echo; anything unrecognized stays a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var quotaErr *storage.QuotaExceededError

	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrNoMedia):
		return writeError(c, fiber.StatusNotFound, "NO_MEDIA", "submission has no media")
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
	case errors.As(err, &quotaErr):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "QUOTA_EXCEEDED", quotaErr.Error())
	case errors.Is(err, storage.ErrInvalidFilename):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "invalid filename")
	case errors.Is(err, storage.ErrUnsupportedCategory):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_CATEGORY", "unsupported file category")
	case errors.Is(err, storage.ErrSweepRunning):
		return writeError(c, fiber.StatusConflict, "CLEANUP_IN_PROGRESS", "a cleanup sweep is already running")
	case errors.Is(err, service.ErrIDRequired),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			if message == "" {
				message = "unauthorized"
			}
			return writeError(c, status, "UNAUTHORIZED", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
