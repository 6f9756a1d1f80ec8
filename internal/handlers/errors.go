package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/repositories"
	"resumeai/resume-assistant/internal/services"
)

const (
	msgSessionNotFound = "No resume found for this user_id. Upload a resume first."
	msgInternalError   = "Something went wrong while processing your request. Please try again."
)

// StatusFor maps a service error to the HTTP status returned to the caller.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrPageLimitExceeded),
		errors.Is(err, services.ErrInvalidFileType),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrEmptyFile),
		errors.Is(err, services.ErrMissingField):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrSessionNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError logs err and writes the {"error", "code"} body. Internal errors
// keep their detail unless hideInternal is set.
func writeError(c *fiber.Ctx, err error, hideInternal bool) error {
	code := StatusFor(err)

	message := err.Error()
	switch {
	case code == fiber.StatusNotFound:
		message = msgSessionNotFound
	case code == fiber.StatusInternalServerError && hideInternal:
		message = msgInternalError
	}

	event := logger.Ctx(c.UserContext()).Warn()
	if code == fiber.StatusInternalServerError {
		event = logger.Ctx(c.UserContext()).Error()
	}
	event.Err(err).
		Int("status", code).
		Str("path", c.Path()).
		Msg("request failed")

	return c.Status(code).JSON(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
