package handlers

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/services"
)

const (
	formUserID         = "user_id"
	formFile           = "file"
	formMessage        = "message"
	formJobDescription = "job_description"
)

// requiredFormValue returns the trimmed form value or ErrMissingField.
func requiredFormValue(c *fiber.Ctx, key string) (string, error) {
	value := strings.TrimSpace(c.FormValue(key))
	if value == "" {
		return "", fmt.Errorf("%w: %s", services.ErrMissingField, key)
	}
	return value, nil
}

// readResumeUpload validates the multipart resume upload and returns its bytes.
func readResumeUpload(c *fiber.Ctx, maxFileSize int64) ([]byte, error) {
	fileHeader, err := c.FormFile(formFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", services.ErrMissingField, formFile)
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return nil, fmt.Errorf("%w: %q", services.ErrInvalidFileType, fileHeader.Filename)
	}

	if fileHeader.Size == 0 {
		return nil, services.ErrEmptyFile
	}
	if fileHeader.Size > maxFileSize {
		return nil, fmt.Errorf("%w: max size is %d bytes", services.ErrFileTooLarge, maxFileSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > maxFileSize {
		return nil, fmt.Errorf("%w: max size is %d bytes", services.ErrFileTooLarge, maxFileSize)
	}
	if len(data) == 0 {
		return nil, services.ErrEmptyFile
	}
	return data, nil
}

// requestContext carries the request id and user id into service logs.
func requestContext(c *fiber.Ctx, userID string) context.Context {
	fields := map[string]any{"user_id": userID}
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		fields["request_id"] = id
	}
	ctx := logger.WithFields(c.UserContext(), fields)
	c.SetUserContext(ctx)
	return ctx
}
