package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumeai/resume-assistant/internal/services"
)

type JobMatchHandler struct {
	sessions     services.SessionService
	matcher      services.JobMatchService
	hideInternal bool
}

func NewJobMatchHandler(
	sessions services.SessionService,
	matcher services.JobMatchService,
	hideInternal bool,
) *JobMatchHandler {
	return &JobMatchHandler{
		sessions:     sessions,
		matcher:      matcher,
		hideInternal: hideInternal,
	}
}

// HandleJobMatch handles POST /jobmatch
func (h *JobMatchHandler) HandleJobMatch(c *fiber.Ctx) error {
	userID, err := requiredFormValue(c, formUserID)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}
	jobDescription, err := requiredFormValue(c, formJobDescription)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}
	ctx := requestContext(c, userID)

	resumeText, err := h.sessions.ResumeText(ctx, userID)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	result, err := h.matcher.Match(ctx, resumeText, jobDescription)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	return c.JSON(result)
}
