package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/services"
)

type RewriteHandler struct {
	sessions     services.SessionService
	rewriter     services.RewriteService
	hideInternal bool
}

func NewRewriteHandler(
	sessions services.SessionService,
	rewriter services.RewriteService,
	hideInternal bool,
) *RewriteHandler {
	return &RewriteHandler{
		sessions:     sessions,
		rewriter:     rewriter,
		hideInternal: hideInternal,
	}
}

// HandleRewrite handles POST /rewrite
func (h *RewriteHandler) HandleRewrite(c *fiber.Ctx) error {
	userID, err := requiredFormValue(c, formUserID)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}
	ctx := requestContext(c, userID)

	resumeText, err := h.sessions.ResumeText(ctx, userID)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	rewritten, err := h.rewriter.Rewrite(ctx, resumeText)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	return c.JSON(models.RewriteResponse{RewrittenResume: rewritten})
}
