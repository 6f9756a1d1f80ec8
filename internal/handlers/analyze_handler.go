package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumeai/resume-assistant/internal/services"
)

type AnalyzeHandler struct {
	sessions     services.SessionService
	analyzer     services.AnalyzerService
	maxFileSize  int64
	hideInternal bool
}

func NewAnalyzeHandler(
	sessions services.SessionService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
	hideInternal bool,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		sessions:     sessions,
		analyzer:     analyzer,
		maxFileSize:  maxFileSize,
		hideInternal: hideInternal,
	}
}

// HandleAnalyze handles POST /analyze. The upload is also stored as the
// user's resume so the chatbot and job match can use it afterwards.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	userID, err := requiredFormValue(c, formUserID)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}
	ctx := requestContext(c, userID)

	data, err := readResumeUpload(c, h.maxFileSize)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	if err := h.sessions.StoreResume(ctx, userID, data); err != nil {
		return writeError(c, err, h.hideInternal)
	}

	result, err := h.analyzer.Analyze(ctx, data)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	return c.JSON(result)
}
