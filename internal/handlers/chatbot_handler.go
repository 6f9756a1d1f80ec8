package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/services"
)

type ChatbotHandler struct {
	sessions     services.SessionService
	chat         services.ChatService
	maxFileSize  int64
	hideInternal bool
}

func NewChatbotHandler(
	sessions services.SessionService,
	chat services.ChatService,
	maxFileSize int64,
	hideInternal bool,
) *ChatbotHandler {
	return &ChatbotHandler{
		sessions:     sessions,
		chat:         chat,
		maxFileSize:  maxFileSize,
		hideInternal: hideInternal,
	}
}

// HandleLoad handles POST /chatbot/load
func (h *ChatbotHandler) HandleLoad(c *fiber.Ctx) error {
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

	return c.JSON(models.LoadResponse{Message: "Resume loaded successfully"})
}

// HandleRespond handles POST /chatbot/respond
func (h *ChatbotHandler) HandleRespond(c *fiber.Ctx) error {
	userID, err := requiredFormValue(c, formUserID)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}
	message, err := requiredFormValue(c, formMessage)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}
	ctx := requestContext(c, userID)

	reply, err := h.chat.Respond(ctx, userID, message)
	if err != nil {
		return writeError(c, err, h.hideInternal)
	}

	return c.JSON(models.ChatResponse{Response: reply})
}
