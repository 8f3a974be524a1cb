package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type SessionHandler struct {
	chatService *services.ChatService
}

func NewSessionHandler(chatService *services.ChatService) *SessionHandler {
	return &SessionHandler{chatService: chatService}
}

// GetSession godoc
// @Summary Get session history
// @Description Returns the conversation history of a session, with injected live stats stripped
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/session/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	history, ok := h.chatService.History(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"messages":   history,
	})
}

// ClearSession godoc
// @Summary Clear session history
// @Description Deletes the conversation history of a session (the "New Chat" button)
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string
// @Router /api/session/{id} [delete]
func (h *SessionHandler) ClearSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	h.chatService.Clear(sessionID)
	return c.JSON(fiber.Map{
		"message":    "Session cleared",
		"session_id": sessionID,
	})
}
