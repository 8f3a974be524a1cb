package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// PostChat godoc
// @Summary Send a chat message
// @Description Proxies the message to the AI with the current dataset grounding context and returns the reply plus a chart hint
// @Tags Chat
// @Accept json
// @Produce json
// @Param data body ChatRequest true "Chat message"
// @Success 200 {object} services.ChatResult
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) PostChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	result, err := h.chatService.Chat(c.Context(), req.SessionID, req.Message)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI API error: " + err.Error()})
	}
	return c.JSON(result)
}

// GetOverview godoc
// @Summary Executive overview
// @Description Generates the executive overview in a fresh session; called once on page load
// @Tags Chat
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/overview [get]
func (h *ChatHandler) GetOverview(c *fiber.Ctx) error {
	result, err := h.chatService.Overview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI API error: " + err.Error()})
	}
	return c.JSON(fiber.Map{
		"overview":   result.Reply,
		"session_id": result.SessionID,
	})
}
