package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/core/llm"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type HealthHandler struct {
	llmService     *llm.Service
	datasetService *services.DatasetService
	chatService    *services.ChatService
}

func NewHealthHandler(llmService *llm.Service, datasetService *services.DatasetService, chatService *services.ChatService) *HealthHandler {
	return &HealthHandler{
		llmService:     llmService,
		datasetService: datasetService,
		chatService:    chatService,
	}
}

// GetHealth godoc
// @Summary Service health check
// @Description Reports the AI provider, model, and whether a dataset is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	var filename interface{}
	loaded := false
	if snap := h.datasetService.Current(); snap != nil {
		loaded = true
		filename = snap.Filename
	}

	return c.JSON(fiber.Map{
		"status":        "ok",
		"provider":      h.llmService.GetProviderName(),
		"model":         h.llmService.GetModel(),
		"csv_loaded":    loaded,
		"csv_filename":  filename,
		"live_sessions": h.chatService.SessionCount(),
	})
}
