package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/modules/insights/repositories"
)

// AuditHandler exposes the persisted audit trail. Only registered when a
// database is configured.
type AuditHandler struct {
	uploads     repositories.UploadRepo
	transcripts repositories.TranscriptRepo
}

func NewAuditHandler(uploads repositories.UploadRepo, transcripts repositories.TranscriptRepo) *AuditHandler {
	return &AuditHandler{uploads: uploads, transcripts: transcripts}
}

// GetRecentUploads godoc
// @Summary Recent dataset uploads
// @Description Returns the most recent upload records with their stored profiles
// @Tags Audit
// @Produce json
// @Param limit query int false "Max records" default(10)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/uploads [get]
func (h *AuditHandler) GetRecentUploads(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	uploads, err := h.uploads.GetRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load uploads"})
	}
	return c.JSON(fiber.Map{"uploads": uploads})
}

// GetSessionTranscript godoc
// @Summary Persisted session transcript
// @Description Returns the stored exchanges of a session, including ones already pruned from memory
// @Tags Audit
// @Produce json
// @Param id path string true "Session ID"
// @Param limit query int false "Max records" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/transcripts/{id} [get]
func (h *AuditHandler) GetSessionTranscript(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	limit := c.QueryInt("limit", 50)
	transcripts, err := h.transcripts.GetBySessionID(sessionID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load transcript"})
	}
	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"exchanges":  transcripts,
	})
}
