package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/core/analytics"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type DashboardHandler struct {
	datasetService *services.DatasetService
}

func NewDashboardHandler(datasetService *services.DatasetService) *DashboardHandler {
	return &DashboardHandler{datasetService: datasetService}
}

// GetCharts godoc
// @Summary Dashboard chart payloads
// @Description Returns the active dataset's profile as ready-to-render chart data (stat cards, histogram, time series, category pies)
// @Tags Dataset
// @Produce json
// @Success 200 {object} analytics.Dashboard
// @Failure 404 {object} map[string]string
// @Router /api/charts [get]
func (h *DashboardHandler) GetCharts(c *fiber.Ctx) error {
	snap := h.datasetService.Current()
	if snap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no dataset loaded"})
	}
	return c.JSON(analytics.BuildDashboard(snap.Summary))
}
