package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/core/export"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type ExportHandler struct {
	datasetService *services.DatasetService
	exportService  *export.Service
}

func NewExportHandler(datasetService *services.DatasetService, exportService *export.Service) *ExportHandler {
	return &ExportHandler{datasetService: datasetService, exportService: exportService}
}

// ExportProfile godoc
// @Summary Export the dataset profile
// @Description Renders the active dataset's profile as a downloadable report
// @Tags Dataset
// @Produce application/octet-stream
// @Param format query string false "excel, pdf or csv" default(excel)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/export [get]
func (h *ExportHandler) ExportProfile(c *fiber.Ctx) error {
	snap := h.datasetService.Current()
	if snap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no dataset loaded"})
	}

	format := export.Format(c.Query("format", string(export.FormatExcel)))
	report := export.BuildReport(snap.Filename, snap.Summary)

	data, contentType, ext, err := h.exportService.Export(report, format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	base := strings.TrimSuffix(snap.Filename, ".csv")
	base = strings.TrimSuffix(base, ".xlsx")
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_profile%s"`, base, ext))
	return c.Send(data)
}
