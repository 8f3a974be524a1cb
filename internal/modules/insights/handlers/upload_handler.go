package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/insightx-ai/insightx-be/internal/core/profiler"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type UploadHandler struct {
	datasetService *services.DatasetService
}

func NewUploadHandler(datasetService *services.DatasetService) *UploadHandler {
	return &UploadHandler{datasetService: datasetService}
}

// UploadDataset godoc
// @Summary Upload a dataset
// @Description Hot-swaps the active dataset: parses the file, profiles it, and rebuilds the grounding context. A rejected upload leaves the previous dataset active.
// @Tags Dataset
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/upload [post]
func (h *UploadHandler) UploadDataset(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not open uploaded file"})
	}
	defer file.Close()

	snap, err := h.datasetService.Load(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, profiler.ErrEmptyDataset) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dataset is empty"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":      "Dataset loaded successfully",
		"filename":     snap.Filename,
		"rows":         snap.Summary.RowCount,
		"columns":      snap.Summary.ColumnCount,
		"column_names": snap.Dataset.Columns,
	})
}

// GetProfile godoc
// @Summary Current dataset profile
// @Description Returns the full profile summary of the active dataset for the dashboard renderer
// @Tags Dataset
// @Produce json
// @Success 200 {object} profiler.Summary
// @Failure 404 {object} map[string]string
// @Router /api/profile [get]
func (h *UploadHandler) GetProfile(c *fiber.Ctx) error {
	snap := h.datasetService.Current()
	if snap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no dataset loaded"})
	}
	return c.JSON(snap.Summary)
}
