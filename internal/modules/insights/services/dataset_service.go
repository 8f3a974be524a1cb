package services

import (
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/insightx-ai/insightx-be/internal/core/dataset"
	"github.com/insightx-ai/insightx-be/internal/core/llm"
	"github.com/insightx-ai/insightx-be/internal/core/profiler"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/models"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/repositories"
	"github.com/insightx-ai/insightx-be/internal/shared/utils"
)

// Snapshot is the immutable state derived from one accepted upload: the
// parsed dataset, its profile, and the grounding prompt built from it.
// Readers get the whole snapshot or none; it is never mutated in place.
type Snapshot struct {
	Filename     string
	Dataset      *dataset.Dataset
	Summary      *profiler.Summary
	SystemPrompt string
	LoadedAt     time.Time
}

// DatasetService owns the current snapshot. Uploads replace it wholesale
// via an atomic pointer swap, so a concurrent dashboard read or chat
// grounding build can never observe a half-updated profile. A rejected
// upload leaves the previous snapshot untouched.
type DatasetService struct {
	current    atomic.Pointer[Snapshot]
	opts       profiler.Options
	uploadRepo repositories.UploadRepo // nil when persistence is disabled
}

// NewDatasetService creates the dataset service. uploadRepo may be nil.
func NewDatasetService(opts profiler.Options, uploadRepo repositories.UploadRepo) *DatasetService {
	return &DatasetService{opts: opts, uploadRepo: uploadRepo}
}

// Load parses, profiles and installs an uploaded file as the current
// snapshot. On any error the previous snapshot stays active.
func (s *DatasetService) Load(filename string, r io.Reader) (*Snapshot, error) {
	ds, err := dataset.ReadFile(filename, r)
	if err != nil {
		return nil, err
	}
	return s.LoadDataset(filename, ds)
}

// LoadDataset profiles an already-parsed dataset and installs it.
func (s *DatasetService) LoadDataset(filename string, ds *dataset.Dataset) (*Snapshot, error) {
	summary, err := profiler.Profile(ds, s.opts)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", filename, err)
	}

	snap := &Snapshot{
		Filename:     filename,
		Dataset:      ds,
		Summary:      summary,
		SystemPrompt: llm.BuildSystemPrompt(filename, summary),
		LoadedAt:     time.Now().UTC(),
	}
	s.current.Store(snap)

	s.logUpload(snap)
	return snap, nil
}

// Current returns the active snapshot, or nil when nothing is loaded.
func (s *DatasetService) Current() *Snapshot {
	return s.current.Load()
}

// logUpload persists the upload record, best effort.
func (s *DatasetService) logUpload(snap *Snapshot) {
	if s.uploadRepo == nil {
		return
	}
	profileJSON, err := json.Marshal(snap.Summary)
	if err != nil {
		utils.LogError("failed to marshal profile for audit", err, map[string]interface{}{"filename": snap.Filename})
		return
	}
	record := &models.DatasetUpload{
		Filename:    snap.Filename,
		RowCount:    snap.Summary.RowCount,
		ColumnCount: snap.Summary.ColumnCount,
		Profile:     profileJSON,
	}
	if err := s.uploadRepo.LogUpload(record); err != nil {
		utils.LogError("failed to persist upload record", err, map[string]interface{}{"filename": snap.Filename})
	}
}
