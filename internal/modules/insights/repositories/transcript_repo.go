package repositories

import (
	"github.com/insightx-ai/insightx-be/internal/modules/insights/models"
	"gorm.io/gorm"
)

type TranscriptRepo interface {
	LogExchange(sessionID, message, reply, chartType string) error
	GetBySessionID(sessionID string, limit int) ([]models.ChatTranscript, error)
}

type transcriptRepo struct {
	db *gorm.DB
}

func NewTranscriptRepo(db *gorm.DB) TranscriptRepo {
	return &transcriptRepo{db: db}
}

func (r *transcriptRepo) LogExchange(sessionID, message, reply, chartType string) error {
	transcript := models.ChatTranscript{
		SessionID: sessionID,
		Message:   message,
		Reply:     reply,
		ChartType: chartType,
	}
	return r.db.Create(&transcript).Error
}

func (r *transcriptRepo) GetBySessionID(sessionID string, limit int) ([]models.ChatTranscript, error) {
	var transcripts []models.ChatTranscript
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Limit(limit).
		Find(&transcripts).Error
	return transcripts, err
}
