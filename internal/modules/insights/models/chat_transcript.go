package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatTranscript records one question/answer exchange of a chat session.
// Best-effort audit trail; the live session store is in memory.
type ChatTranscript struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID string    `gorm:"type:text;not null;index" json:"session_id"`
	Message   string    `gorm:"type:text" json:"message"`
	Reply     string    `gorm:"type:text" json:"reply"`
	ChartType string    `gorm:"type:text" json:"chart_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (ChatTranscript) TableName() string {
	return "insights_chat_transcripts"
}

// BeforeCreate sets UUID before creating
func (c *ChatTranscript) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
