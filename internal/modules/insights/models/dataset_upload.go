package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatasetUpload records one accepted dataset upload together with the
// profile computed for it, stored as JSON for later inspection.
type DatasetUpload struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Filename    string         `gorm:"type:text;not null" json:"filename"`
	RowCount    int            `gorm:"not null" json:"row_count"`
	ColumnCount int            `gorm:"not null" json:"column_count"`
	Profile     datatypes.JSON `gorm:"type:jsonb" json:"profile"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (DatasetUpload) TableName() string {
	return "insights_dataset_uploads"
}

// BeforeCreate sets UUID before creating
func (d *DatasetUpload) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
