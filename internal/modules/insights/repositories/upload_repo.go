package repositories

import (
	"github.com/insightx-ai/insightx-be/internal/modules/insights/models"
	"gorm.io/gorm"
)

type UploadRepo interface {
	LogUpload(upload *models.DatasetUpload) error
	GetRecent(limit int) ([]models.DatasetUpload, error)
}

type uploadRepo struct {
	db *gorm.DB
}

func NewUploadRepo(db *gorm.DB) UploadRepo {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) LogUpload(upload *models.DatasetUpload) error {
	return r.db.Create(upload).Error
}

func (r *uploadRepo) GetRecent(limit int) ([]models.DatasetUpload, error) {
	var uploads []models.DatasetUpload
	err := r.db.Order("created_at DESC").Limit(limit).Find(&uploads).Error
	return uploads, err
}
