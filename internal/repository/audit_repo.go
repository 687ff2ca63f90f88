package repository

import (
	"spandan/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// List returns audit entries newest-first for the admin activity feed.
func (r *AuditLogRepository) List(page, limit int) ([]models.AuditLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var total int64
	r.db.Model(&models.AuditLog{}).Count(&total)
	var entries []models.AuditLog
	err := r.db.Preload("User").Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).Find(&entries).Error
	return entries, total, err
}
