package repository

import (
	"errors"

	"spandan/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImpactRepository struct {
	db *gorm.DB
}

func NewImpactRepository(db *gorm.DB) *ImpactRepository {
	return &ImpactRepository{db: db}
}

func (r *ImpactRepository) ListYears() ([]models.ImpactYear, error) {
	var years []models.ImpactYear
	err := r.db.Order("year DESC").Find(&years).Error
	return years, err
}

func (r *ImpactRepository) GetYearByID(id uint) (*models.ImpactYear, error) {
	var y models.ImpactYear
	if err := r.db.First(&y, id).Error; err != nil {
		return nil, err
	}
	return &y, nil
}

func (r *ImpactRepository) YearExists(year int, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.ImpactYear{}).Where("year = ?", year)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *ImpactRepository) CreateYear(y *models.ImpactYear) error {
	return r.db.Create(y).Error
}

func (r *ImpactRepository) UpdateYear(y *models.ImpactYear) error {
	return r.db.Model(y).Select("*").Omit("created_at").Updates(y).Error
}

func (r *ImpactRepository) DeleteYear(id uint) error {
	res := r.db.Delete(&models.ImpactYear{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetSummary returns the singleton summary row, zero-valued if never written.
func (r *ImpactRepository) GetSummary() (*models.ImpactSummary, error) {
	var s models.ImpactSummary
	err := r.db.First(&s, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ImpactSummary{ID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ImpactRepository) UpsertSummary(s *models.ImpactSummary) error {
	s.ID = 1
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(s).Error
}
