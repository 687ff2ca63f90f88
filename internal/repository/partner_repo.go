package repository

import (
	"spandan/internal/models"

	"gorm.io/gorm"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Create(p *models.Partner) error {
	return r.db.Create(p).Error
}

func (r *PartnerRepository) Update(p *models.Partner) error {
	return r.db.Model(p).Select("*").Omit("created_at").Updates(p).Error
}

func (r *PartnerRepository) GetByID(id uint) (*models.Partner, error) {
	var p models.Partner
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepository) List() ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.Order("sort_order ASC, name ASC").Find(&partners).Error
	return partners, err
}

func (r *PartnerRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Partner{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
