package repository

import (
	"spandan/internal/models"

	"gorm.io/gorm"
)

type GalleryFilter struct {
	Category  string
	Year      int
	Published *bool
}

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(p *models.GalleryPhoto) error {
	return r.db.Create(p).Error
}

func (r *GalleryRepository) Update(p *models.GalleryPhoto) error {
	return r.db.Model(p).Select("*").Omit("created_at").Updates(p).Error
}

func (r *GalleryRepository) GetByID(id uint) (*models.GalleryPhoto, error) {
	var p models.GalleryPhoto
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List orders earliest-first by photo date; the gallery reads as a timeline,
// unlike the newest-first content lists.
func (r *GalleryRepository) List(f GalleryFilter) ([]models.GalleryPhoto, error) {
	q := r.db.Model(&models.GalleryPhoto{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	var photos []models.GalleryPhoto
	err := q.Order("photo_date ASC, created_at ASC").Find(&photos).Error
	return photos, err
}

func (r *GalleryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.GalleryPhoto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
