package repository

import (
	"spandan/internal/models"

	"gorm.io/gorm"
)

type TeamFilter struct {
	Category  string
	Year      int
	Published *bool
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(m *models.TeamMember) error {
	return r.db.Create(m).Error
}

func (r *TeamRepository) Update(m *models.TeamMember) error {
	// Save alone skips zero/nil fields on updates of year, so write the full row.
	return r.db.Model(m).Select("*").Omit("created_at").Updates(m).Error
}

func (r *TeamRepository) GetByID(id uint) (*models.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamRepository) List(f TeamFilter) ([]models.TeamMember, error) {
	q := r.db.Model(&models.TeamMember{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	var members []models.TeamMember
	err := q.Order("category ASC, sort_order ASC").Find(&members).Error
	return members, err
}

func (r *TeamRepository) Delete(id uint) error {
	res := r.db.Delete(&models.TeamMember{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
