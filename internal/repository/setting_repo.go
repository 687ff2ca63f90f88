package repository

import (
	"spandan/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(key string) (string, error) {
	var s models.SiteSetting
	if err := r.db.Where("`key` = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

func (r *SettingRepository) GetAll() ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.Order("category ASC, `key` ASC").Find(&list).Error
	return list, err
}

func (r *SettingRepository) GetByCategory(category string) ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.Where("category = ?", category).Order("`key` ASC").Find(&list).Error
	return list, err
}

// UpsertMany writes the settings as a whole; re-running with the same payload
// leaves exactly one row per key.
func (r *SettingRepository) UpsertMany(settings []models.SiteSetting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range settings {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "category", "updated_at"}),
			}).Create(&settings[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
