package database

import (
	"spandan/config"
	"spandan/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RevokedToken{},
		&models.Event{},
		&models.EventMetric{},
		&models.EventDetail{},
		&models.EventDetailMetric{},
		&models.TechProject{},
		&models.ProjectConstraint{},
		&models.ProjectTechnology{},
		&models.ProjectMetric{},
		&models.TeamMember{},
		&models.GalleryPhoto{},
		&models.SiteSetting{},
		&models.ImpactYear{},
		&models.ImpactSummary{},
		&models.Partner{},
		&models.AuditLog{},
	)
}
