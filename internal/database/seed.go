package database

import (
	"log"

	"spandan/config"
	"spandan/internal/domain"
	"spandan/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap ADMIN account when no users exist yet.
// Skipped unless SEED_ADMIN_PASSWORD is set.
func SeedAdmin(db *gorm.DB, cfg *config.SeedConfig) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}
	if cfg.AdminPassword == "" {
		log.Printf("[seed] no users exist and SEED_ADMIN_PASSWORD is unset; skipping admin seed")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] hash admin password: %v", err)
		return
	}
	u := &models.User{
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(u).Error; err != nil {
		log.Printf("[seed] create admin: %v", err)
		return
	}
	log.Printf("[seed] created admin user %s", u.Email)
}

var defaultSettings = []models.SiteSetting{
	{Key: "contact_email", Value: "contact@spandan.org", Category: domain.SettingContact},
	{Key: "contact_phone", Value: "", Category: domain.SettingContact},
	{Key: "contact_address", Value: "", Category: domain.SettingContact},
	{Key: "instagram_handle", Value: "", Category: domain.SettingSocial},
	{Key: "linkedin_url", Value: "", Category: domain.SettingSocial},
	{Key: "youtube_url", Value: "", Category: domain.SettingSocial},
	{Key: "site_tagline", Value: "Students serving the community", Category: domain.SettingGeneral},
}

// SeedSettings inserts default site settings that don't exist yet. Existing
// values are never touched.
func SeedSettings(db *gorm.DB) {
	for _, s := range defaultSettings {
		var count int64
		db.Model(&models.SiteSetting{}).Where("`key` = ?", s.Key).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Printf("[seed] setting %s: %v", s.Key, err)
		}
	}
}
