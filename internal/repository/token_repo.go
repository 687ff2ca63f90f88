package repository

import (
	"time"

	"spandan/internal/models"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Revoke stores the jti of a logged-out access token until it would have
// expired anyway.
func (r *TokenRepository) Revoke(jti string, expiresAt time.Time) error {
	return r.db.Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func (r *TokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

// PurgeExpired removes revocation rows whose tokens are past expiry.
func (r *TokenRepository) PurgeExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{}).Error
}
