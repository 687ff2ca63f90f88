package models

import "time"

// SiteSetting stores one admin-configurable key/value consumed by public pages.
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"size:512;not null" json:"value"`
	Category  string    `gorm:"size:20;not null;default:'general';index" json:"category"` // contact | social | general
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSetting) TableName() string { return "site_settings" }
