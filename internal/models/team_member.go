package models

import "time"

type TeamMember struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	Role       string    `gorm:"size:128" json:"role"`
	Category   string    `gorm:"size:20;not null;index" json:"category"`
	Year       *int      `json:"year"` // nil for advisors
	Department string    `gorm:"size:128" json:"department"`
	SortOrder  int       `gorm:"not null;default:0" json:"order"`
	Published  bool      `gorm:"default:false;index" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (TeamMember) TableName() string { return "team_members" }
