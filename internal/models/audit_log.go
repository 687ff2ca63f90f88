package models

import "time"

// AuditLog is append-only. Business logic only writes it; the admin activity
// feed reads it for humans.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:20;not null;index" json:"action"` // CREATE | UPDATE | DELETE
	Entity    string    `gorm:"size:50;not null;index" json:"entity"`
	EntityID  uint      `gorm:"index" json:"entity_id"`
	Changes   string    `gorm:"type:text" json:"changes"` // serialized request payload / diff
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string { return "audit_logs" }
