package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Category  string    `gorm:"size:30;not null;index" json:"category"`
	Date      string    `gorm:"size:64" json:"date"` // display string, e.g. "14 June 2024"
	Month     string    `gorm:"size:20" json:"month"`
	Year      int       `gorm:"index" json:"year"`
	Summary   string    `gorm:"type:text" json:"summary"`
	Slug      string    `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Published bool      `gorm:"default:false;index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Metrics []EventMetric `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"metrics,omitempty"`
	Detail  *EventDetail  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"detail,omitempty"`
}

func (Event) TableName() string { return "events" }

// EventMetric is a headline figure shown on event cards ("82 donors").
type EventMetric struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EventID   uint   `gorm:"not null;index" json:"-"`
	Label     string `gorm:"size:255;not null" json:"label"`
	SortOrder int    `gorm:"not null;default:0" json:"order"`
}

func (EventMetric) TableName() string { return "event_metrics" }

type EventDetail struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EventID   uint   `gorm:"uniqueIndex;not null" json:"-"`
	Location  string `gorm:"size:255" json:"location"`
	Duration  string `gorm:"size:128" json:"duration"`
	Objective string `gorm:"type:text" json:"objective"`
	Execution string `gorm:"type:text" json:"execution"`
	Outcome   string `gorm:"type:text" json:"outcome"`

	Preparation datatypes.JSONSlice[string] `json:"preparation"`
	Process     datatypes.JSONSlice[string] `json:"process"`
	Partners    datatypes.JSONSlice[string] `json:"partners"`

	Metrics []EventDetailMetric `gorm:"foreignKey:EventDetailID;constraint:OnDelete:CASCADE" json:"metrics,omitempty"`
}

func (EventDetail) TableName() string { return "event_details" }

// EventDetailMetric is an outcome key/value pair ("units collected" -> "82").
type EventDetailMetric struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	EventDetailID uint   `gorm:"not null;index" json:"-"`
	Key           string `gorm:"column:metric_key;size:128;not null" json:"key"`
	Value         string `gorm:"column:metric_value;size:255;not null" json:"value"`
}

func (EventDetailMetric) TableName() string { return "event_detail_metrics" }
