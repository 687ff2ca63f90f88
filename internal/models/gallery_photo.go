package models

import "time"

type GalleryPhoto struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	DriveFileID  string     `gorm:"size:128;not null" json:"drive_file_id"`
	ImageURL     string     `gorm:"size:512;not null" json:"image_url"`
	ThumbnailURL string     `gorm:"size:512;not null" json:"thumbnail_url"`
	Category     string     `gorm:"size:20;not null;index" json:"category"`
	LinkedType   string     `gorm:"size:20" json:"linked_type,omitempty"` // EVENT | PROJECT | MEMBER
	LinkedID     *uint      `json:"linked_id,omitempty"`
	LinkedName   string     `gorm:"size:255" json:"linked_name,omitempty"` // display name cached at write time
	Year         int        `gorm:"index" json:"year"`
	PhotoDate    *time.Time `json:"photo_date"`
	SortOrder    int        `gorm:"not null;default:0" json:"order"`
	Published    bool       `gorm:"default:false;index" json:"published"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (GalleryPhoto) TableName() string { return "gallery_photos" }
