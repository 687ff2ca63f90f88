package models

import "time"

type TechProject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Status    string    `gorm:"size:20;not null;index" json:"status"`
	Year      string    `gorm:"size:20" json:"year"` // supports ranges, e.g. "2023-2024"
	Problem   string    `gorm:"type:text" json:"problem"`
	Approach  string    `gorm:"type:text" json:"approach"`
	Result    string    `gorm:"type:text" json:"result"`
	Slug      string    `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Published bool      `gorm:"default:false;index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Constraints  []ProjectConstraint `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"constraints,omitempty"`
	Technologies []ProjectTechnology `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"technologies,omitempty"`
	Metrics      []ProjectMetric     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"metrics,omitempty"`
}

func (TechProject) TableName() string { return "tech_projects" }

type ProjectConstraint struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"-"`
	Text      string `gorm:"size:512;not null" json:"text"`
	SortOrder int    `gorm:"not null;default:0" json:"order"`
}

func (ProjectConstraint) TableName() string { return "project_constraints" }

type ProjectTechnology struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"-"`
	Name      string `gorm:"size:128;not null" json:"name"`
}

func (ProjectTechnology) TableName() string { return "project_technologies" }

type ProjectMetric struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"-"`
	Key       string `gorm:"column:metric_key;size:128;not null" json:"key"`
	Value     string `gorm:"column:metric_value;size:255;not null" json:"value"`
}

func (ProjectMetric) TableName() string { return "project_metrics" }
