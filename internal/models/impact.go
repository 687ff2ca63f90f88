package models

import "time"

// ImpactYear holds per-year counters grouped by activity type, shown on the
// impact/reporting pages.
type ImpactYear struct {
	ID   uint `gorm:"primaryKey" json:"id"`
	Year int  `gorm:"uniqueIndex;not null" json:"year"`

	BloodDonationCamps  int `gorm:"not null;default:0" json:"blood_donation_camps"`
	BloodUnitsCollected int `gorm:"not null;default:0" json:"blood_units_collected"`
	BloodDonors         int `gorm:"not null;default:0" json:"blood_donors"`

	VillageCamps      int `gorm:"not null;default:0" json:"village_camps"`
	VillagesReached   int `gorm:"not null;default:0" json:"villages_reached"`
	CampBeneficiaries int `gorm:"not null;default:0" json:"camp_beneficiaries"`

	HealthCheckups   int `gorm:"not null;default:0" json:"health_checkups"`
	PeopleScreened   int `gorm:"not null;default:0" json:"people_screened"`
	CheckupsReferred int `gorm:"not null;default:0" json:"checkups_referred"`

	DonationDrives    int `gorm:"not null;default:0" json:"donation_drives"`
	ItemsDonated      int `gorm:"not null;default:0" json:"items_donated"`
	FamiliesSupported int `gorm:"not null;default:0" json:"families_supported"`

	ShortEvents            int `gorm:"not null;default:0" json:"short_events"`
	ShortEventParticipants int `gorm:"not null;default:0" json:"short_event_participants"`

	TotalEvents     int `gorm:"not null;default:0" json:"total_events"`
	TotalVolunteers int `gorm:"not null;default:0" json:"total_volunteers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ImpactYear) TableName() string { return "impact_years" }

// ImpactSummary is a single-row table; the row always has ID 1.
type ImpactSummary struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	YearsActive   int       `gorm:"not null;default:0" json:"years_active"`
	TotalEvents   int       `gorm:"not null;default:0" json:"total_events"`
	PeopleReached string    `gorm:"size:32" json:"people_reached"` // display value, may contain "+"
	Volunteers    int       `gorm:"not null;default:0" json:"volunteers"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ImpactSummary) TableName() string { return "impact_summary" }
