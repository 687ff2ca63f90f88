package repository

import (
	"errors"

	"spandan/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventFilter struct {
	Category  string
	Year      int
	Published *bool
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func orderedMetrics(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func (r *EventRepository) Create(e *models.Event) error {
	return r.db.Create(e).Error
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var e models.Event
	err := r.db.
		Preload("Metrics", orderedMetrics).
		Preload("Detail.Metrics").
		Preload("Detail").
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetBySlug(slug string, publishedOnly bool) (*models.Event, error) {
	q := r.db.
		Preload("Metrics", orderedMetrics).
		Preload("Detail.Metrics").
		Preload("Detail").
		Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var e models.Event
	if err := q.First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) List(f EventFilter) ([]models.Event, error) {
	q := r.db.Model(&models.Event{}).Preload("Metrics", orderedMetrics)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	var events []models.Event
	err := q.Order("year DESC, created_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Event{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Update replaces the event row and all its child rows from the new payload.
// Children have wholesale-replace semantics, so the delete and recreate run in
// one transaction; a mid-sequence failure rolls everything back.
func (r *EventRepository) Update(e *models.Event) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteEventChildren(tx, e.ID); err != nil {
			return err
		}
		if err := tx.Model(e).Select("*").Omit("created_at", clause.Associations).Updates(e).Error; err != nil {
			return err
		}
		for i := range e.Metrics {
			e.Metrics[i].ID = 0
			e.Metrics[i].EventID = e.ID
		}
		if len(e.Metrics) > 0 {
			if err := tx.Create(&e.Metrics).Error; err != nil {
				return err
			}
		}
		if e.Detail != nil {
			e.Detail.ID = 0
			e.Detail.EventID = e.ID
			for i := range e.Detail.Metrics {
				e.Detail.Metrics[i].ID = 0
				e.Detail.Metrics[i].EventDetailID = 0
			}
			if err := tx.Create(e.Detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *EventRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var e models.Event
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}
		if err := deleteEventChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&e).Error
	})
}

func deleteEventChildren(tx *gorm.DB, eventID uint) error {
	if err := tx.Where("event_id = ?", eventID).Delete(&models.EventMetric{}).Error; err != nil {
		return err
	}
	var detail models.EventDetail
	err := tx.Where("event_id = ?", eventID).First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Where("event_detail_id = ?", detail.ID).Delete(&models.EventDetailMetric{}).Error; err != nil {
		return err
	}
	return tx.Delete(&detail).Error
}
