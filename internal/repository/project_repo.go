package repository

import (
	"spandan/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectFilter struct {
	Status    string
	Published *bool
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) preloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Constraints", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Technologies").
		Preload("Metrics")
}

func (r *ProjectRepository) Create(p *models.TechProject) error {
	return r.db.Create(p).Error
}

func (r *ProjectRepository) GetByID(id uint) (*models.TechProject, error) {
	var p models.TechProject
	if err := r.preloads(r.db).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) GetBySlug(slug string, publishedOnly bool) (*models.TechProject, error) {
	q := r.preloads(r.db).Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var p models.TechProject
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) List(f ProjectFilter) ([]models.TechProject, error) {
	q := r.preloads(r.db.Model(&models.TechProject{}))
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	var projects []models.TechProject
	err := q.Order("year DESC, created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.TechProject{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Update replaces the project and its child collections in one transaction.
func (r *ProjectRepository) Update(p *models.TechProject) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProjectChildren(tx, p.ID); err != nil {
			return err
		}
		if err := tx.Model(p).Select("*").Omit("created_at", clause.Associations).Updates(p).Error; err != nil {
			return err
		}
		for i := range p.Constraints {
			p.Constraints[i].ID = 0
			p.Constraints[i].ProjectID = p.ID
		}
		if len(p.Constraints) > 0 {
			if err := tx.Create(&p.Constraints).Error; err != nil {
				return err
			}
		}
		for i := range p.Technologies {
			p.Technologies[i].ID = 0
			p.Technologies[i].ProjectID = p.ID
		}
		if len(p.Technologies) > 0 {
			if err := tx.Create(&p.Technologies).Error; err != nil {
				return err
			}
		}
		for i := range p.Metrics {
			p.Metrics[i].ID = 0
			p.Metrics[i].ProjectID = p.ID
		}
		if len(p.Metrics) > 0 {
			if err := tx.Create(&p.Metrics).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p models.TechProject
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := deleteProjectChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

func deleteProjectChildren(tx *gorm.DB, projectID uint) error {
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectConstraint{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTechnology{}).Error; err != nil {
		return err
	}
	return tx.Where("project_id = ?", projectID).Delete(&models.ProjectMetric{}).Error
}
