package handler

import (
	"errors"
	"net/http"
	"time"

	"spandan/internal/domain"
	"spandan/internal/middleware"
	"spandan/internal/models"
	"spandan/internal/repository"
	"spandan/internal/service"
	"spandan/pkg/driveimg"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryHandler struct {
	repo     *repository.GalleryRepository
	events   *repository.EventRepository
	projects *repository.ProjectRepository
	team     *repository.TeamRepository
	recorder *service.Recorder
}

func NewGalleryHandler(
	repo *repository.GalleryRepository,
	events *repository.EventRepository,
	projects *repository.ProjectRepository,
	team *repository.TeamRepository,
	recorder *service.Recorder,
) *GalleryHandler {
	return &GalleryHandler{repo: repo, events: events, projects: projects, team: team, recorder: recorder}
}

type galleryPhotoRequest struct {
	Title      string `json:"title" binding:"required"`
	DriveLink  string `json:"drive_link" binding:"required"`
	Category   string `json:"category" binding:"required"`
	LinkedType string `json:"linked_type"`
	LinkedID   *uint  `json:"linked_id"`
	Year       int    `json:"year"`
	PhotoDate  string `json:"photo_date"` // YYYY-MM-DD, optional
	SortOrder  int    `json:"order"`
	Published  bool   `json:"published"`
}

// toModel resolves the drive reference and the optional entity link. Returns
// a reason string on validation failure.
func (h *GalleryHandler) toModel(req *galleryPhotoRequest, id uint) (*models.GalleryPhoto, string) {
	if !domain.PhotoCategories[req.Category] {
		return nil, "unknown gallery category"
	}
	ref, err := driveimg.Resolve(req.DriveLink)
	if err != nil {
		return nil, "drive_link is not a recognizable Google Drive reference"
	}
	p := &models.GalleryPhoto{
		ID:           id,
		Title:        req.Title,
		DriveFileID:  ref.FileID,
		ImageURL:     ref.ImageURL,
		ThumbnailURL: ref.ThumbnailURL,
		Category:     req.Category,
		Year:         req.Year,
		SortOrder:    req.SortOrder,
		Published:    req.Published,
	}
	if req.PhotoDate != "" {
		d, err := time.Parse("2006-01-02", req.PhotoDate)
		if err != nil {
			return nil, "invalid photo_date format (use YYYY-MM-DD)"
		}
		p.PhotoDate = &d
	}
	if req.LinkedType != "" {
		if req.LinkedID == nil {
			return nil, "linked_id required when linked_type is set"
		}
		name, ok := h.linkedName(req.LinkedType, *req.LinkedID)
		if !ok {
			return nil, "linked entity not found"
		}
		p.LinkedType = req.LinkedType
		p.LinkedID = req.LinkedID
		p.LinkedName = name
	}
	return p, ""
}

// linkedName caches the display name of the referenced entity at write time.
func (h *GalleryHandler) linkedName(linkedType string, id uint) (string, bool) {
	switch linkedType {
	case domain.LinkEvent:
		e, err := h.events.GetByID(id)
		if err != nil {
			return "", false
		}
		return e.Title, true
	case domain.LinkProject:
		p, err := h.projects.GetByID(id)
		if err != nil {
			return "", false
		}
		return p.Title, true
	case domain.LinkMember:
		m, err := h.team.GetByID(id)
		if err != nil {
			return "", false
		}
		return m.Name, true
	}
	return "", false
}

func (h *GalleryHandler) List(c *gin.Context) {
	photos, err := h.repo.List(repository.GalleryFilter{
		Category:  c.Query("category"),
		Year:      yearQuery(c),
		Published: publishedQuery(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req galleryPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, reason := h.toModel(&req, 0)
	if reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}
	if err := h.repo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create photo"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "gallery_photo", p.ID, req)
	c.JSON(http.StatusCreated, p)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load photo"})
		return
	}
	var req galleryPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, reason := h.toModel(&req, id)
	if reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}
	if err := h.repo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update photo"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "gallery_photo", id, req)
	c.JSON(http.StatusOK, p)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete photo"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionDelete, "gallery_photo", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
