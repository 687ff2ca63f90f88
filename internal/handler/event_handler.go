package handler

import (
	"errors"
	"net/http"

	"spandan/internal/domain"
	"spandan/internal/middleware"
	"spandan/internal/models"
	"spandan/internal/repository"
	"spandan/internal/service"
	"spandan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventHandler struct {
	repo     *repository.EventRepository
	recorder *service.Recorder
}

func NewEventHandler(repo *repository.EventRepository, recorder *service.Recorder) *EventHandler {
	return &EventHandler{repo: repo, recorder: recorder}
}

type eventDetailRequest struct {
	Location    string     `json:"location"`
	Duration    string     `json:"duration"`
	Objective   string     `json:"objective"`
	Execution   string     `json:"execution"`
	Outcome     string     `json:"outcome"`
	Preparation []string   `json:"preparation"`
	Process     []string   `json:"process"`
	Partners    []string   `json:"partners"`
	Metrics     []keyValue `json:"metrics"`
}

type eventRequest struct {
	Title     string              `json:"title" binding:"required"`
	Category  string              `json:"category" binding:"required"`
	Date      string              `json:"date"`
	Month     string              `json:"month"`
	Year      int                 `json:"year" binding:"required"`
	Summary   string              `json:"summary"`
	Slug      string              `json:"slug"`
	Published bool                `json:"published"`
	Metrics   []string            `json:"metrics"`
	Detail    *eventDetailRequest `json:"detail"`
}

// validate checks semantic rules and resolves the slug. Returns a
// human-readable reason on failure.
func (req *eventRequest) validate() string {
	if !domain.EventCategories[req.Category] {
		return "unknown event category"
	}
	if req.Slug == "" {
		req.Slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(req.Slug) {
		return "slug must contain only lowercase letters, digits and hyphens"
	}
	if req.Detail != nil {
		if key := duplicateKey(req.Detail.Metrics); key != "" {
			return "duplicate detail metric key: " + key
		}
	}
	return ""
}

func (req *eventRequest) toModel(id uint) *models.Event {
	e := &models.Event{
		ID:        id,
		Title:     req.Title,
		Category:  req.Category,
		Date:      req.Date,
		Month:     req.Month,
		Year:      req.Year,
		Summary:   req.Summary,
		Slug:      req.Slug,
		Published: req.Published,
	}
	for i, label := range req.Metrics {
		e.Metrics = append(e.Metrics, models.EventMetric{Label: label, SortOrder: i})
	}
	if req.Detail != nil {
		d := &models.EventDetail{
			Location:    req.Detail.Location,
			Duration:    req.Detail.Duration,
			Objective:   req.Detail.Objective,
			Execution:   req.Detail.Execution,
			Outcome:     req.Detail.Outcome,
			Preparation: datatypes.NewJSONSlice(req.Detail.Preparation),
			Process:     datatypes.NewJSONSlice(req.Detail.Process),
			Partners:    datatypes.NewJSONSlice(req.Detail.Partners),
		}
		for _, kv := range req.Detail.Metrics {
			d.Metrics = append(d.Metrics, models.EventDetailMetric{Key: kv.Key, Value: kv.Value})
		}
		e.Detail = d
	}
	return e
}

// List returns all events including unpublished, for the admin table.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.repo.List(repository.EventFilter{
		Category:  c.Query("category"),
		Year:      yearQuery(c),
		Published: publishedQuery(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	e, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reason := req.validate(); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}
	taken, err := h.repo.SlugExists(req.Slug, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}
	e := req.toModel(0)
	if err := h.repo.Create(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "event", e.ID, req)
	c.JSON(http.StatusCreated, e)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reason := req.validate(); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}
	taken, err := h.repo.SlugExists(req.Slug, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}
	e := req.toModel(id)
	if err := h.repo.Update(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "event", id, req)
	c.JSON(http.StatusOK, e)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionDelete, "event", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
