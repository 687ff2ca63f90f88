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
	"gorm.io/gorm"
)

type ProjectHandler struct {
	repo     *repository.ProjectRepository
	recorder *service.Recorder
}

func NewProjectHandler(repo *repository.ProjectRepository, recorder *service.Recorder) *ProjectHandler {
	return &ProjectHandler{repo: repo, recorder: recorder}
}

type projectRequest struct {
	Title        string     `json:"title" binding:"required"`
	Status       string     `json:"status" binding:"required"`
	Year         string     `json:"year"`
	Problem      string     `json:"problem"`
	Approach     string     `json:"approach"`
	Result       string     `json:"result"`
	Slug         string     `json:"slug"`
	Published    bool       `json:"published"`
	Constraints  []string   `json:"constraints"`
	Technologies []string   `json:"technologies"`
	Metrics      []keyValue `json:"metrics"`
}

func (req *projectRequest) validate() string {
	if !domain.ProjectStatuses[req.Status] {
		return "unknown project status"
	}
	if req.Slug == "" {
		req.Slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(req.Slug) {
		return "slug must contain only lowercase letters, digits and hyphens"
	}
	if key := duplicateKey(req.Metrics); key != "" {
		return "duplicate metric key: " + key
	}
	return ""
}

func (req *projectRequest) toModel(id uint) *models.TechProject {
	p := &models.TechProject{
		ID:        id,
		Title:     req.Title,
		Status:    req.Status,
		Year:      req.Year,
		Problem:   req.Problem,
		Approach:  req.Approach,
		Result:    req.Result,
		Slug:      req.Slug,
		Published: req.Published,
	}
	for i, text := range req.Constraints {
		p.Constraints = append(p.Constraints, models.ProjectConstraint{Text: text, SortOrder: i})
	}
	for _, name := range req.Technologies {
		p.Technologies = append(p.Technologies, models.ProjectTechnology{Name: name})
	}
	for _, kv := range req.Metrics {
		p.Metrics = append(p.Metrics, models.ProjectMetric{Key: kv.Key, Value: kv.Value})
	}
	return p
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.repo.List(repository.ProjectFilter{
		Status:    c.Query("status"),
		Published: publishedQuery(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}
	p := req.toModel(0)
	if err := h.repo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "tech_project", p.ID, req)
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}
	var req projectRequest
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}
	p := req.toModel(id)
	if err := h.repo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "tech_project", id, req)
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionDelete, "tech_project", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
