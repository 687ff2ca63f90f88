package handler

import (
	"errors"
	"net/http"

	"spandan/internal/domain"
	"spandan/internal/middleware"
	"spandan/internal/models"
	"spandan/internal/repository"
	"spandan/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	repo     *repository.TeamRepository
	recorder *service.Recorder
}

func NewTeamHandler(repo *repository.TeamRepository, recorder *service.Recorder) *TeamHandler {
	return &TeamHandler{repo: repo, recorder: recorder}
}

type teamMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role"`
	Category   string `json:"category" binding:"required"`
	Year       *int   `json:"year"`
	Department string `json:"department"`
	SortOrder  int    `json:"order"`
	Published  bool   `json:"published"`
}

func (req *teamMemberRequest) validate() string {
	if !domain.TeamCategories[req.Category] {
		return "unknown team category"
	}
	// Advisors carry no batch year; everyone else must have one.
	if req.Category != domain.TeamAdvisor && req.Year == nil {
		return "year is required for non-advisor members"
	}
	return ""
}

func (req *teamMemberRequest) toModel(id uint) *models.TeamMember {
	return &models.TeamMember{
		ID:         id,
		Name:       req.Name,
		Role:       req.Role,
		Category:   req.Category,
		Year:       req.Year,
		Department: req.Department,
		SortOrder:  req.SortOrder,
		Published:  req.Published,
	}
}

func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.repo.List(repository.TeamFilter{
		Category:  c.Query("category"),
		Year:      yearQuery(c),
		Published: publishedQuery(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list team members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reason := req.validate(); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}
	m := req.toModel(0)
	if err := h.repo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team member"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "team_member", m.ID, req)
	c.JSON(http.StatusCreated, m)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team member"})
		return
	}
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reason := req.validate(); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}
	m := req.toModel(id)
	if err := h.repo.Update(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update team member"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "team_member", id, req)
	c.JSON(http.StatusOK, m)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete team member"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionDelete, "team_member", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
