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

type PartnerHandler struct {
	repo     *repository.PartnerRepository
	recorder *service.Recorder
}

func NewPartnerHandler(repo *repository.PartnerRepository, recorder *service.Recorder) *PartnerHandler {
	return &PartnerHandler{repo: repo, recorder: recorder}
}

type partnerRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"order"`
}

func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Partner{Name: req.Name, SortOrder: req.SortOrder}
	if err := h.repo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create partner"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "partner", p.ID, req)
	c.JSON(http.StatusCreated, p)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load partner"})
		return
	}
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Partner{ID: id, Name: req.Name, SortOrder: req.SortOrder}
	if err := h.repo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partner"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "partner", id, req)
	c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete partner"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionDelete, "partner", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
