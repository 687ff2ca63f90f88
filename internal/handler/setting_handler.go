package handler

import (
	"net/http"

	"spandan/internal/domain"
	"spandan/internal/middleware"
	"spandan/internal/models"
	"spandan/internal/repository"
	"spandan/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	repo     *repository.SettingRepository
	recorder *service.Recorder
}

func NewSettingHandler(repo *repository.SettingRepository, recorder *service.Recorder) *SettingHandler {
	return &SettingHandler{repo: repo, recorder: recorder}
}

func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type settingEntry struct {
	Key      string `json:"key" binding:"required"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

type settingsRequest struct {
	Settings []settingEntry `json:"settings" binding:"required,min=1"`
}

// Upsert writes the settings as a whole; keys not in the payload stay as-is.
func (h *SettingHandler) Upsert(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seen := make(map[string]bool, len(req.Settings))
	rows := make([]models.SiteSetting, 0, len(req.Settings))
	for _, entry := range req.Settings {
		if seen[entry.Key] {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "duplicate setting key: " + entry.Key})
			return
		}
		seen[entry.Key] = true
		if entry.Category == "" {
			entry.Category = domain.SettingGeneral
		}
		if !domain.SettingCategories[entry.Category] {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown setting category: " + entry.Category})
			return
		}
		rows = append(rows, models.SiteSetting{Key: entry.Key, Value: entry.Value, Category: entry.Category})
	}
	if err := h.repo.UpsertMany(rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "site_setting", 0, req)
	settings, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
