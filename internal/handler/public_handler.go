package handler

import (
	"errors"
	"net/http"

	"spandan/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicHandler serves the anonymous site. Every list is restricted to
// published records server-side; client-supplied filters cannot widen that.
type PublicHandler struct {
	events   *repository.EventRepository
	projects *repository.ProjectRepository
	team     *repository.TeamRepository
	gallery  *repository.GalleryRepository
	partners *repository.PartnerRepository
	impact   *repository.ImpactRepository
	settings *repository.SettingRepository
}

func NewPublicHandler(
	events *repository.EventRepository,
	projects *repository.ProjectRepository,
	team *repository.TeamRepository,
	gallery *repository.GalleryRepository,
	partners *repository.PartnerRepository,
	impact *repository.ImpactRepository,
	settings *repository.SettingRepository,
) *PublicHandler {
	return &PublicHandler{
		events:   events,
		projects: projects,
		team:     team,
		gallery:  gallery,
		partners: partners,
		impact:   impact,
		settings: settings,
	}
}

var publishedOnly = true

func (h *PublicHandler) ListEvents(c *gin.Context) {
	events, err := h.events.List(repository.EventFilter{
		Category:  c.Query("category"),
		Year:      yearQuery(c),
		Published: &publishedOnly,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *PublicHandler) GetEvent(c *gin.Context) {
	e, err := h.events.GetBySlug(c.Param("slug"), true)
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

func (h *PublicHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List(repository.ProjectFilter{
		Status:    c.Query("status"),
		Published: &publishedOnly,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *PublicHandler) GetProject(c *gin.Context) {
	p, err := h.projects.GetBySlug(c.Param("slug"), true)
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

func (h *PublicHandler) ListTeam(c *gin.Context) {
	members, err := h.team.List(repository.TeamFilter{
		Category:  c.Query("category"),
		Year:      yearQuery(c),
		Published: &publishedOnly,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list team members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *PublicHandler) ListGallery(c *gin.Context) {
	photos, err := h.gallery.List(repository.GalleryFilter{
		Category:  c.Query("category"),
		Year:      yearQuery(c),
		Published: &publishedOnly,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (h *PublicHandler) ListPartners(c *gin.Context) {
	partners, err := h.partners.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *PublicHandler) GetImpact(c *gin.Context) {
	years, err := h.impact.ListYears()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load impact data"})
		return
	}
	summary, err := h.impact.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load impact data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "years": years})
}

func (h *PublicHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	// key/value map is what the pages consume
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"settings": out})
}
