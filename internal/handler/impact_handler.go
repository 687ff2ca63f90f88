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

type ImpactHandler struct {
	repo     *repository.ImpactRepository
	recorder *service.Recorder
}

func NewImpactHandler(repo *repository.ImpactRepository, recorder *service.Recorder) *ImpactHandler {
	return &ImpactHandler{repo: repo, recorder: recorder}
}

type impactYearRequest struct {
	Year int `json:"year" binding:"required"`

	BloodDonationCamps  int `json:"blood_donation_camps"`
	BloodUnitsCollected int `json:"blood_units_collected"`
	BloodDonors         int `json:"blood_donors"`

	VillageCamps      int `json:"village_camps"`
	VillagesReached   int `json:"villages_reached"`
	CampBeneficiaries int `json:"camp_beneficiaries"`

	HealthCheckups   int `json:"health_checkups"`
	PeopleScreened   int `json:"people_screened"`
	CheckupsReferred int `json:"checkups_referred"`

	DonationDrives    int `json:"donation_drives"`
	ItemsDonated      int `json:"items_donated"`
	FamiliesSupported int `json:"families_supported"`

	ShortEvents            int `json:"short_events"`
	ShortEventParticipants int `json:"short_event_participants"`

	TotalEvents     int `json:"total_events"`
	TotalVolunteers int `json:"total_volunteers"`
}

func (req *impactYearRequest) toModel(id uint) *models.ImpactYear {
	return &models.ImpactYear{
		ID:                     id,
		Year:                   req.Year,
		BloodDonationCamps:     req.BloodDonationCamps,
		BloodUnitsCollected:    req.BloodUnitsCollected,
		BloodDonors:            req.BloodDonors,
		VillageCamps:           req.VillageCamps,
		VillagesReached:        req.VillagesReached,
		CampBeneficiaries:      req.CampBeneficiaries,
		HealthCheckups:         req.HealthCheckups,
		PeopleScreened:         req.PeopleScreened,
		CheckupsReferred:       req.CheckupsReferred,
		DonationDrives:         req.DonationDrives,
		ItemsDonated:           req.ItemsDonated,
		FamiliesSupported:      req.FamiliesSupported,
		ShortEvents:            req.ShortEvents,
		ShortEventParticipants: req.ShortEventParticipants,
		TotalEvents:            req.TotalEvents,
		TotalVolunteers:        req.TotalVolunteers,
	}
}

func (h *ImpactHandler) ListYears(c *gin.Context) {
	years, err := h.repo.ListYears()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list impact years"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}

func (h *ImpactHandler) CreateYear(c *gin.Context) {
	var req impactYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exists, err := h.repo.YearExists(req.Year, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create impact year"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "impact year already exists"})
		return
	}
	y := req.toModel(0)
	if err := h.repo.CreateYear(y); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create impact year"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "impact_year", y.ID, req)
	c.JSON(http.StatusCreated, y)
}

func (h *ImpactHandler) UpdateYear(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.repo.GetYearByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "impact year not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load impact year"})
		return
	}
	var req impactYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exists, err := h.repo.YearExists(req.Year, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update impact year"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "impact year already exists"})
		return
	}
	y := req.toModel(id)
	if err := h.repo.UpdateYear(y); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update impact year"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "impact_year", id, req)
	c.JSON(http.StatusOK, y)
}

func (h *ImpactHandler) DeleteYear(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteYear(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "impact year not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete impact year"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionDelete, "impact_year", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ImpactHandler) GetSummary(c *gin.Context) {
	s, err := h.repo.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type impactSummaryRequest struct {
	YearsActive   int    `json:"years_active"`
	TotalEvents   int    `json:"total_events"`
	PeopleReached string `json:"people_reached"`
	Volunteers    int    `json:"volunteers"`
}

func (h *ImpactHandler) UpsertSummary(c *gin.Context) {
	var req impactSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := &models.ImpactSummary{
		YearsActive:   req.YearsActive,
		TotalEvents:   req.TotalEvents,
		PeopleReached: req.PeopleReached,
		Volunteers:    req.Volunteers,
	}
	if err := h.repo.UpsertSummary(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save summary"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "impact_summary", s.ID, req)
	c.JSON(http.StatusOK, s)
}
