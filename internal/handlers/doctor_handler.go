package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/httpresp"
	"github.com/medpoint-app/clinic-scheduler/internal/infra/cache"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
	uc "github.com/medpoint-app/clinic-scheduler/internal/usecase/appointment"
)

type DoctorHandler struct {
	db      *gorm.DB
	cache   *cache.DoctorCache
	slotsUC *uc.GetFreeSlots
}

func NewDoctorHandler(db *gorm.DB, c *cache.DoctorCache, slotsUC *uc.GetFreeSlots) *DoctorHandler {
	return &DoctorHandler{db: db, cache: c, slotsUC: slotsUC}
}

// List is the public doctor directory, served from redis when warm.
func (h *DoctorHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if doctors, ok := h.cache.GetList(ctx); ok {
		httpresp.List(c, doctors)
		return
	}

	var doctors []models.Doctor
	if err := h.db.Preload("User").Find(&doctors).Error; err != nil {
		log.Printf("failed to fetch doctors: %v", err)
		httperr.Internal(c, "failed_to_fetch_doctors", "Failed to fetch doctors.")
		return
	}

	h.cache.SetList(ctx, doctors)
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var doctor models.Doctor
	if err := h.db.Preload("User").First(&doctor, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		log.Printf("failed to fetch doctor: %v", err)
		httperr.Internal(c, "failed_to_fetch_doctor", "Failed to fetch doctor.")
		return
	}

	httpresp.OK(c, "", doctor)
}

// FreeSlots lists the open 30-minute labels for one doctor on one date.
// GET /api/doctors/:id/slots?date=2006-01-02
func (h *DoctorHandler) FreeSlots(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), uint(id), date)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}
