package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/httpresp"
	"github.com/medpoint-app/clinic-scheduler/internal/infra/cache"
	"github.com/medpoint-app/clinic-scheduler/internal/middleware"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
	"github.com/medpoint-app/clinic-scheduler/internal/validators"
)

// AvailabilityHandler manages a doctor's declared weekly windows.
// Windows feed the free-slot listing but never block a booking.
type AvailabilityHandler struct {
	db    *gorm.DB
	cache *cache.DoctorCache
}

func NewAvailabilityHandler(db *gorm.DB, c *cache.DoctorCache) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, cache: c}
}

type AvailabilityWindowInput struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type UpdateAvailabilityRequest struct {
	Windows []AvailabilityWindowInput `json:"windows" binding:"required"`
}

func (h *AvailabilityHandler) doctorForCaller(c *gin.Context) (*models.Doctor, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "doctor_not_found", "Doctor profile not found.")
			return nil, false
		}
		log.Printf("failed to look up doctor profile: %v", err)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return nil, false
	}
	return &doctor, true
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	doctor, ok := h.doctorForCaller(c)
	if !ok {
		return
	}

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("doctor_id = ?", doctor.ID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {
		log.Printf("failed to fetch availability: %v", err)
		httperr.Internal(c, "failed_to_fetch_availability", "Failed to fetch availability.")
		return
	}

	httpresp.List(c, windows)
}

// Update replaces the caller's full weekly schedule in one shot.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	doctor, ok := h.doctorForCaller(c)
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	for _, w := range req.Windows {
		if w.Weekday < 0 || w.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Weekday must be between 0 and 6.")
			return
		}
		if w.Active && (!validators.IsValidSlotTime(w.StartTime) || !validators.IsValidSlotTime(w.EndTime)) {
			httperr.BadRequest(c, "invalid_window", "Window times must be half-hour labels.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("doctor_id = ?", doctor.ID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		for _, w := range req.Windows {
			window := models.AvailabilityWindow{
				DoctorID:  doctor.ID,
				Weekday:   w.Weekday,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
				Active:    w.Active,
			}
			if err := tx.Create(&window).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("failed to update availability: %v", err)
		httperr.Internal(c, "failed_to_update_availability", "Failed to update availability.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	httpresp.OK(c, "Availability updated", nil)
}
