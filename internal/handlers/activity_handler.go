package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/httpresp"
	"github.com/medpoint-app/clinic-scheduler/internal/middleware"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// ActivityHandler lists the caller's own audit trail.
type ActivityHandler struct {
	db *gorm.DB
}

func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{db: db}
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var entries []models.AuditLog
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&entries).Error; err != nil {
		log.Printf("failed to fetch activity: %v", err)
		httperr.Internal(c, "failed_to_fetch_activity", "Failed to fetch activity.")
		return
	}

	httpresp.List(c, entries)
}
