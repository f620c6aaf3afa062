package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/dto"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/httpresp"
	"github.com/medpoint-app/clinic-scheduler/internal/middleware"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
	uc "github.com/medpoint-app/clinic-scheduler/internal/usecase/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo domain.Repository

	bookUC      *uc.BookAppointment
	statusUC    *uc.UpdateStatus
	cancelUC    *uc.CancelAppointment
	getUC       *uc.GetAppointment
	listPatient *uc.ListPatientAppointments
	listDoctor  *uc.ListDoctorAppointments
}

func NewAppointmentHandler(
	repo domain.Repository,
	bookUC *uc.BookAppointment,
	statusUC *uc.UpdateStatus,
	cancelUC *uc.CancelAppointment,
	getUC *uc.GetAppointment,
	listPatient *uc.ListPatientAppointments,
	listDoctor *uc.ListDoctorAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:        repo,
		bookUC:      bookUC,
		statusUC:    statusUC,
		cancelUC:    cancelUC,
		getUC:       getUC,
		listPatient: listPatient,
		listDoctor:  listDoctor,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Symptoms string `json:"symptoms"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

// actorFromContext builds the policy actor for the caller. Doctor-role
// callers get their directory profile id resolved; a missing profile
// leaves DoctorID zero, which fails ownership checks downstream.
func (h *AppointmentHandler) actorFromContext(c *gin.Context) domain.Actor {
	actor := domain.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Role:   c.MustGet(middleware.ContextUserRole).(string),
	}

	if actor.Role == models.RoleDoctor {
		if doc, err := h.repo.GetDoctorByUserID(c.Request.Context(), actor.UserID); err == nil {
			actor.DoctorID = doc.ID
		}
	}

	return actor
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide doctor_id, date, and time.")
		return
	}

	if !validators.IsValidSlotDate(req.Date) || !validators.IsValidSlotTime(req.Time) {
		httperr.BadRequest(c, "invalid_date_or_time", "Date or time is invalid.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), uc.BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Symptoms:  req.Symptoms,
	})
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	httpresp.Created(c, "Appointment created successfully", dto.BuildPatientView(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listPatient.Execute(c.Request.Context(), patientID)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listDoctor.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// STATUS / CANCEL
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide a status.")
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		h.actorFromContext(c),
		uc.UpdateStatusInput{
			AppointmentID: id,
			NewStatus:     domain.Status(req.Status),
			Notes:         req.Notes,
		},
	)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Appointment status updated", ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), h.actorFromContext(c), id)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Appointment cancelled", ap)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	actor := h.actorFromContext(c)

	ap, err := h.getUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	if actor.Role == models.RoleDoctor {
		httpresp.OK(c, "", dto.BuildDoctorView(ap))
		return
	}
	httpresp.OK(c, "", dto.BuildPatientView(ap))
}
