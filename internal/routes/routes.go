package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/audit"
	"github.com/medpoint-app/clinic-scheduler/internal/config"
	"github.com/medpoint-app/clinic-scheduler/internal/handlers"
	"github.com/medpoint-app/clinic-scheduler/internal/infra/cache"
	infraRepo "github.com/medpoint-app/clinic-scheduler/internal/infra/repository"
	"github.com/medpoint-app/clinic-scheduler/internal/middleware"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
	ucAppointment "github.com/medpoint-app/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	doctorCache := cache.NewDoctorCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	statusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listPatientUC := ucAppointment.NewListPatientAppointments(appointmentRepo)
	listDoctorUC := ucAppointment.NewListDoctorAppointments(appointmentRepo)
	freeSlotsUC := ucAppointment.NewGetFreeSlots(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db, doctorCache, freeSlotsUC)
	availabilityHandler := handlers.NewAvailabilityHandler(db, doctorCache)
	paymentHandler := handlers.NewPaymentHandler(db, cfg)
	activityHandler := handlers.NewActivityHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		bookUC,
		statusUC,
		cancelUC,
		getUC,
		listPatientUC,
		listDoctorUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterPatient)
		api.POST("/auth/register-doctor", authHandler.RegisterDoctor)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC DIRECTORY
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:id", doctorHandler.GetByID)
		api.GET("/doctors/:id/slots", doctorHandler.FreeSlots)

		// ------------------------------
		// PAYMENT GATEWAY CALLBACKS
		// ------------------------------
		api.GET("/payments/key", paymentHandler.PublicKey)
		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.GetMe)
			secured.GET("/me/activity", activityHandler.List)

			secured.GET("/me/availability", middleware.RequireRoles(models.RoleDoctor), availabilityHandler.Get)
			secured.PUT("/me/availability", middleware.RequireRoles(models.RoleDoctor), availabilityHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", middleware.RequireRoles(models.RolePatient), appointmentHandler.Create)
			secured.GET("/patient/appointments", middleware.RequireRoles(models.RolePatient), appointmentHandler.ListForPatient)
			secured.GET("/doctor/appointments", middleware.RequireRoles(models.RoleDoctor), appointmentHandler.ListForDoctor)
			secured.PUT("/appointments/:id/status", middleware.RequireRoles(models.RoleDoctor), appointmentHandler.UpdateStatus)
			secured.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.POST("/payments/orders", middleware.RequireRoles(models.RolePatient), paymentHandler.CreateOrder)
		}
	}
}
