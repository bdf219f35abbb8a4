package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	"github.com/BruksfildServices01/elite-booking/internal/config"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/elite-booking/internal/infra/repository"
	"github.com/BruksfildServices01/elite-booking/internal/messaging"
	"github.com/BruksfildServices01/elite-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/elite-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sender := messaging.NewWhatsAppSender(
		time.Duration(cfg.MessageDelayMs) * time.Millisecond,
	)

	gridCfg := domain.DefaultGridConfig()
	gridCfg.OpenHour = cfg.OpenHour
	gridCfg.CloseHour = cfg.CloseHour
	gridCfg.StepMinutes = cfg.StepMinutes

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	bookSlotUC := ucBooking.NewBookSlot(
		bookingRepo,
		sender,
		auditDispatcher,
	)

	setStatusUC := ucBooking.NewSetAppointmentStatus(
		bookingRepo,
		sender,
		auditDispatcher,
	)

	sendRemindersUC := ucBooking.NewSendReminders(
		bookingRepo,
		sender,
		auditDispatcher,
	)

	listSlotsUC := ucBooking.NewListAvailableSlots(bookingRepo)

	genGridUC := ucBooking.NewGenerateWeekGrid(
		bookingRepo,
		gridCfg,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)

	statsUC := ucBooking.NewDashboardStats(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db)
	slotHandler := handlers.NewSlotHandler(listSlotsUC, genGridUC)
	bookingHandler := handlers.NewBookingHandler(bookSlotUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		listByDateUC,
		setStatusUC,
		sendRemindersUC,
		statsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 CATÁLOGO + RESERVA (cliente)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/slots", slotHandler.ListAvailable)
		api.POST("/bookings", bookingHandler.Create)

		// ------------------------------
		// 🧔 PAINEL DO BARBEIRO
		// ------------------------------
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		api.POST("/slots/generate", slotHandler.GenerateGrid)

		api.GET("/appointments", appointmentHandler.ListByDate)
		api.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
		api.POST("/appointments/reminders", appointmentHandler.SendReminders)

		api.GET("/dashboard/stats", appointmentHandler.Stats)

		api.GET("/availability", availabilityHandler.List)
		api.POST("/availability", availabilityHandler.Create)
		api.DELETE("/availability/:id", availabilityHandler.Delete)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
