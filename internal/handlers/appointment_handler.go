package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/httpresp"
	"github.com/BruksfildServices01/elite-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/elite-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listByDate *ucBooking.ListAppointmentsByDate
	setStatus  *ucBooking.SetAppointmentStatus
	reminders  *ucBooking.SendReminders
	stats      *ucBooking.DashboardStats
}

func NewAppointmentHandler(
	listByDate *ucBooking.ListAppointmentsByDate,
	setStatus *ucBooking.SetAppointmentStatus,
	reminders *ucBooking.SendReminders,
	stats *ucBooking.DashboardStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDate: listByDate,
		setStatus:  setStatus,
		reminders:  reminders,
		stats:      stats,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.DefaultQuery("date", todayString())

	if _, err := parseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	appointments, err := h.listByDate.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// STATUS
// ======================================================

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatus.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
	)

	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", notify.Classify(err).Message)
		case "invalid_transition":
			httperr.BadRequest(c, "invalid_transition", notify.Classify(err).Message)
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	outcome := notify.Ok("Status atualizado.")
	switch domain.Status(ap.Status) {
	case domain.StatusCompleted:
		outcome = notify.Ok("Agendamento concluído.")
	case domain.StatusCancelled:
		outcome = notify.Informational("Agendamento cancelado e cliente avisado.")
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": ap,
		"outcome":     outcome,
	})
}

// ======================================================
// REMINDERS
// ======================================================

type SendRemindersRequest struct {
	Date string `json:"date"` // vazio = hoje
}

func (h *AppointmentHandler) SendReminders(c *gin.Context) {
	var req SendRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Date == "" {
		req.Date = todayString()
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	sent, err := h.reminders.Execute(c.Request.Context(), req.Date)
	if err != nil {
		httperr.Internal(c, "failed_to_send_reminders", "Erro ao enviar lembretes.")
		return
	}

	outcome := notify.Informational("Nenhum lembrete pendente.")
	if sent > 0 {
		outcome = notify.Ok(fmt.Sprintf("%d lembrete(s) enviado(s).", sent))
	}

	c.JSON(http.StatusOK, gin.H{
		"sent":    sent,
		"outcome": outcome,
	})
}

// ======================================================
// DASHBOARD STATS
// ======================================================

func (h *AppointmentHandler) Stats(c *gin.Context) {
	dateStr := c.DefaultQuery("date", todayString())

	if _, err := parseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Erro ao calcular métricas.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
