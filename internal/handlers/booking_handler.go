package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/elite-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	bookSlot *ucBooking.BookSlot
}

func NewBookingHandler(bookSlot *ucBooking.BookSlot) *BookingHandler {
	return &BookingHandler{bookSlot: bookSlot}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SlotID        string `json:"slot_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.bookSlot.Execute(c.Request.Context(), ucBooking.BookSlotInput{
		SlotID:        req.SlotID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
	})

	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	outcome := notify.Ok("Horário reservado! Confirmação enviada por WhatsApp.")
	if !out.ConfirmationDelivered {
		outcome = notify.Warn("Horário reservado, mas a confirmação não pôde ser enviada.")
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": out.Appointment,
		"outcome":     outcome,
	})
}

func (h *BookingHandler) mapBookingError(c *gin.Context, err error) {
	outcome := notify.Classify(err)

	switch httperr.BusinessCode(err) {
	case "validation_failed", "invalid_phone":
		httperr.BadRequest(c, httperr.BusinessCode(err), outcome.Message)
	case "service_not_found", "slot_not_found":
		httperr.NotFound(c, httperr.BusinessCode(err), outcome.Message)
	case "slot_already_booked":
		httperr.Conflict(c, "slot_already_booked", outcome.Message)
	default:
		httperr.Internal(c, "failed_to_book_slot", "Erro ao reservar horário.")
	}
}
