package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/elite-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	listSlots *ucBooking.ListAvailableSlots
	genGrid   *ucBooking.GenerateWeekGrid
}

func NewSlotHandler(
	listSlots *ucBooking.ListAvailableSlots,
	genGrid *ucBooking.GenerateWeekGrid,
) *SlotHandler {
	return &SlotHandler{
		listSlots: listSlots,
		genGrid:   genGrid,
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *SlotHandler) ListAvailable(c *gin.Context) {
	dateStr := c.DefaultQuery("date", todayString())
	barberID := c.Query("barber_id")

	if _, err := parseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), dateStr, barberID)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao consultar horários.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// GRID GENERATION
// ======================================================

type GenerateGridRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD; vazio = hoje
}

func (h *SlotHandler) GenerateGrid(c *gin.Context) {
	var req GenerateGridRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.StartDate == "" {
		req.StartDate = todayString()
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.genGrid.Execute(c.Request.Context(), start)
	if err != nil {
		httperr.Internal(c, "grid_generation_failed", "Erro ao gerar a grade.")
		return
	}

	c.JSON(http.StatusCreated, out)
}
