package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/httpresp"
	"github.com/BruksfildServices01/elite-booking/internal/models"
	"github.com/BruksfildServices01/elite-booking/internal/notify"
)

// Janelas de disponibilidade do painel do barbeiro — CRUD simples,
// sem reconciliação com a grade de slots.
type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type CreateAvailabilityRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	barberID := c.Query("barber_id")

	q := h.db.Order("date ASC, start_time ASC")
	if barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var windows []models.AvailabilitySlot
	if err := q.Find(&windows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Erro ao listar disponibilidade.")
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// o pseudo-barbeiro "any" nunca pode ser persistido
	if req.BarberID == domain.AnyBarber {
		httperr.BadRequest(c, "barber_not_found", "Selecione um barbeiro.")
		return
	}

	var barber models.Barber
	if err := h.db.Where("id = ?", req.BarberID).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if !isValidTime(req.StartTime) || !isValidTime(req.EndTime) || req.StartTime >= req.EndTime {
		httperr.BadRequest(c, "validation_failed", "Horário final deve ser após o inicial.")
		return
	}

	window := models.AvailabilitySlot{
		ID:        uuid.NewString(),
		BarberID:  req.BarberID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&window).Error; err != nil {
		httperr.Internal(c, "failed_to_create_availability", "Erro ao salvar disponibilidade.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"availability": window,
		"outcome":      notify.Ok("Janela de disponibilidade adicionada."),
	})
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.AvailabilitySlot{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_availability", "Erro ao remover disponibilidade.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "availability_not_found", "Janela não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome": notify.Informational("Janela de disponibilidade removida."),
	})
}
