package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Avatar      string   `json:"avatar"`
	Rating      float64  `json:"rating"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Order("created_at ASC, id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberResponse{
			ID:          b.ID,
			Name:        b.Name,
			Specialties: b.SpecialtyList(),
			Avatar:      b.Avatar,
			Rating:      b.Rating,
		})
	}

	c.JSON(200, gin.H{
		"data":  out,
		"total": len(out),
	})
}
