package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/httpresp"
	"github.com/BruksfildServices01/elite-booking/internal/models"
	"github.com/BruksfildServices01/elite-booking/internal/notify"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("created_at ASC, id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// nome, duração e preço são obrigatórios e positivos
	if strings.TrimSpace(req.Name) == "" || req.Duration <= 0 || req.Price <= 0 {
		httperr.BadRequest(c, "validation_failed", "Preencha todos os campos obrigatórios.")
		return
	}

	service := models.Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.Duration,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"service": service,
		"outcome": notify.Ok("Serviço criado."),
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	// update em ID desconhecido é erro explícito, não no-op silencioso
	var service models.Service
	if err := h.db.Where("id = ?", id).First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.DurationMin = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if strings.TrimSpace(service.Name) == "" || service.DurationMin <= 0 || service.Price <= 0 {
		httperr.BadRequest(c, "validation_failed", "Preencha todos os campos obrigatórios.")
		return
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"service": service,
		"outcome": notify.Ok("Serviço atualizado."),
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{
		"outcome": notify.Informational("Serviço removido."),
	})
}
