package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type ServiceHandler struct {
	store *store.Store
}

func NewServiceHandler(st *store.Store) *ServiceHandler {
	return &ServiceHandler{store: st}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services := h.store.GetServices(c.Request.Context())

	if c.Query("ativos") == "true" {
		filtered := make([]models.Service, 0, len(services))
		for _, s := range services {
			if s.Active {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service := h.store.GetService(c.Request.Context(), c.Param("id"))
	if service == nil {
		httperr.NotFound(c, "not_found", "Serviço não encontrado.")
		return
	}
	httpresp.OK(c, service)
}

// Price resolve o preço do serviço para um porte/peso:
// ?porte=G ou ?pesoKg=32.5
func (h *ServiceHandler) Price(c *gin.Context) {
	service := h.store.GetService(c.Request.Context(), c.Param("id"))
	if service == nil {
		httperr.NotFound(c, "not_found", "Serviço não encontrado.")
		return
	}

	weight, _ := strconv.ParseFloat(c.Query("pesoKg"), 64)

	httpresp.OK(c, gin.H{
		"serviceId": service.ID,
		"preco":     service.PriceFor(c.Query("porte"), weight),
	})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if service.Name == "" {
		httperr.BadRequest(c, "validation_error", "Nome é obrigatório.")
		return
	}

	if service.ID == "" {
		service.ID = h.store.GenerateID("srv")
	}

	saved, err := h.store.SaveService(c.Request.Context(), &service)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, saved)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	existing := h.store.GetService(c.Request.Context(), c.Param("id"))
	if existing == nil {
		httperr.NotFound(c, "not_found", "Serviço não encontrado.")
		return
	}

	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt

	saved, err := h.store.SaveService(c.Request.Context(), &service)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, saved)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(204)
}
