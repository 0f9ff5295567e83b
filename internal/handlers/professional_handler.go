package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type ProfessionalHandler struct {
	store *store.Store
}

func NewProfessionalHandler(st *store.Store) *ProfessionalHandler {
	return &ProfessionalHandler{store: st}
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.GetProfessionals(c.Request.Context()))
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	p := h.store.GetProfessional(c.Request.Context(), c.Param("id"))
	if p == nil {
		httperr.NotFound(c, "not_found", "Profissional não encontrado.")
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var p models.Professional
	if err := c.ShouldBindJSON(&p); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if p.Name == "" {
		httperr.BadRequest(c, "validation_error", "Nome é obrigatório.")
		return
	}

	if p.ID == "" {
		p.ID = h.store.GenerateID("pro")
	}

	saved, err := h.store.SaveProfessional(c.Request.Context(), &p)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, saved)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	existing := h.store.GetProfessional(c.Request.Context(), c.Param("id"))
	if existing == nil {
		httperr.NotFound(c, "not_found", "Profissional não encontrado.")
		return
	}

	var p models.Professional
	if err := c.ShouldBindJSON(&p); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	saved, err := h.store.SaveProfessional(c.Request.Context(), &p)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, saved)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteProfessional(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(204)
}
