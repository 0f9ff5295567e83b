package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type ClientHandler struct {
	store *store.Store
}

func NewClientHandler(st *store.Store) *ClientHandler {
	return &ClientHandler{store: st}
}

func (h *ClientHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.GetClients(c.Request.Context()))
}

func (h *ClientHandler) Get(c *gin.Context) {
	client := h.store.GetClient(c.Request.Context(), c.Param("id"))
	if client == nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if client.FullName == "" || client.WhatsApp == "" {
		httperr.BadRequest(c, "validation_error", "Nome e WhatsApp são obrigatórios.")
		return
	}

	if client.ID == "" {
		client.ID = h.store.GenerateID("cli")
	}

	saved, err := h.store.SaveClient(c.Request.Context(), &client)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, saved)
}

func (h *ClientHandler) Update(c *gin.Context) {
	existing := h.store.GetClient(c.Request.Context(), c.Param("id"))
	if existing == nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// id da URL prevalece sobre o corpo
	client.ID = existing.ID
	client.CreatedAt = existing.CreatedAt

	saved, err := h.store.SaveClient(c.Request.Context(), &client)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, saved)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(204)
}

// Pets lista os pets do tutor.
func (h *ClientHandler) Pets(c *gin.Context) {
	h.store.GetAll(c.Request.Context(), store.Pets)
	httpresp.List(c, h.store.GetPetsByClient(c.Param("id")))
}
