package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings := h.store.GetSettings(c.Request.Context())
	if settings == nil {
		httperr.NotFound(c, "not_found", "Configurações ainda não inicializadas.")
		return
	}
	httpresp.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if existing := h.store.GetSettings(c.Request.Context()); existing != nil {
		settings.CreatedAt = existing.CreatedAt
		settings.FirstRun = existing.FirstRun
	}

	saved, err := h.store.SaveSettings(c.Request.Context(), &settings)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, saved)
}

// CompleteOnboarding encerra a primeira execução.
func (h *SettingsHandler) CompleteOnboarding(c *gin.Context) {
	if err := h.store.CompleteOnboarding(c.Request.Context()); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"firstRun": false})
}

// Catálogo de referência gravado no bootstrap

func (h *SettingsHandler) Breeds(c *gin.Context) {
	httpresp.List(c, h.store.GetBreeds(c.Request.Context()))
}

func (h *SettingsHandler) Sizes(c *gin.Context) {
	httpresp.List(c, h.store.GetSizes(c.Request.Context()))
}
