package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	ucreminder "github.com/petcarebr/petshop-scheduler/internal/usecase/reminder"
)

type PetHandler struct {
	store  *store.Store
	upsert *ucreminder.Upsert
	log    *zap.Logger
}

func NewPetHandler(st *store.Store, upsert *ucreminder.Upsert, log *zap.Logger) *PetHandler {
	return &PetHandler{store: st, upsert: upsert, log: log}
}

func (h *PetHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.GetPets(c.Request.Context()))
}

func (h *PetHandler) Get(c *gin.Context) {
	pet := h.store.GetPet(c.Request.Context(), c.Param("id"))
	if pet == nil {
		httperr.NotFound(c, "not_found", "Pet não encontrado.")
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if pet.Name == "" || pet.ClientID == "" {
		httperr.BadRequest(c, "validation_error", "Nome e cliente são obrigatórios.")
		return
	}

	if h.store.GetClient(c.Request.Context(), pet.ClientID) == nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	if pet.ID == "" {
		pet.ID = h.store.GenerateID("pet")
	}

	saved, err := h.store.SavePet(c.Request.Context(), &pet)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.syncVaccineReminders(c, saved)
	httpresp.Created(c, saved)
}

func (h *PetHandler) Update(c *gin.Context) {
	existing := h.store.GetPet(c.Request.Context(), c.Param("id"))
	if existing == nil {
		httperr.NotFound(c, "not_found", "Pet não encontrado.")
		return
	}

	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pet.ID = existing.ID
	pet.CreatedAt = existing.CreatedAt
	if pet.ClientID == "" {
		pet.ClientID = existing.ClientID
	}

	saved, err := h.store.SavePet(c.Request.Context(), &pet)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.syncVaccineReminders(c, saved)
	httpresp.OK(c, saved)
}

func (h *PetHandler) Delete(c *gin.Context) {
	if err := h.store.DeletePet(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(204)
}

// syncVaccineReminders cria ou move o lembrete de renovação de cada
// vacina com próxima dose informada. Falha aqui não falha o cadastro do
// pet: o lembrete é conveniência, a carteira de vacinação é o registro.
func (h *PetHandler) syncVaccineReminders(c *gin.Context, pet *models.Pet) {
	for _, v := range pet.Vaccines {
		if v.NextDose == "" {
			continue
		}

		target, err := time.ParseInLocation("2006-01-02", v.NextDose, time.Local)
		if err != nil {
			h.log.Warn("próxima dose em formato inválido, lembrete ignorado",
				zap.String("pet", pet.ID),
				zap.String("vacina", v.Name),
				zap.String("proximaDose", v.NextDose),
			)
			continue
		}

		if _, err := h.upsert.Execute(c.Request.Context(), ucreminder.UpsertInput{
			PetID:       pet.ID,
			VaccineName: v.Name,
			VaccineType: v.Type,
			TargetDate:  target,
		}); err != nil {
			h.log.Warn("falha ao registrar lembrete de vacina",
				zap.String("pet", pet.ID),
				zap.String("vacina", v.Name),
				zap.Error(err),
			)
		}
	}
}
