package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	ucreminder "github.com/petcarebr/petshop-scheduler/internal/usecase/reminder"
)

type ReminderHandler struct {
	store      *store.Store
	upsert     *ucreminder.Upsert
	snooze     *ucreminder.Snooze
	resolve    *ucreminder.Resolve
	deactivate *ucreminder.Deactivate
	listDue    *ucreminder.ListDue
}

func NewReminderHandler(
	st *store.Store,
	upsert *ucreminder.Upsert,
	snooze *ucreminder.Snooze,
	resolve *ucreminder.Resolve,
	deactivate *ucreminder.Deactivate,
	listDue *ucreminder.ListDue,
) *ReminderHandler {
	return &ReminderHandler{
		store:      st,
		upsert:     upsert,
		snooze:     snooze,
		resolve:    resolve,
		deactivate: deactivate,
		listDue:    listDue,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertReminderRequest struct {
	PetID       string `json:"petId" binding:"required"`
	VaccineName string `json:"vacinaNome" binding:"required"`
	VaccineType string `json:"vacinaTipo"`
	TargetDate  string `json:"dataAlvo" binding:"required"` // 2006-01-02
	LeadDays    int    `json:"diasAntecedencia"`
}

type SnoozeReminderRequest struct {
	Days int `json:"dias" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ReminderHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.GetReminders(c.Request.Context()))
}

func (h *ReminderHandler) Due(c *gin.Context) {
	httpresp.List(c, h.listDue.Execute(c.Request.Context()))
}

func (h *ReminderHandler) Upsert(c *gin.Context) {
	var req UpsertReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	target, err := time.ParseInLocation("2006-01-02", req.TargetDate, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data alvo inválida, use o formato 2006-01-02.")
		return
	}

	rm, err := h.upsert.Execute(c.Request.Context(), ucreminder.UpsertInput{
		PetID:       req.PetID,
		VaccineName: req.VaccineName,
		VaccineType: req.VaccineType,
		TargetDate:  target,
		LeadDays:    req.LeadDays,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rm)
}

func (h *ReminderHandler) Snooze(c *gin.Context) {
	var req SnoozeReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rm, err := h.snooze.Execute(c.Request.Context(), c.Param("id"), req.Days)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rm)
}

func (h *ReminderHandler) Resolve(c *gin.Context) {
	rm, err := h.resolve.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rm)
}

func (h *ReminderHandler) Deactivate(c *gin.Context) {
	rm, err := h.deactivate.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rm)
}
