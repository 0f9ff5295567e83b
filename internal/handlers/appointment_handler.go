package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	"github.com/petcarebr/petshop-scheduler/internal/timezone"
	ucappointment "github.com/petcarebr/petshop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store *store.Store

	create         *ucappointment.CreateAppointment
	update         *ucappointment.UpdateAppointment
	cancel         *ucappointment.CancelAppointment
	confirm        *ucappointment.ConfirmAppointment
	start          *ucappointment.StartAppointment
	complete       *ucappointment.CompleteAppointment
	list           *ucappointment.ListAppointments
	availability   *ucappointment.GetAvailability
	stats          *ucappointment.GetAppointmentStats
	upcoming       *ucappointment.GetUpcomingAppointments
	calendar       *ucappointment.GetCalendarMonth
	checkReminders *ucappointment.CheckReminders

	shopTimezone string
}

func NewAppointmentHandler(
	st *store.Store,
	create *ucappointment.CreateAppointment,
	update *ucappointment.UpdateAppointment,
	cancel *ucappointment.CancelAppointment,
	confirm *ucappointment.ConfirmAppointment,
	startUC *ucappointment.StartAppointment,
	complete *ucappointment.CompleteAppointment,
	list *ucappointment.ListAppointments,
	availability *ucappointment.GetAvailability,
	stats *ucappointment.GetAppointmentStats,
	upcoming *ucappointment.GetUpcomingAppointments,
	calendar *ucappointment.GetCalendarMonth,
	checkReminders *ucappointment.CheckReminders,
	shopTimezone string,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:          st,
		create:         create,
		update:         update,
		cancel:         cancel,
		confirm:        confirm,
		start:          startUC,
		complete:       complete,
		list:           list,
		availability:   availability,
		stats:          stats,
		upcoming:       upcoming,
		calendar:       calendar,
		checkReminders: checkReminders,
		shopTimezone:   shopTimezone,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       string                    `json:"clienteId" binding:"required"`
	PetID          string                    `json:"petId" binding:"required"`
	Services       []models.ServiceSelection `json:"servicosSelecionados" binding:"required"`
	StartTime      time.Time                 `json:"dataHora" binding:"required"`
	ProfessionalID string                    `json:"profissionalId" binding:"required"`
	Notes          string                    `json:"observacoes"`
	Discount       float64                   `json:"desconto"`
}

type UpdateAppointmentRequest struct {
	StartTime      *time.Time                `json:"dataHora"`
	ProfessionalID *string                   `json:"profissionalId"`
	Services       []models.ServiceSelection `json:"servicosSelecionados"`
	Status         *string                   `json:"status"`
	Notes          *string                   `json:"observacoes"`
	Payment        *models.Payment           `json:"pagamento"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"motivo"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		PetID:          req.PetID,
		Services:       req.Services,
		StartTime:      req.StartTime,
		ProfessionalID: req.ProfessionalID,
		Notes:          req.Notes,
		Discount:       req.Discount,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	filters := ucappointment.ListFilters{
		Status:         c.Query("status"),
		ClientID:       c.Query("clienteId"),
		PetID:          c.Query("petId"),
		ProfessionalID: c.Query("profissionalId"),
		Date:           c.Query("data"),
	}

	if from := c.Query("de"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
			return
		}
		filters.From = t
	}
	if to := c.Query("ate"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida.")
			return
		}
		filters.To = t
	}

	httpresp.List(c, h.list.Execute(c.Request.Context(), filters))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap := h.store.GetAppointment(c.Request.Context(), c.Param("id"))
	if ap == nil {
		httperr.NotFound(c, "not_found", "Agendamento não encontrado.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE / STATUS
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucappointment.UpdateAppointmentInput{
		ID:             c.Param("id"),
		StartTime:      req.StartTime,
		ProfessionalID: req.ProfessionalID,
		Services:       req.Services,
		Status:         req.Status,
		Notes:          req.Notes,
		Payment:        req.Payment,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelAppointmentRequest
	// corpo opcional: cancelamento sem motivo é válido
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	ap, err := h.start.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	// aquece o cache antes da exclusão para o resultado refletir o remoto
	if h.store.GetAppointment(c.Request.Context(), c.Param("id")) == nil {
		httperr.NotFound(c, "not_found", "Agendamento não encontrado.")
		return
	}

	h.store.DeleteAppointment(c.Request.Context(), c.Param("id"))
	c.Status(204)
}

// ======================================================
// AGENDA
// ======================================================

// Availability enumera horários livres: ?profissionalId=...&data=2026-08-28&duracao=90
func (h *AppointmentHandler) Availability(c *gin.Context) {
	professionalID := c.Query("profissionalId")

	date, err := time.ParseInLocation("2006-01-02", c.Query("data"), timezone.Location(h.shopTimezone))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use o formato 2006-01-02.")
		return
	}

	duration, _ := strconv.Atoi(c.DefaultQuery("duracao", "0"))

	httpresp.List(c, h.availability.Execute(c.Request.Context(), professionalID, date, duration))
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context(), c.DefaultQuery("periodo", "month"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("dias", "7"))
	if err != nil || days <= 0 {
		httperr.BadRequest(c, "invalid_days", "Quantidade de dias inválida.")
		return
	}
	httpresp.List(c, h.upcoming.Execute(c.Request.Context(), days))
}

// Calendar devolve a grade mensal: ?ano=2026&mes=8. Sem parâmetros,
// assume o mês corrente no fuso da loja.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	now := timezone.NowIn(h.shopTimezone)

	year, errY := strconv.Atoi(c.DefaultQuery("ano", strconv.Itoa(now.Year())))
	month, errM := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(now.Month()))))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	loc := timezone.Location(h.shopTimezone)
	httpresp.List(c, h.calendar.Execute(c.Request.Context(), year, time.Month(month), loc))
}

func (h *AppointmentHandler) CheckReminders(c *gin.Context) {
	dispatched := h.checkReminders.Execute(c.Request.Context())
	httpresp.OK(c, gin.H{"lembretesEnviados": dispatched})
}
