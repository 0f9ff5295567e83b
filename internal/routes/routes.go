package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/config"
	"github.com/petcarebr/petshop-scheduler/internal/handlers"
	"github.com/petcarebr/petshop-scheduler/internal/metrics"
	"github.com/petcarebr/petshop-scheduler/internal/middleware"
	"github.com/petcarebr/petshop-scheduler/internal/notify"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	ucAppointment "github.com/petcarebr/petshop-scheduler/internal/usecase/appointment"
	ucReminder "github.com/petcarebr/petshop-scheduler/internal/usecase/reminder"
)

func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	notifier *notify.Dispatcher,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.StorageStatus(st))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	calendarLocks := ucAppointment.NewCalendarLocks()

	businessHours := ucAppointment.BusinessHours{
		StartHour:   cfg.BusinessHoursStart,
		EndHour:     cfg.BusinessHoursEnd,
		GridMinutes: cfg.SlotGridMinutes,
	}

	// ======================================================
	// USE CASES — AGENDAMENTOS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(st, calendarLocks, m)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(st, calendarLocks)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(st)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(st, notifier)
	startAppointmentUC := ucAppointment.NewStartAppointment(st)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(st)
	listAppointmentsUC := ucAppointment.NewListAppointments(st)
	availabilityUC := ucAppointment.NewGetAvailability(st, businessHours)
	statsUC := ucAppointment.NewGetAppointmentStats(st)
	upcomingUC := ucAppointment.NewGetUpcomingAppointments(st)
	calendarUC := ucAppointment.NewGetCalendarMonth(st)
	checkRemindersUC := ucAppointment.NewCheckReminders(st, upcomingUC, notifier, m)

	// ======================================================
	// USE CASES — LEMBRETES DE VACINA
	// ======================================================
	upsertReminderUC := ucReminder.NewUpsert(st)
	snoozeReminderUC := ucReminder.NewSnooze(st)
	resolveReminderUC := ucReminder.NewResolve(st)
	deactivateReminderUC := ucReminder.NewDeactivate(st)
	listDueRemindersUC := ucReminder.NewListDue(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		st,
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		startAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
		statsUC,
		upcomingUC,
		calendarUC,
		checkRemindersUC,
		cfg.ShopTimezone,
	)

	clientHandler := handlers.NewClientHandler(st)
	petHandler := handlers.NewPetHandler(st, upsertReminderUC, log)
	serviceHandler := handlers.NewServiceHandler(st)
	professionalHandler := handlers.NewProfessionalHandler(st)
	reminderHandler := handlers.NewReminderHandler(
		st,
		upsertReminderUC,
		snoozeReminderUC,
		resolveReminderUC,
		deactivateReminderUC,
		listDueRemindersUC,
	)
	settingsHandler := handlers.NewSettingsHandler(st)
	backupHandler := handlers.NewBackupHandler(st)

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		if err := st.Ping(c.Request.Context()); err != nil {
			c.JSON(200, gin.H{"status": "degraded", "detail": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.GET("/appointments/stats", appointmentHandler.Stats)
		api.GET("/appointments/upcoming", appointmentHandler.Upcoming)
		api.GET("/appointments/calendar", appointmentHandler.Calendar)
		api.POST("/appointments/check-reminders", appointmentHandler.CheckReminders)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.POST("/appointments/:id/start", appointmentHandler.Start)
		api.POST("/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// CLIENTES
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)
		api.GET("/clients/:id/pets", clientHandler.Pets)

		// ------------------------------
		// PETS
		// ------------------------------
		api.GET("/pets", petHandler.List)
		api.POST("/pets", petHandler.Create)
		api.GET("/pets/:id", petHandler.Get)
		api.PUT("/pets/:id", petHandler.Update)
		api.DELETE("/pets/:id", petHandler.Delete)

		// ------------------------------
		// SERVIÇOS
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/services/:id/price", serviceHandler.Price)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// PROFISSIONAIS
		// ------------------------------
		api.GET("/professionals", professionalHandler.List)
		api.POST("/professionals", professionalHandler.Create)
		api.GET("/professionals/:id", professionalHandler.Get)
		api.PUT("/professionals/:id", professionalHandler.Update)
		api.DELETE("/professionals/:id", professionalHandler.Delete)

		// ------------------------------
		// LEMBRETES DE VACINA
		// ------------------------------
		api.GET("/reminders", reminderHandler.List)
		api.GET("/reminders/due", reminderHandler.Due)
		api.POST("/reminders", reminderHandler.Upsert)
		api.POST("/reminders/:id/snooze", reminderHandler.Snooze)
		api.POST("/reminders/:id/resolve", reminderHandler.Resolve)
		api.POST("/reminders/:id/deactivate", reminderHandler.Deactivate)

		// ------------------------------
		// CONFIGURAÇÕES E CATÁLOGO
		// ------------------------------
		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Update)
		api.POST("/settings/complete-onboarding", settingsHandler.CompleteOnboarding)
		api.GET("/breeds", settingsHandler.Breeds)
		api.GET("/sizes", settingsHandler.Sizes)

		// ------------------------------
		// BACKUP
		// ------------------------------
		api.GET("/backup/export", backupHandler.Export)
		api.POST("/backup/import", backupHandler.Import)
	}
}
