package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores expostos em /metrics. Uma instância nil é
// válida e vira no-op, então componentes não precisam checar a flag.
type Metrics struct {
	RemoteFallbacks     *prometheus.CounterVec
	DegradedTransitions prometheus.Counter
	AppointmentsCreated prometheus.Counter
	SchedulingConflicts prometheus.Counter
	RemindersDispatched prometheus.Counter
}

func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}

	return &Metrics{
		RemoteFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "record_store_remote_fallbacks_total",
			Help:        "Operações que caíram para o cache local por falha remota",
			ConstLabels: labels,
		}, []string{"op"}),
		DegradedTransitions: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "record_store_degraded_transitions_total",
			Help:        "Transições do store para o modo degradado",
			ConstLabels: labels,
		}),
		AppointmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "scheduler_appointments_created_total",
			Help:        "Agendamentos criados com sucesso",
			ConstLabels: labels,
		}),
		SchedulingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "scheduler_conflicts_total",
			Help:        "Tentativas de agendamento recusadas por conflito de horário",
			ConstLabels: labels,
		}),
		RemindersDispatched: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reminders_dispatched_total",
			Help:        "Lembretes enviados ao dispatcher de notificações",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) CountFallback(op string) {
	if m == nil {
		return
	}
	m.RemoteFallbacks.WithLabelValues(op).Inc()
}

func (m *Metrics) CountDegraded() {
	if m == nil {
		return
	}
	m.DegradedTransitions.Inc()
}

func (m *Metrics) CountAppointmentCreated() {
	if m == nil {
		return
	}
	m.AppointmentsCreated.Inc()
}

func (m *Metrics) CountConflict() {
	if m == nil {
		return
	}
	m.SchedulingConflicts.Inc()
}

func (m *Metrics) CountReminderDispatched() {
	if m == nil {
		return
	}
	m.RemindersDispatched.Inc()
}
