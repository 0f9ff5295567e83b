package notify

import (
	"go.uber.org/zap"
)

// Event é uma notificação de saída já resolvida: destinatário e texto.
type Event struct {
	Kind        string // appointment_reminder, vaccine_reminder, confirmation
	ClientName  string
	Phone       string
	Message     string
	ReferenceID string
}

// Dispatcher entrega notificações fora do caminho crítico. A fila é
// limitada e o envio nunca bloqueia nem falha a operação chamadora: fila
// cheia descarta o evento com log.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(log *zap.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}

	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		link := WhatsAppLink(ev.Phone, ev.Message)

		// o envio real é do colaborador externo; aqui registramos o
		// link pronto para disparo
		d.log.Info("notificação pronta",
			zap.String("kind", ev.Kind),
			zap.String("client", ev.ClientName),
			zap.String("reference", ev.ReferenceID),
			zap.String("link", link),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos a notificação, nunca quebrar a API
		d.log.Warn("fila de notificações cheia, evento descartado",
			zap.String("kind", ev.Kind),
			zap.String("reference", ev.ReferenceID),
		)
	}
}

// Close drena a fila e encerra o worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
