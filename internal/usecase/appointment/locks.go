package appointment

import "sync"

// CalendarLocks serializa as escritas no calendário de cada
// profissional. A checagem de conflito e a gravação do agendamento
// acontecem sob o mesmo lock, fechando a janela entre ler os
// agendamentos existentes e gravar o novo. O id vazio (loja com um
// único profissional) é uma chave de calendário como outra qualquer.
type CalendarLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCalendarLocks() *CalendarLocks {
	return &CalendarLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock trava o calendário do profissional e devolve o unlock.
func (c *CalendarLocks) Lock(professionalID string) func() {
	c.mu.Lock()
	l, ok := c.locks[professionalID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[professionalID] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}
