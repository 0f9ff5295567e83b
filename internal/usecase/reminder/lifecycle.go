package reminder

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type Snooze struct {
	store *store.Store
}

func NewSnooze(st *store.Store) *Snooze {
	return &Snooze{store: st}
}

// Execute adia o aviso em N dias e limpa a resolução, reativando o
// lembrete caso já tivesse sido resolvido.
func (uc *Snooze) Execute(ctx context.Context, id string, days int) (*models.Reminder, error) {
	if days <= 0 {
		return nil, apperr.Validation("dias de adiamento devem ser positivos")
	}

	rm := uc.store.GetReminder(ctx, id)
	if rm == nil {
		return nil, apperr.NotFound("lembrete", id)
	}

	rm.NotifyFrom = rm.NotifyFrom.AddDate(0, 0, days)
	rm.ResolvedAt = nil
	rm.Active = true

	return uc.store.SaveReminder(ctx, rm)
}

type Resolve struct {
	store *store.Store
	now   func() time.Time
}

func NewResolve(st *store.Store) *Resolve {
	return &Resolve{store: st, now: time.Now}
}

func (uc *Resolve) Execute(ctx context.Context, id string) (*models.Reminder, error) {
	rm := uc.store.GetReminder(ctx, id)
	if rm == nil {
		return nil, apperr.NotFound("lembrete", id)
	}

	now := uc.now()
	rm.Active = false
	rm.ResolvedAt = &now

	return uc.store.SaveReminder(ctx, rm)
}

type Deactivate struct {
	store *store.Store
}

func NewDeactivate(st *store.Store) *Deactivate {
	return &Deactivate{store: st}
}

// Execute desliga o lembrete sem marcá-lo como resolvido.
func (uc *Deactivate) Execute(ctx context.Context, id string) (*models.Reminder, error) {
	rm := uc.store.GetReminder(ctx, id)
	if rm == nil {
		return nil, apperr.NotFound("lembrete", id)
	}

	rm.Active = false

	return uc.store.SaveReminder(ctx, rm)
}
