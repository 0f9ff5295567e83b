package reminder

import (
	"context"
	"sort"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type ListDue struct {
	store *store.Store
	now   func() time.Time
}

func NewListDue(st *store.Store) *ListDue {
	return &ListDue{store: st, now: time.Now}
}

// Execute lista lembretes ativos, não resolvidos, cuja janela de aviso
// já abriu, ordenados pela data alvo.
func (uc *ListDue) Execute(ctx context.Context) []models.Reminder {
	// snapshot remoto antes da varredura
	uc.store.GetAll(ctx, store.Reminders)

	now := uc.now()

	out := []models.Reminder{}
	for _, r := range uc.store.Query(store.Reminders, func(rec store.Record) bool {
		rm := rec.(*models.Reminder)
		return rm.Active && rm.ResolvedAt == nil && !rm.NotifyFrom.After(now)
	}) {
		out = append(out, *r.(*models.Reminder))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TargetDate.Before(out[j].TargetDate)
	})

	return out
}
