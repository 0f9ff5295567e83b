package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	"github.com/petcarebr/petshop-scheduler/internal/models"
)

func seedReminder(t *testing.T) (*Upsert, string, context.Context) {
	t.Helper()

	st := newTestStore(t)
	uc := NewUpsert(st)
	ctx := context.Background()

	rm, err := uc.Execute(ctx, UpsertInput{
		PetID:       "pet_1",
		VaccineName: "V10",
		TargetDate:  time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return uc, rm.ID, ctx
}

func TestSnoozeShiftsNotifyWindow(t *testing.T) {
	uc, id, ctx := seedReminder(t)
	snooze := NewSnooze(uc.store)

	before := uc.store.GetReminder(ctx, id)
	rm, err := snooze.Execute(ctx, id, 3)

	require.NoError(t, err)
	assert.True(t, rm.NotifyFrom.Equal(before.NotifyFrom.AddDate(0, 0, 3)))
	assert.True(t, rm.Active)
	assert.Nil(t, rm.ResolvedAt)
}

func TestSnoozeRejectsNonPositiveDays(t *testing.T) {
	uc, id, ctx := seedReminder(t)
	snooze := NewSnooze(uc.store)

	_, err := snooze.Execute(ctx, id, 0)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestResolveDeactivatesAndStamps(t *testing.T) {
	uc, id, ctx := seedReminder(t)
	resolve := NewResolve(uc.store)

	rm, err := resolve.Execute(ctx, id)

	require.NoError(t, err)
	assert.False(t, rm.Active)
	require.NotNil(t, rm.ResolvedAt)
}

// Resolver e depois adiar reativa o lembrete.
func TestSnoozeAfterResolveReactivates(t *testing.T) {
	uc, id, ctx := seedReminder(t)
	resolve := NewResolve(uc.store)
	snooze := NewSnooze(uc.store)

	_, err := resolve.Execute(ctx, id)
	require.NoError(t, err)

	rm, err := snooze.Execute(ctx, id, 5)
	require.NoError(t, err)

	assert.True(t, rm.Active)
	assert.Nil(t, rm.ResolvedAt)
}

func TestDeactivateKeepsResolvedAtEmpty(t *testing.T) {
	uc, id, ctx := seedReminder(t)
	deactivate := NewDeactivate(uc.store)

	rm, err := deactivate.Execute(ctx, id)

	require.NoError(t, err)
	assert.False(t, rm.Active)
	assert.Nil(t, rm.ResolvedAt)
}

func TestLifecycleNotFound(t *testing.T) {
	uc, _, ctx := seedReminder(t)

	_, err := NewResolve(uc.store).Execute(ctx, "rem_fantasma")
	assert.True(t, apperr.IsNotFound(err))
}

func TestListDueFiltersAndSorts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	resolved := now.Add(-time.Hour)

	for _, rm := range []models.Reminder{
		{ID: "rem_due_late", PetID: "pet_1", VaccineName: "V10", TargetDate: now.AddDate(0, 0, 6), NotifyFrom: now.AddDate(0, 0, -1), Active: true},
		{ID: "rem_due_soon", PetID: "pet_1", VaccineName: "Antirrábica", TargetDate: now.AddDate(0, 0, 2), NotifyFrom: now.AddDate(0, 0, -2), Active: true},
		{ID: "rem_future", PetID: "pet_1", VaccineName: "Gripe", TargetDate: now.AddDate(0, 2, 0), NotifyFrom: now.AddDate(0, 0, 30), Active: true},
		{ID: "rem_inactive", PetID: "pet_1", VaccineName: "V8", TargetDate: now.AddDate(0, 0, 3), NotifyFrom: now.AddDate(0, 0, -3), Active: false},
		{ID: "rem_resolved", PetID: "pet_1", VaccineName: "V12", TargetDate: now.AddDate(0, 0, 3), NotifyFrom: now.AddDate(0, 0, -3), Active: true, ResolvedAt: &resolved},
	} {
		rm := rm
		_, err := st.SaveReminder(ctx, &rm)
		require.NoError(t, err)
	}

	uc := NewListDue(st)
	uc.now = func() time.Time { return now }

	due := uc.Execute(ctx)

	require.Len(t, due, 2)
	assert.Equal(t, "rem_due_soon", due[0].ID, "ordenado pela data alvo")
	assert.Equal(t, "rem_due_late", due[1].ID)
}
