package reminder

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

// DefaultLeadDays é a antecedência padrão do aviso de renovação.
const DefaultLeadDays = 7

type UpsertInput struct {
	PetID       string
	VaccineName string
	VaccineType string
	TargetDate  time.Time
	LeadDays    int
}

type Upsert struct {
	store *store.Store
	now   func() time.Time
}

func NewUpsert(st *store.Store) *Upsert {
	return &Upsert{store: st, now: time.Now}
}

// Execute cria ou atualiza o lembrete de renovação quando a próxima
// dose de uma vacina é definida ou alterada. A chave de deduplicação é
// pet + vacina + tipo, considerando apenas lembretes ativos: mudar a
// data move o lembrete existente em vez de acumular duplicatas.
func (uc *Upsert) Execute(ctx context.Context, in UpsertInput) (*models.Reminder, error) {
	if in.PetID == "" || in.VaccineName == "" {
		return nil, apperr.MissingFields("petId", "vacinaNome")
	}
	if in.TargetDate.IsZero() {
		return nil, apperr.MissingFields("dataAlvo")
	}

	pet := uc.store.GetPet(ctx, in.PetID)
	if pet == nil {
		return nil, apperr.NotFound("pet", in.PetID)
	}

	leadDays := in.LeadDays
	if leadDays <= 0 {
		leadDays = DefaultLeadDays
	}
	notifyFrom := in.TargetDate.AddDate(0, 0, -leadDays)

	// procura um lembrete ativo da mesma vacina para o mesmo pet
	var existing *models.Reminder
	for _, r := range uc.store.Query(store.Reminders, func(rec store.Record) bool {
		rm := rec.(*models.Reminder)
		return rm.Active &&
			rm.PetID == in.PetID &&
			rm.VaccineName == in.VaccineName &&
			rm.VaccineType == in.VaccineType
	}) {
		rm := r.(*models.Reminder)
		existing = rm
		break
	}

	if existing != nil {
		existing.TargetDate = in.TargetDate
		existing.NotifyFrom = notifyFrom
		existing.ResolvedAt = nil
		return uc.store.SaveReminder(ctx, existing)
	}

	return uc.store.SaveReminder(ctx, &models.Reminder{
		ID:          uc.store.GenerateID("rem"),
		PetID:       in.PetID,
		ClientID:    pet.ClientID,
		VaccineName: in.VaccineName,
		VaccineType: in.VaccineType,
		TargetDate:  in.TargetDate,
		NotifyFrom:  notifyFrom,
		Active:      true,
	})
}
