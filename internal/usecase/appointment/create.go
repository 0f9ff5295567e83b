package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/metrics"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       string
	PetID          string
	Services       []models.ServiceSelection
	StartTime      time.Time
	ProfessionalID string
	Notes          string
	Discount       float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store   *store.Store
	locks   *CalendarLocks
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewCreateAppointment(
	st *store.Store,
	locks *CalendarLocks,
	m *metrics.Metrics,
) *CreateAppointment {
	return &CreateAppointment{
		store:   st,
		locks:   locks,
		metrics: m,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios — nada é gravado se faltar algo
	// --------------------------------------------------
	missing := []string{}
	if in.ClientID == "" {
		missing = append(missing, "clienteId")
	}
	if in.PetID == "" {
		missing = append(missing, "petId")
	}
	if len(in.Services) == 0 {
		missing = append(missing, "servicosSelecionados")
	}
	if in.StartTime.IsZero() {
		missing = append(missing, "dataHora")
	}
	if in.ProfessionalID == "" {
		missing = append(missing, "profissionalId")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	if in.StartTime.Before(uc.now()) {
		return nil, apperr.Validation("data e hora não podem ser no passado")
	}

	// --------------------------------------------------
	// 2. Referências para snapshot de nomes
	// --------------------------------------------------
	client := uc.store.GetClient(ctx, in.ClientID)
	if client == nil {
		return nil, apperr.NotFound("cliente", in.ClientID)
	}

	pet := uc.store.GetPet(ctx, in.PetID)
	if pet == nil {
		return nil, apperr.NotFound("pet", in.PetID)
	}

	professional := uc.store.GetProfessional(ctx, in.ProfessionalID)
	if professional == nil {
		return nil, apperr.NotFound("profissional", in.ProfessionalID)
	}

	// --------------------------------------------------
	// 3. Preço e duração a partir do catálogo de serviços
	// --------------------------------------------------
	// Itens sem preço aplicado recebem o preço resolvido para o
	// porte/peso do pet; itens com preço explícito são snapshot e
	// ficam como vieram.
	uc.resolvePrices(ctx, in.Services, pet)

	duration := domain.TotalDuration(in.Services, func(id string) *models.Service {
		return uc.store.GetService(ctx, id)
	})

	// --------------------------------------------------
	// 4. Conflito + gravação sob o lock do calendário
	// --------------------------------------------------
	// Atualiza o snapshot local antes de travar o calendário.
	uc.store.GetAll(ctx, store.Appointments)

	unlock := uc.locks.Lock(in.ProfessionalID)
	defer unlock()

	existing := uc.store.GetAppointmentsByProfessional(in.ProfessionalID)
	if conflict := domain.FindConflict(existing, in.StartTime, duration, ""); conflict != nil {
		uc.metrics.CountConflict()
		return nil, apperr.Conflict(conflict.ID)
	}

	now := uc.now()
	ap := &models.Appointment{
		ID:               uc.store.GenerateID("apt"),
		ClientID:         in.ClientID,
		ClientName:       client.FullName,
		PetID:            in.PetID,
		PetName:          pet.Name,
		Services:         in.Services,
		StartTime:        in.StartTime,
		DurationMinutes:  duration,
		ProfessionalID:   in.ProfessionalID,
		ProfessionalName: professional.Name,
		Status:           string(domain.InitialStatus()),
		Notes:            in.Notes,
		Payment: models.Payment{
			Status:    string(domain.InitialPaymentStatus()),
			AmountDue: domain.Total(in.Services, in.Discount),
			Discount:  in.Discount,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := uc.store.SaveAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.metrics.CountAppointmentCreated()
	return saved, nil
}

func (uc *CreateAppointment) resolvePrices(
	ctx context.Context,
	selections []models.ServiceSelection,
	pet *models.Pet,
) {
	var multipliers map[string]float64
	defaultSize := ""
	if settings := uc.store.GetSettings(ctx); settings != nil {
		multipliers = settings.PriceRules.SizeMultipliers
		defaultSize = settings.DefaultPetSize
	}

	sizeCode := uc.sizeCodeFor(ctx, pet, defaultSize)

	for i := range selections {
		if selections[i].AppliedPrice > 0 {
			continue
		}
		svc := uc.store.GetService(ctx, selections[i].ServiceID)
		if svc == nil {
			continue
		}

		selections[i].AppliedPrice = domain.ResolvePrice(svc, sizeCode, pet.WeightKg, multipliers)
		if selections[i].Name == "" {
			selections[i].Name = svc.Name
		}
	}
}

// sizeCodeFor classifica o pet pela faixa de peso do catálogo; sem peso
// cadastrado vale o porte padrão da loja.
func (uc *CreateAppointment) sizeCodeFor(ctx context.Context, pet *models.Pet, defaultSize string) string {
	if pet.WeightKg > 0 {
		for _, band := range uc.store.GetSizes(ctx) {
			if pet.WeightKg >= band.WeightMin && pet.WeightKg < band.WeightMax {
				return band.Code
			}
		}
	}
	return defaultSize
}
