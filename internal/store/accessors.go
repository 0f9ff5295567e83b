package store

import (
	"context"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	"github.com/petcarebr/petshop-scheduler/internal/models"
)

// ======================================================
// Acessores tipados por coleção
// ======================================================

// ------------------ Clientes ------------------

func (s *Store) GetClients(ctx context.Context) []models.Client {
	return collect[models.Client](s.GetAll(ctx, Clients))
}

func (s *Store) GetClient(ctx context.Context, id string) *models.Client {
	if rec := s.GetByID(ctx, Clients, id); rec != nil {
		return rec.(*models.Client)
	}
	return nil
}

func (s *Store) SaveClient(ctx context.Context, c *models.Client) (*models.Client, error) {
	rec, err := s.Save(ctx, Clients, c)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Client), nil
}

// DeleteClient recusa a exclusão quando existem agendamentos vinculados.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	deps := s.Query(Appointments, func(r Record) bool {
		return r.(*models.Appointment).ClientID == id
	})
	if len(deps) > 0 {
		return &apperr.ReferentialIntegrityError{
			Collection: string(Clients),
			Dependents: string(Appointments),
			Count:      len(deps),
		}
	}

	s.Delete(ctx, Clients, id)
	return nil
}

// ------------------ Pets ------------------

func (s *Store) GetPets(ctx context.Context) []models.Pet {
	return collect[models.Pet](s.GetAll(ctx, Pets))
}

func (s *Store) GetPet(ctx context.Context, id string) *models.Pet {
	if rec := s.GetByID(ctx, Pets, id); rec != nil {
		return rec.(*models.Pet)
	}
	return nil
}

func (s *Store) GetPetsByClient(clientID string) []models.Pet {
	return collect[models.Pet](s.Query(Pets, func(r Record) bool {
		return r.(*models.Pet).ClientID == clientID
	}))
}

func (s *Store) SavePet(ctx context.Context, p *models.Pet) (*models.Pet, error) {
	rec, err := s.Save(ctx, Pets, p)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Pet), nil
}

func (s *Store) DeletePet(ctx context.Context, id string) error {
	deps := s.Query(Appointments, func(r Record) bool {
		return r.(*models.Appointment).PetID == id
	})
	if len(deps) > 0 {
		return &apperr.ReferentialIntegrityError{
			Collection: string(Pets),
			Dependents: string(Appointments),
			Count:      len(deps),
		}
	}

	s.Delete(ctx, Pets, id)
	return nil
}

// ------------------ Serviços ------------------

func (s *Store) GetServices(ctx context.Context) []models.Service {
	return collect[models.Service](s.GetAll(ctx, Services))
}

func (s *Store) GetService(ctx context.Context, id string) *models.Service {
	if rec := s.GetByID(ctx, Services, id); rec != nil {
		return rec.(*models.Service)
	}
	return nil
}

func (s *Store) SaveService(ctx context.Context, sv *models.Service) (*models.Service, error) {
	rec, err := s.Save(ctx, Services, sv)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Service), nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	deps := s.Query(Appointments, func(r Record) bool {
		for _, sel := range r.(*models.Appointment).Services {
			if sel.ServiceID == id {
				return true
			}
		}
		return false
	})
	if len(deps) > 0 {
		return &apperr.ReferentialIntegrityError{
			Collection: string(Services),
			Dependents: string(Appointments),
			Count:      len(deps),
		}
	}

	s.Delete(ctx, Services, id)
	return nil
}

// ------------------ Profissionais ------------------

func (s *Store) GetProfessionals(ctx context.Context) []models.Professional {
	return collect[models.Professional](s.GetAll(ctx, Professionals))
}

func (s *Store) GetProfessional(ctx context.Context, id string) *models.Professional {
	if rec := s.GetByID(ctx, Professionals, id); rec != nil {
		return rec.(*models.Professional)
	}
	return nil
}

func (s *Store) SaveProfessional(ctx context.Context, p *models.Professional) (*models.Professional, error) {
	rec, err := s.Save(ctx, Professionals, p)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Professional), nil
}

func (s *Store) DeleteProfessional(ctx context.Context, id string) error {
	deps := s.Query(Appointments, func(r Record) bool {
		return r.(*models.Appointment).ProfessionalID == id
	})
	if len(deps) > 0 {
		return &apperr.ReferentialIntegrityError{
			Collection: string(Professionals),
			Dependents: string(Appointments),
			Count:      len(deps),
		}
	}

	s.Delete(ctx, Professionals, id)
	return nil
}

// ------------------ Agendamentos ------------------

func (s *Store) GetAppointments(ctx context.Context) []models.Appointment {
	return collect[models.Appointment](s.GetAll(ctx, Appointments))
}

func (s *Store) GetAppointment(ctx context.Context, id string) *models.Appointment {
	if rec := s.GetByID(ctx, Appointments, id); rec != nil {
		return rec.(*models.Appointment)
	}
	return nil
}

func (s *Store) SaveAppointment(ctx context.Context, a *models.Appointment) (*models.Appointment, error) {
	rec, err := s.Save(ctx, Appointments, a)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Appointment), nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) bool {
	return s.Delete(ctx, Appointments, id)
}

// GetAppointmentsByProfessional usa o snapshot local: é a base da
// checagem de conflito, que precisa ser síncrona e consistente sob o
// lock de calendário do profissional.
func (s *Store) GetAppointmentsByProfessional(professionalID string) []models.Appointment {
	return collect[models.Appointment](s.Query(Appointments, func(r Record) bool {
		return r.(*models.Appointment).ProfessionalID == professionalID
	}))
}

// ------------------ Lembretes ------------------

func (s *Store) GetReminders(ctx context.Context) []models.Reminder {
	return collect[models.Reminder](s.GetAll(ctx, Reminders))
}

func (s *Store) GetReminder(ctx context.Context, id string) *models.Reminder {
	if rec := s.GetByID(ctx, Reminders, id); rec != nil {
		return rec.(*models.Reminder)
	}
	return nil
}

func (s *Store) SaveReminder(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	rec, err := s.Save(ctx, Reminders, r)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Reminder), nil
}

// ------------------ Configurações ------------------

// GetSettings devolve o documento singleton, ou nil antes do bootstrap.
func (s *Store) GetSettings(ctx context.Context) *models.Settings {
	all := s.GetAll(ctx, Settings)
	if len(all) == 0 {
		return nil
	}
	return all[0].(*models.Settings)
}

func (s *Store) SaveSettings(ctx context.Context, cfg *models.Settings) (*models.Settings, error) {
	cfg.ID = models.SettingsID
	rec, err := s.Save(ctx, Settings, cfg)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Settings), nil
}

// ------------------ Catálogo ------------------

func (s *Store) GetBreeds(ctx context.Context) []models.Breed {
	return collect[models.Breed](s.GetAll(ctx, Breeds))
}

func (s *Store) GetSizes(ctx context.Context) []models.SizeBand {
	return collect[models.SizeBand](s.GetAll(ctx, Sizes))
}

// collect converte a sequência genérica para o tipo concreto da coleção.
// A asserção passa por any: *T de um parâmetro de tipo livre não pode ser
// assertado direto contra a interface.
func collect[T any](recs []Record) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if p, ok := any(rec).(*T); ok {
			out = append(out, *p)
		}
	}
	return out
}
