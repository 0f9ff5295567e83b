package store

import (
	"context"

	"github.com/petcarebr/petshop-scheduler/internal/models"
)

// Bootstrap prepara a primeira execução: quando não existe documento de
// configurações, grava os padrões da loja e as tabelas de referência de
// raças e portes. Idempotente — chamadas seguintes não tocam em nada.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s.GetSettings(ctx) != nil {
		return nil
	}

	s.log.Info("primeira execução: gravando configurações e catálogo padrão")

	defaults := &models.Settings{
		ID:             models.SettingsID,
		BusinessName:   "Pet Shop",
		DefaultPetSize: "M",
		WhatsAppMessages: models.WhatsAppMessages{
			AppointmentConfirmation: "Olá! Seu agendamento foi confirmado para {date} às {time}.",
			AppointmentReminder:     "Lembrete: Seu pet tem agendamento amanhã às {time}.",
			ServiceCompleted:        "Seu pet está pronto! Pode vir buscar.",
			PaymentReminder:         "Lembrete: Você tem um pagamento pendente de R$ {amount}.",
		},
		PriceRules: models.PriceRules{
			SizeMultipliers: map[string]float64{
				"P":   1.0,
				"M":   1.2,
				"G":   1.5,
				"XXG": 2.0,
			},
		},
		FirstRun: true,
	}

	if _, err := s.SaveSettings(ctx, defaults); err != nil {
		return err
	}

	breeds := []models.Breed{
		{ID: "breed_001", Name: "Golden Retriever", Species: "cão"},
		{ID: "breed_002", Name: "Labrador", Species: "cão"},
		{ID: "breed_003", Name: "Pastor Alemão", Species: "cão"},
		{ID: "breed_004", Name: "Persa", Species: "gato"},
		{ID: "breed_005", Name: "Siamês", Species: "gato"},
		{ID: "breed_006", Name: "Maine Coon", Species: "gato"},
	}
	for i := range breeds {
		if _, err := s.Save(ctx, Breeds, &breeds[i]); err != nil {
			return err
		}
	}

	sizes := []models.SizeBand{
		{ID: "size_001", Name: "Pequeno (P)", Code: "P", WeightMin: 0, WeightMax: 10},
		{ID: "size_002", Name: "Médio (M)", Code: "M", WeightMin: 10, WeightMax: 25},
		{ID: "size_003", Name: "Grande (G)", Code: "G", WeightMin: 25, WeightMax: 45},
		{ID: "size_004", Name: "Extra Grande (XXG)", Code: "XXG", WeightMin: 45, WeightMax: 999},
	}
	for i := range sizes {
		if _, err := s.Save(ctx, Sizes, &sizes[i]); err != nil {
			return err
		}
	}

	return nil
}

// CompleteOnboarding desliga a flag de primeira execução.
func (s *Store) CompleteOnboarding(ctx context.Context) error {
	settings := s.GetSettings(ctx)
	if settings == nil || !settings.FirstRun {
		return nil
	}

	settings.FirstRun = false
	_, err := s.SaveSettings(ctx, settings)
	return err
}
