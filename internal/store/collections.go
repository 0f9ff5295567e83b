package store

import (
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
)

// Record é a forma mínima de qualquer documento persistido.
type Record interface {
	GetID() string
	SetID(id string)
	StampTimes(now time.Time)
}

type Collection string

const (
	Clients       Collection = "clients"
	Pets          Collection = "pets"
	Services      Collection = "services"
	Appointments  Collection = "appointments"
	Professionals Collection = "professionals"
	Reminders     Collection = "reminders"
	Settings      Collection = "settings"
	Breeds        Collection = "breeds"
	Sizes         Collection = "sizes"
)

// prototypes devolve um registro vazio do tipo concreto da coleção,
// usado para decodificar documentos vindos do store remoto.
var prototypes = map[Collection]func() Record{
	Clients:       func() Record { return &models.Client{} },
	Pets:          func() Record { return &models.Pet{} },
	Services:      func() Record { return &models.Service{} },
	Appointments:  func() Record { return &models.Appointment{} },
	Professionals: func() Record { return &models.Professional{} },
	Reminders:     func() Record { return &models.Reminder{} },
	Settings:      func() Record { return &models.Settings{} },
	Breeds:        func() Record { return &models.Breed{} },
	Sizes:         func() Record { return &models.SizeBand{} },
}

// AllCollections na ordem usada por backup/seed
var AllCollections = []Collection{
	Clients, Pets, Services, Appointments,
	Professionals, Reminders, Settings, Breeds, Sizes,
}
