package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un chantier.
const (
	ChantierStatusPlanifie = "planifie"
	ChantierStatusEnCours  = "en_cours"
	ChantierStatusEnPause  = "en_pause"
	ChantierStatusTermine  = "termine"
)

// Chantier représente un projet de travaux rattaché à un client.
type Chantier struct {
	ID          string
	CompanyID   string
	ClientID    string
	Name        string
	Description string
	Address     string
	Status      string // voir constantes ChantierStatus*
	Avancement  int    // pourcentage 0-100
	Budget      decimal.Decimal
	DateDebut   *time.Time // nil = non planifié
	DateFin     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
