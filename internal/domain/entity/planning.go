package entity

import "time"

// Types d'événements du planning.
const (
	EventTypeChantier = "chantier"
	EventTypeRDV      = "rdv"
	EventTypeConge    = "conge"
	EventTypeAutre    = "autre"
)

// PlanningEvent représente un événement du calendrier de l'entreprise.
type PlanningEvent struct {
	ID         string
	CompanyID  string
	ChantierID string // vide = événement hors chantier
	UserID     string // membre assigné ; vide = toute l'équipe
	Titre      string
	Type       string // voir constantes EventType*
	Debut      time.Time
	Fin        time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
