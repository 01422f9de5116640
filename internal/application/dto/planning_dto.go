package dto

import "time"

// CreateEventRequest création d'un événement du planning.
type CreateEventRequest struct {
	Titre      string    `json:"titre" validate:"required"`
	Type       string    `json:"type" validate:"omitempty,oneof=chantier rdv conge autre"`
	ChantierID string    `json:"chantier_id"`
	UserID     string    `json:"user_id"`
	Debut      time.Time `json:"debut" validate:"required"`
	Fin        time.Time `json:"fin" validate:"required"`
	Notes      string    `json:"notes"`
}

// UpdateEventRequest mise à jour partielle d'un événement.
type UpdateEventRequest struct {
	Titre      *string    `json:"titre"`
	Type       *string    `json:"type" validate:"omitempty,oneof=chantier rdv conge autre"`
	ChantierID *string    `json:"chantier_id"`
	UserID     *string    `json:"user_id"`
	Debut      *time.Time `json:"debut"`
	Fin        *time.Time `json:"fin"`
	Notes      *string    `json:"notes"`
}

// EventResponse événement du planning.
type EventResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	ChantierID string    `json:"chantier_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Titre      string    `json:"titre"`
	Type       string    `json:"type"`
	Debut      time.Time `json:"debut"`
	Fin        time.Time `json:"fin"`
	Notes      string    `json:"notes"`
}
