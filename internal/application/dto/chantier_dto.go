package dto

import "time"

// CreateChantierRequest création d'un chantier.
type CreateChantierRequest struct {
	ClientID    string     `json:"client_id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Budget      string     `json:"budget" validate:"omitempty,numeric"`
	DateDebut   *time.Time `json:"date_debut"`
	DateFin     *time.Time `json:"date_fin"`
}

// UpdateChantierRequest mise à jour partielle d'un chantier.
type UpdateChantierRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Address     *string    `json:"address"`
	Status      *string    `json:"status" validate:"omitempty,oneof=planifie en_cours en_pause termine"`
	Avancement  *int       `json:"avancement" validate:"omitempty,min=0,max=100"`
	Budget      *string    `json:"budget" validate:"omitempty,numeric"`
	DateDebut   *time.Time `json:"date_debut"`
	DateFin     *time.Time `json:"date_fin"`
}

// ChantierResponse chantier.
type ChantierResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	ClientID    string     `json:"client_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	Avancement  int        `json:"avancement"`
	Budget      string     `json:"budget"`
	DateDebut   *time.Time `json:"date_debut,omitempty"`
	DateFin     *time.Time `json:"date_fin,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
