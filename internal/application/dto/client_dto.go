package dto

import "time"

// CreateClientRequest création d'un contact CRM (prospect par défaut).
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Entreprise string `json:"entreprise"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Status     string `json:"status" validate:"omitempty,oneof=prospect client"`
	Notes      string `json:"notes"`
}

// UpdateClientRequest mise à jour partielle d'un contact.
type UpdateClientRequest struct {
	Name       *string `json:"name"`
	Entreprise *string `json:"entreprise"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Status     *string `json:"status" validate:"omitempty,oneof=prospect client"`
	Notes      *string `json:"notes"`
}

// ClientResponse contact CRM.
type ClientResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Name       string    `json:"name"`
	Entreprise string    `json:"entreprise"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
