package entity

import "time"

// Statuts CRM d'un contact.
const (
	ClientStatusProspect = "prospect"
	ClientStatusClient   = "client"
)

// Client représente un contact CRM (prospect ou client) de l'entreprise.
type Client struct {
	ID         string
	CompanyID  string
	Name       string
	Entreprise string // raison sociale si le contact est un professionnel
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Status     string // prospect | client
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
