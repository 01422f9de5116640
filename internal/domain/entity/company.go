package entity

import "time"

// Company représente l'entreprise artisanale (émetteur des devis et factures).
// Tous les champs d'identité sont optionnels : les documents PDF affichent un
// tiret cadratin à la place des champs absents.
type Company struct {
	ID         string
	Name       string
	Address    string
	City       string
	PostalCode string
	Phone      string
	Email      string
	SIRET      string // identifiant d'immatriculation (14 chiffres)
	Status     string // active, suspended, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
