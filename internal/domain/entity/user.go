package entity

import "time"

// Rôles des membres de l'équipe (doivent correspondre au CHECK de la table users).
const (
	RoleAdmin        = "admin"         // patron : accès complet
	RoleChefChantier = "chef_chantier" // gestion des chantiers, devis et factures
	RoleOuvrier      = "ouvrier"       // lecture seule + planning
)

// User représente un membre de l'équipe de l'entreprise.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // voir constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
