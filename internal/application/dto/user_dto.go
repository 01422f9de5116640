package dto

import "time"

// RegisterRequest inscription d'un membre de l'équipe.
type RegisterRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name"`
	Role      string `json:"role" validate:"omitempty,oneof=admin chef_chantier ouvrier"`
}

// LoginRequest identifiants de connexion.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateRoleRequest changement de rôle d'un membre de l'équipe.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin chef_chantier ouvrier"`
}

// UserResponse représentation publique d'un membre (jamais le hash du mot de passe).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + utilisateur connecté.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
