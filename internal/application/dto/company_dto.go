package dto

// CreateCompanyRequest création du profil entreprise.
type CreateCompanyRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	SIRET      string `json:"siret" validate:"omitempty,len=14,numeric"`
}

// UpdateCompanyRequest mise à jour du profil entreprise (tous champs optionnels).
type UpdateCompanyRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" validate:"omitempty,email"`
	SIRET      *string `json:"siret" validate:"omitempty,len=14,numeric"`
}

// CompanyResponse profil entreprise.
type CompanyResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	SIRET      string `json:"siret"`
	Status     string `json:"status"`
}
