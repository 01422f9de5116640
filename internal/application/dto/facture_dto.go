package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFactureRequest création d'une facture directe (sans devis d'origine).
type CreateFactureRequest struct {
	ClientID     string          `json:"client_id" validate:"required"`
	Lignes       []LigneRequest  `json:"lignes" validate:"required,min=1,dive"`
	TauxTVA      decimal.Decimal `json:"taux_tva"`
	DateEcheance *time.Time      `json:"date_echeance"`
	Conditions   string          `json:"conditions"`
}

// UpdateFactureStatusRequest changement de statut d'une facture.
type UpdateFactureStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=brouillon envoyee payee en_retard"`
}

// FactureResponse facture complète avec ses lignes.
type FactureResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	ClientID     string          `json:"client_id"`
	DevisID      string          `json:"devis_id,omitempty"`
	Number       string          `json:"number"`
	Status       string          `json:"status"`
	DateEmission time.Time       `json:"date_emission"`
	DateEcheance *time.Time      `json:"date_echeance,omitempty"`
	TauxTVA      decimal.Decimal `json:"taux_tva"`
	TotalHT      decimal.Decimal `json:"total_ht"`
	TotalTVA     decimal.Decimal `json:"total_tva"`
	TotalTTC     decimal.Decimal `json:"total_ttc"`
	Conditions   string          `json:"conditions"`
	Lignes       []LigneResponse `json:"lignes"`
	CreatedAt    time.Time       `json:"created_at"`
}
