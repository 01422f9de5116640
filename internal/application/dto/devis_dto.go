package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LigneRequest ligne de devis ou de facture fournie par le client HTTP.
// Une ligne avec SousLignes est un groupe : ses quantité/prix propres sont
// ignorés pour les totaux.
type LigneRequest struct {
	Description  string          `json:"description" validate:"required"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Unite        string          `json:"unite"`
	SousLignes   []LigneRequest  `json:"sous_lignes" validate:"omitempty,dive"`
}

// LigneResponse ligne structurée renvoyée par l'API.
type LigneResponse struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Total        decimal.Decimal `json:"total"`
	Unite        string          `json:"unite"`
	SousLignes   []LigneResponse `json:"sous_lignes,omitempty"`
}

// ParseDescriptionRequest texte libre à transformer en lignes de devis.
type ParseDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

// ParseDescriptionResponse lignes extraites, dans l'ordre du texte.
type ParseDescriptionResponse struct {
	Lignes []LigneResponse `json:"lignes"`
}

// CreateDevisRequest création d'un devis : soit des lignes explicites, soit
// une description libre analysée par le parseur (les deux est permis, les
// lignes analysées sont ajoutées à la suite).
type CreateDevisRequest struct {
	ClientID    string          `json:"client_id" validate:"required"`
	ChantierID  string          `json:"chantier_id"`
	Description string          `json:"description"`
	Lignes      []LigneRequest  `json:"lignes" validate:"omitempty,dive"`
	TauxTVA     decimal.Decimal `json:"taux_tva"` // 20 par défaut ; 10 et 5.5 admis
	Conditions  string          `json:"conditions"`
}

// UpdateDevisStatusRequest changement de statut d'un devis.
type UpdateDevisStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=brouillon envoye accepte refuse"`
}

// DevisResponse devis complet avec ses lignes.
type DevisResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	ClientID   string          `json:"client_id"`
	ChantierID string          `json:"chantier_id,omitempty"`
	Number     string          `json:"number"`
	Status     string          `json:"status"`
	TauxTVA    decimal.Decimal `json:"taux_tva"`
	TotalHT    decimal.Decimal `json:"total_ht"`
	TotalTVA   decimal.Decimal `json:"total_tva"`
	TotalTTC   decimal.Decimal `json:"total_ttc"`
	Conditions string          `json:"conditions"`
	FactureID  string          `json:"facture_id,omitempty"`
	Lignes     []LigneResponse `json:"lignes"`
	CreatedAt  time.Time       `json:"created_at"`
}
