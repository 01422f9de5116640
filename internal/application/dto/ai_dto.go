package dto

import "github.com/shopspring/decimal"

// AIEstimationRequest demande d'estimation de coûts pour un projet de travaux.
type AIEstimationRequest struct {
	Description string `json:"description" validate:"required"`
	SurfaceM2   string `json:"surface_m2"` // optionnel, texte libre ("45", "45 m²")
}

// AIEstimationDTO fourchette de coûts estimée par le LLM.
type AIEstimationDTO struct {
	CoutMin         decimal.Decimal `json:"cout_min"`
	CoutMax         decimal.Decimal `json:"cout_max"`
	ConfidenceScore float64         `json:"confidence_score"` // entre 0.0 et 1.0
	Reasoning       string          `json:"reasoning"`
	PostesSuggeres  []string        `json:"postes_suggeres"` // intitulés de postes de travaux
}
