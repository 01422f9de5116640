package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'une facture.
const (
	FactureStatusBrouillon = "brouillon"
	FactureStatusEnvoyee   = "envoyee"
	FactureStatusPayee     = "payee"
	FactureStatusEnRetard  = "en_retard"
)

// Facture représente l'en-tête d'une facture.
type Facture struct {
	ID           string
	CompanyID    string
	ClientID     string
	DevisID      string // vide = facture directe (sans devis d'origine)
	Number       string // format FAC-AAAA-NNNN
	Status       string // voir constantes FactureStatus*
	DateEmission time.Time
	DateEcheance *time.Time // nil = échéance non renseignée (tiret sur le PDF)
	TauxTVA      decimal.Decimal
	TotalHT      decimal.Decimal
	TotalTVA     decimal.Decimal
	TotalTTC     decimal.Decimal
	Conditions   string // conditions de règlement affichées en pied de facture
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
