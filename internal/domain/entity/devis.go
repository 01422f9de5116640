package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un devis.
const (
	DevisStatusBrouillon = "brouillon"
	DevisStatusEnvoye    = "envoye"
	DevisStatusAccepte   = "accepte"
	DevisStatusRefuse    = "refuse"
	DevisStatusConverti  = "converti" // transformé en facture
)

// Taux de TVA admis pour les travaux (France).
var TauxTVAAdmis = []string{"20", "10", "5.5"}

// Ligne représente une ligne de devis ou de facture.
//
// Une ligne est soit une feuille (Quantite × PrixUnitaire fait foi), soit un
// groupe (SousLignes non vide) : dans ce cas le montant affiché est la somme
// des totaux des sous-lignes et les Quantite/PrixUnitaire propres du parent ne
// font plus autorité.
type Ligne struct {
	ID           string
	Description  string
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	Total        decimal.Decimal // toujours Quantite × PrixUnitaire pour une feuille
	Unite        string          // libellé libre (m², h, u...) ; vide si non renseigné
	SousLignes   []Ligne
}

// EstGroupe indique si la ligne est un nœud de regroupement (elle a des sous-lignes).
func (l Ligne) EstGroupe() bool { return len(l.SousLignes) > 0 }

// MontantAffiche renvoie le montant qui fait foi pour la ligne :
// la somme des totaux des sous-lignes pour un groupe, le Total propre sinon.
func (l Ligne) MontantAffiche() decimal.Decimal {
	if !l.EstGroupe() {
		return l.Total
	}
	somme := decimal.Zero
	for _, sl := range l.SousLignes {
		somme = somme.Add(sl.Total)
	}
	return somme
}

// TotalLignes additionne les montants affichés d'un ensemble de lignes (total HT).
func TotalLignes(lignes []Ligne) decimal.Decimal {
	somme := decimal.Zero
	for _, l := range lignes {
		somme = somme.Add(l.MontantAffiche())
	}
	return somme
}

// Devis représente l'en-tête d'un devis.
type Devis struct {
	ID          string
	CompanyID   string
	ClientID    string
	ChantierID  string // vide = devis hors chantier
	Number      string
	Status      string // voir constantes DevisStatus*
	Description string // texte libre d'origine (si généré depuis une description)
	TauxTVA     decimal.Decimal
	TotalHT     decimal.Decimal
	TotalTVA    decimal.Decimal
	TotalTTC    decimal.Decimal
	Conditions  string // conditions de règlement
	FactureID   string // renseigné après conversion en facture
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
