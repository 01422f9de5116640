package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de rendu : on vérifie que le générateur produit un PDF valide sans
// erreur pour les cas nominaux et les cas dégradés (champs absents, caractères
// hors répertoire, sous-lignes). Le contenu graphique exact n'est pas inspecté.
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateFacturePDF_Nominal(t *testing.T) {
	g := pdf.NewGofpdfGenerator()

	octets, err := g.GenerateFacturePDF(context.Background(),
		factureDeTest(), companyDeTest(), clientDeTest(), lignesDeTest())

	require.NoError(t, err)
	require.NotEmpty(t, octets)
	assert.Equal(t, "%PDF-", string(octets[:5]), "les octets doivent commencer par l'en-tête PDF")
}

// Champs absents : company et client nil, échéance non renseignée.
// Le rendu doit aboutir (placeholders), jamais planter.
func TestGenerateFacturePDF_ChampsAbsents(t *testing.T) {
	g := pdf.NewGofpdfGenerator()
	f := factureDeTest()
	f.DateEcheance = nil
	f.Conditions = ""

	octets, err := g.GenerateFacturePDF(context.Background(), f, nil, nil, nil)

	require.NoError(t, err, "l'absence de profil, de client et de lignes ne doit pas faire échouer le rendu")
	assert.NotEmpty(t, octets)
}

// Caractères dangereux dans les libellés : €, espace fine insécable,
// guillemets typographiques. L'assainissement doit les neutraliser avant dessin.
func TestGenerateFacturePDF_CaracteresHorsRepertoire(t *testing.T) {
	g := pdf.NewGofpdfGenerator()
	lignes := []entity.Ligne{{
		ID:           "l1",
		Description:  "40 m² à 12,50€/m² — pose “soignée” comprise",
		Quantite:     decimal.NewFromInt(40),
		PrixUnitaire: decimal.RequireFromString("12.5"),
		Total:        decimal.RequireFromString("500"),
	}}

	octets, err := g.GenerateFacturePDF(context.Background(),
		factureDeTest(), companyDeTest(), clientDeTest(), lignes)

	require.NoError(t, err)
	assert.NotEmpty(t, octets)
}

// Une ligne groupe (avec sous-lignes) se rend sans erreur ; le montant affiché
// du parent est la somme des sous-lignes (vérifié ici sur l'entité, le PDF
// étant compressé).
func TestGenerateFacturePDF_LigneGroupe(t *testing.T) {
	g := pdf.NewGofpdfGenerator()
	groupe := entity.Ligne{
		ID:           "g1",
		Description:  "Rénovation salle de bain",
		Quantite:     decimal.NewFromInt(99), // volontairement incohérent :
		PrixUnitaire: decimal.NewFromInt(99), // non autoritaire pour un groupe
		SousLignes: []entity.Ligne{
			{ID: "s1", Description: "Carrelage", Total: decimal.NewFromInt(100)},
			{ID: "s2", Description: "Plomberie", Total: decimal.NewFromInt(50)},
		},
	}

	require.True(t, groupe.MontantAffiche().Equal(decimal.NewFromInt(150)),
		"le montant affiché d'un groupe est la somme des sous-lignes, pas quantité×prix")

	octets, err := g.GenerateFacturePDF(context.Background(),
		factureDeTest(), companyDeTest(), clientDeTest(), []entity.Ligne{groupe})
	require.NoError(t, err)
	assert.NotEmpty(t, octets)
}

func TestGenerateDevisPDF_Nominal(t *testing.T) {
	g := pdf.NewGofpdfGenerator()
	d := &entity.Devis{
		ID:        "d1",
		Number:    "DEV-2026-0007",
		TauxTVA:   decimal.RequireFromString("10"),
		TotalHT:   decimal.NewFromInt(1000),
		TotalTVA:  decimal.NewFromInt(100),
		TotalTTC:  decimal.NewFromInt(1100),
		CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	octets, err := g.GenerateDevisPDF(context.Background(), d, companyDeTest(), clientDeTest(), lignesDeTest())

	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(octets[:5]))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func factureDeTest() *entity.Facture {
	echeance := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	return &entity.Facture{
		ID:           "f1",
		Number:       "FAC-2026-0042",
		Status:       entity.FactureStatusEnvoyee,
		DateEmission: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		DateEcheance: &echeance,
		TauxTVA:      decimal.RequireFromString("20"),
		TotalHT:      decimal.RequireFromString("1200"),
		TotalTVA:     decimal.RequireFromString("240"),
		TotalTTC:     decimal.RequireFromString("1440"),
		Conditions:   "Paiement à 30 jours, acompte de 30 % à la commande",
	}
}

func companyDeTest() *entity.Company {
	return &entity.Company{
		ID:         "c1",
		Name:       "Martin Rénovation",
		Address:    "4 impasse des Artisans",
		City:       "Lyon",
		PostalCode: "69003",
		Phone:      "04 72 00 00 00",
		Email:      "contact@martin-renovation.fr",
		SIRET:      "84512345600017",
	}
}

func clientDeTest() *entity.Client {
	return &entity.Client{
		ID:         "cl1",
		Name:       "Mme Moreau",
		Address:    "12 rue de la Paix",
		City:       "Villeurbanne",
		PostalCode: "69100",
		Phone:      "06 12 34 56 78",
		Email:      "moreau@example.fr",
	}
}

func lignesDeTest() []entity.Ligne {
	return []entity.Ligne{
		{
			ID:           "l1",
			Description:  "Carrelage sol 40 m²",
			Quantite:     decimal.NewFromInt(40),
			PrixUnitaire: decimal.RequireFromString("25"),
			Total:        decimal.RequireFromString("1000"),
		},
		{
			ID:           "l2",
			Description:  "Pose",
			Quantite:     decimal.NewFromInt(2),
			PrixUnitaire: decimal.RequireFromString("100"),
			Total:        decimal.RequireFromString("200"),
		},
	}
}
