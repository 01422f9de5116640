package devis_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/devis"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests du parseur description → lignes de devis.
//
// Le parseur est le cœur de la génération de devis "à la voix" : si une
// modification casse le découpage des segments, la priorité des unités ou
// l'heuristique du dernier prix, ces tests échouent immédiatement.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDescription_SurfaceEtPrix(t *testing.T) {
	lignes := devis.ParseDescription("40 mètres carrés de carrelage: 1200€")

	require.Len(t, lignes, 1, "un seul segment doit produire une seule ligne")
	l := lignes[0]
	assert.Contains(t, l.Description, "carrelage",
		"le libellé doit contenir le mot métier, pas un résidu \"etre carrés\"")
	assert.NotContains(t, l.Description, "etre",
		"\"mètres\" ne doit jamais être découpé en \"m\" + \"ètres\"")
	assertDecimal(t, "40", l.Quantite, "quantité")
	assertDecimal(t, "1200", l.PrixUnitaire, "prix unitaire")
	assertDecimal(t, "48000", l.Total, "total = quantité × prix")
}

func TestParseDescription_JoursDePose(t *testing.T) {
	lignes := devis.ParseDescription("2 jours de pose: 300€")

	require.Len(t, lignes, 1)
	l := lignes[0]
	assert.Equal(t, "pose", l.Description)
	assertDecimal(t, "2", l.Quantite, "quantité")
	assertDecimal(t, "300", l.PrixUnitaire, "prix unitaire")
	assertDecimal(t, "600", l.Total, "total")
}

// Sans quantité ni prix, la ligne retombe sur les valeurs par défaut
// (quantité 1, prix 0) et garde le texte d'origine comme libellé.
func TestParseDescription_ValeursParDefaut(t *testing.T) {
	lignes := devis.ParseDescription("Installation électrique complète")

	require.Len(t, lignes, 1)
	l := lignes[0]
	assert.Equal(t, "Installation électrique complète", l.Description)
	assertDecimal(t, "1", l.Quantite, "quantité par défaut")
	assertDecimal(t, "0", l.PrixUnitaire, "prix par défaut")
	assertDecimal(t, "0", l.Total, "total par défaut")
}

func TestParseDescription_EntreeVide(t *testing.T) {
	assert.Empty(t, devis.ParseDescription(""), "chaîne vide → aucune ligne")
	assert.Empty(t, devis.ParseDescription("   \n\t  "), "blancs seuls → aucune ligne")
}

// Une description à N segments bien formés produit exactement N lignes,
// dans l'ordre d'apparition du texte.
func TestParseDescription_OrdreDesSegments(t *testing.T) {
	lignes := devis.ParseDescription("Peinture salon 45€, 3 jours de pose : 200€, enduit")

	require.Len(t, lignes, 3)
	assert.Equal(t, "Peinture salon", lignes[0].Description)
	assertDecimal(t, "45", lignes[0].PrixUnitaire, "prix du premier segment")
	assert.Equal(t, "pose", lignes[1].Description)
	assertDecimal(t, "3", lignes[1].Quantite, "quantité du deuxième segment")
	assert.Equal(t, "enduit", lignes[2].Description)
	assertDecimal(t, "0", lignes[2].PrixUnitaire, "segment sans prix → 0")
}

// Les connecteurs "il faut" / "puis" / "et ensuite" découpent l'énumération.
func TestParseDescription_Connecteurs(t *testing.T) {
	lignes := devis.ParseDescription("il faut poser le carrelage puis peindre les murs et ensuite nettoyer le chantier")

	require.Len(t, lignes, 3)
	assert.Equal(t, "poser le carrelage", lignes[0].Description)
	assert.Equal(t, "peindre les murs", lignes[1].Description)
	assert.Equal(t, "nettoyer le chantier", lignes[2].Description)
}

// Un tiret précédé d'un espace et suivi d'une majuscule ouvre un nouvel item ;
// un mot composé ("porte-fenêtre") reste entier.
func TestParseDescription_TiretDeListe(t *testing.T) {
	lignes := devis.ParseDescription("Rénovation salle de bain - Carrelage mural - Pose porte-fenêtre")

	require.Len(t, lignes, 3)
	assert.Equal(t, "Rénovation salle de bain", lignes[0].Description)
	assert.Equal(t, "Carrelage mural", lignes[1].Description)
	assert.Equal(t, "Pose porte-fenêtre", lignes[2].Description,
		"le tiret de \"porte-fenêtre\" n'est pas un séparateur de liste")
}

// Le suffixe multiplicateur (×N, xN, *N) est prioritaire sur les unités.
func TestParseDescription_Multiplicateur(t *testing.T) {
	lignes := devis.ParseDescription("Porte intérieure x3 : 250€")

	require.Len(t, lignes, 1)
	l := lignes[0]
	assert.Equal(t, "Porte intérieure", l.Description)
	assertDecimal(t, "3", l.Quantite, "quantité depuis le multiplicateur")
	assertDecimal(t, "250", l.PrixUnitaire, "prix unitaire")
	assertDecimal(t, "750", l.Total, "total")
}

// Virgule décimale à la française sur la quantité comme sur le prix.
func TestParseDescription_VirguleDecimale(t *testing.T) {
	lignes := devis.ParseDescription("12,5 m² de faïence : 45,50€")

	require.Len(t, lignes, 1)
	l := lignes[0]
	assert.Equal(t, "faïence", l.Description)
	assertDecimal(t, "12.5", l.Quantite, "quantité décimale")
	assertDecimal(t, "45.5", l.PrixUnitaire, "prix décimal")
	assertDecimal(t, "568.75", l.Total, "total décimal exact")
}

// La virgule décimale survit aussi dans un multiplicateur ("x2,5") et ne
// déclenche pas de découpage, contrairement à la virgule d'énumération.
func TestParseDescription_VirguleDecimaleDansMultiplicateur(t *testing.T) {
	lignes := devis.ParseDescription("Lambourde x2,5 : 10€, vis : 4€")

	require.Len(t, lignes, 2, "seule la virgule d'énumération sépare")

	assert.Equal(t, "Lambourde", lignes[0].Description)
	assertDecimal(t, "2.5", lignes[0].Quantite, "quantité décimale du multiplicateur")
	assertDecimal(t, "25", lignes[0].Total, "total 2,5 × 10")

	assert.Equal(t, "vis", lignes[1].Description)
	assertDecimal(t, "4", lignes[1].PrixUnitaire, "prix du second segment")
}

// Espaces de milliers dans les montants ("12 500€").
func TestParseDescription_SeparateurDeMilliers(t *testing.T) {
	lignes := devis.ParseDescription("Charpente complète : 12 500€")

	require.Len(t, lignes, 1)
	assertDecimal(t, "12500", lignes[0].PrixUnitaire, "prix avec espace de milliers")
	assert.Equal(t, "Charpente complète", lignes[0].Description)
}

// Heuristique assumée : quand plusieurs nombres subsistent, le DERNIER fait
// office de prix, les précédents restent dans le libellé. Un numéro de rue
// avant le vrai prix est donc absorbé par le libellé.
func TestParseDescription_DernierNombreFaitOfficeDePrix(t *testing.T) {
	lignes := devis.ParseDescription("Intervention au 12 rue de la Paix : 500€")

	require.Len(t, lignes, 1)
	l := lignes[0]
	assert.Equal(t, "Intervention au 12 rue de la Paix", l.Description)
	assertDecimal(t, "500", l.PrixUnitaire, "le dernier nombre est le prix")
}

// Mètres linéaires : forme épelée et "m" nu, sans confondre avec "mètre".
func TestParseDescription_MetresLineaires(t *testing.T) {
	lignes := devis.ParseDescription("12 mètres de plinthes : 60€, 8 m de gouttière : 15€")

	require.Len(t, lignes, 2)
	assert.Equal(t, "plinthes", lignes[0].Description)
	assertDecimal(t, "12", lignes[0].Quantite, "mètres épelés")
	assert.Equal(t, "gouttière", lignes[1].Description)
	assertDecimal(t, "8", lignes[1].Quantite, "m nu")
}

// Heures, litres, semaines : les autres unités de la liste de priorité.
func TestParseDescription_AutresUnites(t *testing.T) {
	lignes := devis.ParseDescription("4 heures de main d'œuvre : 45€\n20 litres de peinture : 8€\n2 semaines de location : 150€")

	require.Len(t, lignes, 3)
	assertDecimal(t, "4", lignes[0].Quantite, "heures")
	assertDecimal(t, "20", lignes[1].Quantite, "litres")
	assertDecimal(t, "2", lignes[2].Quantite, "semaines")
}

// Même entrée → mêmes libellés, quantités, prix et totaux (les IDs diffèrent).
func TestParseDescription_Idempotent(t *testing.T) {
	const description = "40 m² de carrelage : 30€, 2 jours de pose : 300€ et enduit x2 : 25€"

	a := devis.ParseDescription(description)
	b := devis.ParseDescription(description)

	require.Equal(t, len(a), len(b), "le nombre de lignes doit être stable")
	for i := range a {
		assert.Equal(t, a[i].Description, b[i].Description)
		assert.True(t, a[i].Quantite.Equal(b[i].Quantite), "quantité stable ligne %d", i)
		assert.True(t, a[i].PrixUnitaire.Equal(b[i].PrixUnitaire), "prix stable ligne %d", i)
		assert.True(t, a[i].Total.Equal(b[i].Total), "total stable ligne %d", i)
	}
}

// Chaque ligne reçoit un identifiant unique fraîchement généré.
func TestParseDescription_IdentifiantsUniques(t *testing.T) {
	lignes := devis.ParseDescription("carrelage 30€, peinture 20€, enduit 10€")

	require.Len(t, lignes, 3)
	vus := map[string]bool{}
	for _, l := range lignes {
		require.NotEmpty(t, l.ID, "chaque ligne doit avoir un ID")
		assert.False(t, vus[l.ID], "les IDs ne doivent pas se répéter")
		vus[l.ID] = true
	}
}

// ── helper ────────────────────────────────────────────────────────────────────

// assertDecimal compare un décimal à sa valeur attendue (en chaîne) avec
// l'égalité de valeur de shopspring/decimal, pas l'égalité de struct.
func assertDecimal(t *testing.T, attendu string, obtenu decimal.Decimal, label string) {
	t.Helper()
	exp, err := decimal.NewFromString(attendu)
	require.NoError(t, err)
	assert.True(t, exp.Equal(obtenu), "%s : attendu %s, obtenu %s", label, attendu, obtenu)
}
