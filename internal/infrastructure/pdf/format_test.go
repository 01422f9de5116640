package pdf_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/madenm/BTPAPPMuss-sub002/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de l'assainissement des chaînes et des formats métier.
//
// L'assainissement est un contrat dur : une chaîne non assainie qui atteint la
// primitive de dessin corrompt le rendu. Ces tests verrouillent le répertoire
// de caractères accepté et les remplacements imposés.
// ──────────────────────────────────────────────────────────────────────────────

func TestSanitize_EuroRemplaceParEUR(t *testing.T) {
	out := pdf.Sanitize("40 m² à 12,50€/m²")

	assert.NotContains(t, out, "€", "le symbole € ne doit jamais atteindre le dessin")
	assert.Contains(t, out, "EUR", "le symbole € est remplacé par le texte EUR")
	assert.Contains(t, out, "m²", "le supplément Latin-1 (²) passe inchangé")
}

func TestSanitize_EspaceFineInsecable(t *testing.T) {
	// U+202F est l'espace de milliers produite par certains formateurs de locale.
	out := pdf.Sanitize("1 234,56")

	assert.NotContains(t, out, " ", "U+202F ne doit pas subsister")
	assert.Equal(t, "1 234,56", out, "U+202F devient une espace simple")
}

func TestSanitize_LatinEtAccentsConserves(t *testing.T) {
	assert.Equal(t, "Pose de faïence, pièce à l'étage",
		pdf.Sanitize("Pose de faïence, pièce à l'étage"),
		"ASCII et Latin-1 passent inchangés")
}

func TestSanitize_TiretCadratinConserve(t *testing.T) {
	// Le tiret cadratin sert de placeholder des champs absents ; il doit
	// survivre à l'assainissement.
	assert.Equal(t, pdf.Placeholder, pdf.Sanitize(pdf.Placeholder))
}

func TestSanitize_CaractereInconnuDevientEspace(t *testing.T) {
	// Guillemets typographiques (hors Latin-1) → espace simple.
	out := pdf.Sanitize("devis “urgent”")
	assert.Equal(t, "devis  urgent ", out)
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "1 234,56 €", pdf.FormatEuro(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "0,00 €", pdf.FormatEuro(decimal.Zero))
	assert.Equal(t, "12 500,00 €", pdf.FormatEuro(decimal.RequireFromString("12500")))
	assert.Equal(t, "1 000 000,50 €", pdf.FormatEuro(decimal.RequireFromString("1000000.5")))
	assert.Equal(t, "-250,00 €", pdf.FormatEuro(decimal.RequireFromString("-250")))
}

// Le montant formaté, une fois assaini, ne contient ni € ni caractère hors
// répertoire : c'est le chemin réel des montants vers le dessin.
func TestFormatEuro_PuisSanitize(t *testing.T) {
	out := pdf.Sanitize(pdf.FormatEuro(decimal.RequireFromString("12500")))

	assert.Equal(t, "12 500,00  EUR", out)
	for _, r := range out {
		assert.True(t, r <= 0xFF, "aucun caractère hors Latin-1 après assainissement")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15/03/2026", pdf.FormatDate(d))
	assert.Equal(t, pdf.Placeholder, pdf.FormatDate(time.Time{}),
		"une date absente est rendue par le tiret cadratin, pas par une chaîne vide")
}

func TestNonVide(t *testing.T) {
	assert.Equal(t, "Dupont", pdf.NonVide("Dupont"))
	assert.Equal(t, pdf.Placeholder, pdf.NonVide(""))
	assert.Equal(t, pdf.Placeholder, pdf.NonVide("   "))
	assert.True(t, strings.HasPrefix(pdf.NonVide(" x "), " x"), "une valeur non vide est renvoyée telle quelle")
}
