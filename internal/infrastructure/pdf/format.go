package pdf

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Placeholder est le tiret cadratin affiché à la place de tout champ absent.
const Placeholder = "—"

// Sanitize ramène une chaîne au répertoire de caractères des polices de base
// du document (Windows-1252). Contrat dur : toute chaîne d'origine utilisateur
// ou base de données DOIT passer ici avant d'atteindre une primitive de dessin,
// sinon le rendu échoue ou se corrompt.
//
// Règles :
//   - ASCII imprimable et supplément Latin-1 : inchangés ;
//   - tiret cadratin : conservé (il sert de placeholder) ;
//   - espace fine insécable (U+202F) : remplacée par une espace simple ;
//   - symbole € : remplacé par le texte " EUR" ;
//   - tout autre caractère (guillemets typographiques, emoji...) : une espace.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x20 && r <= 0x7E: // ASCII imprimable
			b.WriteRune(r)
		case r >= 0xA0 && r <= 0xFF: // supplément Latin-1
			b.WriteRune(r)
		case r == '—':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte(' ')
		case r == '€':
			b.WriteString(" EUR")
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// FormatEuro formate un montant à la française : deux décimales, espaces de
// milliers, symbole € suffixé. Ex : 1234.5 → "1 234,50 €".
func FormatEuro(montant decimal.Decimal) string {
	s := montant.StringFixed(2) // "-1234.50"
	negatif := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	entier, frac, _ := strings.Cut(s, ".")

	// Espaces de milliers sur la partie entière.
	n := len(entier)
	var b strings.Builder
	if negatif {
		b.WriteByte('-')
	}
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(entier[i])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	b.WriteString(" €")
	return b.String()
}

// FormatDate rend une date au format DD/MM/YYYY. Une date absente (valeur
// zéro) est rendue par le tiret cadratin plutôt que par une chaîne vide.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format("02/01/2006")
}

// NonVide renvoie s, ou le placeholder si s est vide après trim.
func NonVide(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
