package crm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Décomposition NFD puis suppression des marques combinantes : "Sébastien"
// et "sebastien" deviennent identiques. Un transformer est sans état entre
// appels, on peut le partager au niveau du paquet.
var sansAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normaliser abaisse la casse et retire les accents pour la recherche de
// contacts. Si la transformation échoue (entrée non UTF-8), le texte abaissé
// est renvoyé tel quel plutôt que de faire échouer la recherche.
func Normaliser(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(sansAccents, s)
	if err != nil {
		return s
	}
	return out
}
