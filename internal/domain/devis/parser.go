// Package devis contient la logique métier pure des devis, dont le parseur
// qui transforme une description libre de travaux (saisie ou dictée par
// l'artisan) en lignes de devis structurées.
//
// Le parseur est une fonction totale : toute chaîne d'entrée, y compris vide
// ou mal formée, produit une liste (éventuellement vide) de lignes valides.
// Un nombre illisible retombe sur sa valeur par défaut (quantité 1, prix 0)
// au lieu d'interrompre l'analyse.
//
// Pipeline :
//
//	description → segments → quantité → prix → libellé → lignes
//
//  1. Découpage en segments : sauts de ligne, virgules, points-virgules,
//     connecteurs d'énumération ("il faut", "puis", "et (ensuite)") et tiret
//     précédé d'un espace et suivi d'une majuscule (début d'item, pas un mot
//     composé). L'ordre des segments est conservé.
//  2. Quantité : un suffixe multiplicateur (×N, *N, xN, (×N)) est prioritaire ;
//     sinon la première unité métier reconnue (m², m³, heures, jours, pièces,
//     litres, mètres, semaines, mois) capture le nombre qui la précède.
//  3. Prix : parmi les nombres restants (€ optionnel, espaces de milliers,
//     virgule ou point décimal), le DERNIER trouvé fait foi, ce qui privilégie
//     la forme "… : 45€" en fin de segment. Heuristique connue pour être
//     fragile si le texte contient d'autres nombres avant le vrai prix
//     (ex. un numéro de rue) ; comportement conservé volontairement.
package devis

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

// ── Expressions compilées une seule fois (partagées entre appels) ─────────────

var (
	// Connecteurs d'énumération remplacés par un séparateur interne.
	connecteursRe = regexp.MustCompile(`(?i)\bil faut\b|\bpuis\b|\bet\s+ensuite\b|\bet\b`)

	// Tiret de liste : précédé d'un espace, suivi d'une majuscule (accentuée ou non).
	// Le groupe capturé réinjecte la majuscule après le séparateur.
	tiretListeRe = regexp.MustCompile(`\s-\s*([A-ZÀÂÄÆÇÉÈÊËÎÏÔÖŒÙÛÜ])`)

	// Suffixe multiplicateur : ×3, *3, x3, (×3). Le x ASCII et l'astérisque
	// doivent être en début de mot pour ne pas découper "chaux" ou similaires.
	multiplicateurRe = regexp.MustCompile(`(?i)(?:^|[\s(])[×x*]\s*(\d+(?:[.,]\d+)?)\s*\)?`)

	// Nombre monétaire : espaces (y compris insécables) comme séparateurs de
	// milliers, virgule ou point décimal, symbole € optionnel.
	prixRe = regexp.MustCompile(`(\d+(?:[ \x{00A0}\x{202F}]\d{3})*(?:[.,]\d+)?)\s*€?`)

	// Ponctuation de fin de libellé à nettoyer ( : - – — et espaces).
	finLibelleRe = regexp.MustCompile(`[\s:–—-]+$`)

	// Virgule décimale à la française ("12,5"). Protégée avant le découpage en
	// segments pour que seules les virgules d'énumération séparent.
	virguleDecimaleRe = regexp.MustCompile(`(\d),(\d)`)
)

// motifQuantite associe une expression d'unité au nombre qui la précède.
// Les motifs sont essayés dans l'ordre ; le premier qui matche gagne.
type motifQuantite struct {
	re *regexp.Regexp
}

var (
	nombre = `(\d+(?:[.,]\d+)?)`

	// Ordre de priorité : surfaces, volumes, temps, unités, contenances,
	// longueurs, durées longues. "de " final est consommé quand il suit l'unité
	// ("40 m² de carrelage" → reste "carrelage").
	motifsQuantite = []motifQuantite{
		{regexp.MustCompile(`(?i)` + nombre + `\s*(?:m²|m2|mètres?\s+carrés?|metres?\s+carres?)(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*(?:m³|m3|mètres?\s+cubes?|metres?\s+cubes?)(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*(?:heures?|h)(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*(?:jours?|journées?|journees?)(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*(?:pièces?|pieces?|unités?|unites?)(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*litres?(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*(?:mètres?|metres?)(?:\s+linéaires?|\s+lineaires?)?(?:\s+de)?\b`)},
		// "m" nu : vérification manuelle qu'il n'amorce pas "mètre"/"metre",
		// voir quantiteMetreNu (RE2 n'a pas de lookahead).
		{metreNuRe},
		{regexp.MustCompile(`(?i)` + nombre + `\s*semaines?(?:\s+de)?\b`)},
		{regexp.MustCompile(`(?i)` + nombre + `\s*mois(?:\s+de)?\b`)},
	}

	metreNuRe = regexp.MustCompile(`(?i)` + nombre + `\s*m(?:\s+de)?\b`)
)

// ParseDescription transforme une description libre de travaux en lignes de
// devis ordonnées. Déterministe (hors génération d'identifiants), ne renvoie
// jamais d'erreur : une entrée vide ou blanche produit une liste vide.
func ParseDescription(description string) []entity.Ligne {
	var lignes []entity.Ligne
	for _, segment := range decouperSegments(description) {
		if ligne, ok := analyserSegment(segment); ok {
			lignes = append(lignes, ligne)
		}
	}
	return lignes
}

// decouperSegments découpe la description en fragments candidats, dans l'ordre
// d'apparition. Les fragments vides après trim sont écartés.
func decouperSegments(description string) []string {
	s := strings.ReplaceAll(description, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var segments []string
	for _, bloc := range strings.Split(s, "\n") {
		// "12,5" ne doit pas être coupé : la virgule entre deux chiffres est
		// masquée le temps du découpage, puis restituée dans chaque fragment.
		bloc = virguleDecimaleRe.ReplaceAllString(bloc, "$1\x01$2")
		bloc = tiretListeRe.ReplaceAllString(bloc, "\x00$1")
		bloc = connecteursRe.ReplaceAllString(bloc, "\x00")
		for _, frag := range strings.FieldsFunc(bloc, estSeparateur) {
			frag = strings.TrimSpace(strings.ReplaceAll(frag, "\x01", ","))
			if frag != "" {
				segments = append(segments, frag)
			}
		}
	}
	return segments
}

func estSeparateur(r rune) bool {
	return r == ',' || r == ';' || r == '\x00'
}

// analyserSegment extrait quantité, prix et libellé d'un segment.
// ok vaut false si le libellé final est vide après tous les replis.
func analyserSegment(segment string) (entity.Ligne, bool) {
	reste, quantite := extraireQuantite(segment)
	reste, prix, libelle := extrairePrix(reste)

	// Replis du libellé : texte avant prix → segment sans quantité → segment brut.
	if libelle == "" {
		libelle = strings.TrimSpace(reste)
	}
	if libelle == "" {
		libelle = strings.TrimSpace(segment)
	}
	libelle = finLibelleRe.ReplaceAllString(libelle, "")
	if libelle == "" {
		return entity.Ligne{}, false
	}

	return entity.Ligne{
		ID:           uuid.New().String(),
		Description:  libelle,
		Quantite:     quantite,
		PrixUnitaire: prix,
		Total:        quantite.Mul(prix),
	}, true
}

// extraireQuantite cherche une quantité dans le segment et renvoie le segment
// amputé du motif trouvé. Sans motif, la quantité vaut 1 et le texte est intact.
func extraireQuantite(segment string) (reste string, quantite decimal.Decimal) {
	// 1. Suffixe multiplicateur, prioritaire sur les unités.
	if loc := multiplicateurRe.FindStringSubmatchIndex(segment); loc != nil {
		q := parseNombre(segment[loc[2]:loc[3]])
		return retirerSpan(segment, loc[0], loc[1]), q
	}

	// 2. Unités métier, dans l'ordre de priorité.
	for _, m := range motifsQuantite {
		loc := m.re.FindStringSubmatchIndex(segment)
		if loc == nil {
			continue
		}
		if m.re == metreNuRe && amorceMetre(segment[loc[1]:]) {
			// "12 mètres" ne doit jamais être lu comme "12 m" + "ètres".
			continue
		}
		q := parseNombre(segment[loc[2]:loc[3]])
		return retirerSpan(segment, loc[0], loc[1]), q
	}

	// 3. Rien trouvé : quantité 1, texte inchangé.
	return segment, decimal.NewFromInt(1)
}

// amorceMetre indique si le texte commence par la fin du mot "mètre"/"metre"
// (le "m" qui précède appartenait alors à un mot, pas à une unité).
func amorceMetre(suite string) bool {
	suite = strings.ToLower(suite)
	return strings.HasPrefix(suite, "ètre") || strings.HasPrefix(suite, "etre")
}

// extrairePrix cherche le prix unitaire dans le texte déjà amputé de la
// quantité. Le dernier nombre monétaire du segment fait foi ; le texte qui le
// précède, nettoyé de sa ponctuation finale, devient le libellé.
func extrairePrix(texte string) (reste string, prix decimal.Decimal, libelle string) {
	matches := prixRe.FindAllStringSubmatchIndex(texte, -1)
	if len(matches) == 0 {
		return texte, decimal.Zero, ""
	}
	dernier := matches[len(matches)-1]
	prix = parseNombre(texte[dernier[2]:dernier[3]])

	libelle = strings.TrimSpace(texte[:dernier[0]])
	libelle = finLibelleRe.ReplaceAllString(libelle, "")
	return texte, prix, libelle
}

// parseNombre convertit un nombre au format français ou anglo-saxon
// (espaces de milliers, virgule ou point décimal) en décimal.
// Une valeur illisible vaut zéro.
func parseNombre(s string) decimal.Decimal {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// retirerSpan supprime la tranche [debut:fin) d'une chaîne en recollant proprement.
func retirerSpan(s string, debut, fin int) string {
	return strings.TrimSpace(strings.TrimSpace(s[:debut]) + " " + strings.TrimSpace(s[fin:]))
}
