// Package pdf implémente la génération des documents PDF (devis et factures)
// en dessin direct : placement de texte en coordonnées absolues sur une page
// A4 unique, avec un curseur vertical descendant. Pas de moteur de mise en
// page, pas de pagination : une facture trop longue déborde hors page.
//
// Layout de la page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                              FACTURE  N° FAC-2026-0042       │
//	│                              Ville, le 15/03/2026            │
//	│  ÉMETTEUR                    │  CLIENT                      │
//	│  Nom / Adresse / CP Ville    │  Nom / Adresse / CP Ville    │
//	│  Tél / Email / SIRET         │  Tél / Email                 │
//	│  Date d'émission : …            Date d'échéance : …          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Désignation                                 Montant HT     │
//	│  ligne…                                      1 200,00 EUR   │
//	│    sous-ligne (retrait, police réduite)        100,00 EUR   │
//	│  ─────────────────────────────────────────────────────────  │
//	│                          Total HT / TVA / TOTAL TTC (gras)  │
//	│  Conditions de règlement : …                                 │
//	└─────────────────────────────────────────────────────────────┘
//
// Les deux colonnes d'identité (émetteur à gauche, client à droite) sont
// émises paire par paire sur la même rangée du curseur, afin de rester
// alignées verticalement même si elles proviennent de champs différents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	appbilling "github.com/madenm/BTPAPPMuss-sub002/internal/application/billing"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

var _ appbilling.DocumentPDFGenerator = (*GofpdfGenerator)(nil)

// ── Constantes de mise en page (mm, page A4 portrait) ─────────────────────────

const (
	margeGauche = 20.0
	margeDroite = 20.0
	yDepart     = 22.0
	colDroiteX  = 115.0 // ancre de la colonne client et de la date d'échéance

	hauteurLigne     = 6.0
	hauteurSousLigne = 4.5 // pas réduit pour les sous-lignes

	policeTitre     = 18.0
	policeBase      = 10.0
	policeSousLigne = 8.0
	policeTotalTTC  = 12.0
)

// GofpdfGenerator implémente billing.DocumentPDFGenerator avec gofpdf
// (polices de base Helvetica, encodage Windows-1252).
type GofpdfGenerator struct{}

// NewGofpdfGenerator construit le générateur.
func NewGofpdfGenerator() *GofpdfGenerator { return &GofpdfGenerator{} }

// document regroupe les données communes aux deux types de documents.
type document struct {
	titre        string
	numero       string
	dateEmission time.Time
	dateEcheance time.Time // zéro = non renseignée
	tauxTVA      decimal.Decimal
	totalHT      decimal.Decimal
	totalTVA     decimal.Decimal
	totalTTC     decimal.Decimal
	conditions   string
	lignes       []entity.Ligne
	company      *entity.Company
	client       *entity.Client
}

// GenerateFacturePDF génère le PDF d'une facture et renvoie ses octets.
func (g *GofpdfGenerator) GenerateFacturePDF(
	_ context.Context,
	facture *entity.Facture,
	company *entity.Company,
	client *entity.Client,
	lignes []entity.Ligne,
) ([]byte, error) {
	doc := document{
		titre:        "FACTURE",
		numero:       facture.Number,
		dateEmission: facture.DateEmission,
		tauxTVA:      facture.TauxTVA,
		totalHT:      facture.TotalHT,
		totalTVA:     facture.TotalTVA,
		totalTTC:     facture.TotalTTC,
		conditions:   facture.Conditions,
		lignes:       lignes,
		company:      company,
		client:       client,
	}
	if facture.DateEcheance != nil {
		doc.dateEcheance = *facture.DateEcheance
	}
	return dessiner(doc)
}

// GenerateDevisPDF génère le PDF d'un devis avec le même gabarit que la facture.
func (g *GofpdfGenerator) GenerateDevisPDF(
	_ context.Context,
	devis *entity.Devis,
	company *entity.Company,
	client *entity.Client,
	lignes []entity.Ligne,
) ([]byte, error) {
	doc := document{
		titre:        "DEVIS",
		numero:       devis.Number,
		dateEmission: devis.CreatedAt,
		tauxTVA:      devis.TauxTVA,
		totalHT:      devis.TotalHT,
		totalTVA:     devis.TotalTVA,
		totalTTC:     devis.TotalTTC,
		conditions:   devis.Conditions,
		lignes:       lignes,
		company:      company,
		client:       client,
	}
	return dessiner(doc)
}

// ── Dessin ────────────────────────────────────────────────────────────────────

// dessin porte l'état du rendu : le document gofpdf, le traducteur
// UTF-8 → Windows-1252 et le curseur vertical.
type dessin struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (d *dessin) police(style string, taille float64) {
	d.pdf.SetFont("Helvetica", style, taille)
}

// texte dessine une chaîne ancrée à gauche sur la rangée courante.
// Toute chaîne passe par Sanitize avant la primitive de dessin (contrat dur).
func (d *dessin) texte(x float64, s string) {
	d.pdf.Text(x, d.y, d.tr(Sanitize(s)))
}

// texteDroite dessine une chaîne alignée à droite sur l'ancre xDroite.
func (d *dessin) texteDroite(xDroite float64, s string) {
	enc := d.tr(Sanitize(s))
	d.pdf.Text(xDroite-d.pdf.GetStringWidth(enc), d.y, enc)
}

func (d *dessin) avancer(h float64) { d.y += h }

func (d *dessin) filet(x1, x2 float64) {
	d.pdf.Line(x1, d.y, x2, d.y)
}

// dessiner produit les octets PDF du document, de haut en bas, dans un ordre
// strict. Les seules erreurs possibles remontent de gofpdf (sérialisation).
func dessiner(doc document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.titre+" "+doc.numero, true)
	// Une seule page : le débordement dessine hors page, sans pagination.
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	largeur, _ := pdf.GetPageSize()
	xDroite := largeur - margeDroite

	d := &dessin{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), y: yDepart}

	// ── Titre + numéro + lieu/date (bloc aligné à droite) ─────────────────────
	d.police("B", policeTitre)
	d.texteDroite(xDroite, doc.titre)
	d.avancer(8)
	d.police("", policeBase+1)
	d.texteDroite(xDroite, "N° "+NonVide(doc.numero))
	d.avancer(hauteurLigne)
	d.police("", policeBase)
	ville := Placeholder
	if doc.company != nil && strings.TrimSpace(doc.company.City) != "" {
		ville = doc.company.City
	}
	d.texteDroite(xDroite, fmt.Sprintf("%s, le %s", ville, FormatDate(doc.dateEmission)))
	d.avancer(hauteurLigne + 4)

	// ── Identités émetteur / client, paire par paire ──────────────────────────
	d.police("B", policeBase)
	d.texte(margeGauche, "ÉMETTEUR")
	d.texte(colDroiteX, "CLIENT")
	d.avancer(hauteurLigne)
	d.police("", policeBase)

	gauche := identiteEmetteur(doc.company)
	droite := identiteClient(doc.client)
	for i := range gauche {
		d.texte(margeGauche, gauche[i])
		d.texte(colDroiteX, droite[i])
		d.avancer(hauteurLigne)
	}
	d.avancer(3)

	// ── Rangée des dates (deux colonnes sur la même ligne) ────────────────────
	d.texte(margeGauche, "Date d'émission : "+FormatDate(doc.dateEmission))
	d.texte(colDroiteX, "Date d'échéance : "+FormatDate(doc.dateEcheance))
	d.avancer(hauteurLigne + 4)

	// ── Tableau des lignes ────────────────────────────────────────────────────
	d.police("B", policeBase)
	d.texte(margeGauche, "Désignation")
	d.texteDroite(xDroite, "Montant HT")
	d.avancer(2)
	d.filet(margeGauche, xDroite)
	d.avancer(hauteurLigne)
	d.police("", policeBase)

	for _, l := range doc.lignes {
		// Un groupe affiche la somme des sous-lignes ; ses Quantite/PrixUnitaire
		// propres ne font plus autorité.
		d.texte(margeGauche, l.Description)
		d.texteDroite(xDroite, FormatEuro(l.MontantAffiche()))
		d.avancer(hauteurLigne)
		if l.EstGroupe() {
			d.police("", policeSousLigne)
			for _, sl := range l.SousLignes {
				d.texte(margeGauche+5, sl.Description)
				d.texteDroite(xDroite, FormatEuro(sl.Total))
				d.avancer(hauteurSousLigne)
			}
			d.police("", policeBase)
		}
	}

	// ── Totaux ────────────────────────────────────────────────────────────────
	d.avancer(2)
	d.filet(margeGauche, xDroite)
	d.avancer(hauteurLigne)

	xLabel := xDroite - 60
	d.texte(xLabel, "Total HT")
	d.texteDroite(xDroite, FormatEuro(doc.totalHT))
	d.avancer(hauteurLigne)
	d.texte(xLabel, "TVA ("+pourcent(doc.tauxTVA)+")")
	d.texteDroite(xDroite, FormatEuro(doc.totalTVA))
	d.avancer(hauteurLigne)
	d.police("B", policeTotalTTC)
	d.texte(xLabel, "TOTAL TTC")
	d.texteDroite(xDroite, FormatEuro(doc.totalTTC))
	d.avancer(hauteurLigne + 6)

	// ── Conditions de règlement ───────────────────────────────────────────────
	d.police("", policeSousLigne)
	d.texte(margeGauche, "Conditions de règlement : "+NonVide(doc.conditions))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: génération du document: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Blocs d'identité ──────────────────────────────────────────────────────────

// identiteEmetteur renvoie les six rangées du bloc émetteur, champs absents
// remplacés par le tiret cadratin.
func identiteEmetteur(c *entity.Company) []string {
	if c == nil {
		return []string{Placeholder, Placeholder, Placeholder, Placeholder, Placeholder, Placeholder}
	}
	return []string{
		NonVide(c.Name),
		NonVide(c.Address),
		villeLigne(c.PostalCode, c.City),
		NonVide(c.Phone),
		NonVide(c.Email),
		"SIRET : " + NonVide(c.SIRET),
	}
}

// identiteClient renvoie les six rangées du bloc client.
func identiteClient(c *entity.Client) []string {
	if c == nil {
		return []string{Placeholder, Placeholder, Placeholder, Placeholder, Placeholder, Placeholder}
	}
	return []string{
		NonVide(c.Name),
		NonVide(c.Entreprise),
		NonVide(c.Address),
		villeLigne(c.PostalCode, c.City),
		NonVide(c.Phone),
		NonVide(c.Email),
	}
}

// villeLigne compose "CP Ville" ; placeholder si les deux champs sont vides.
func villeLigne(cp, ville string) string {
	s := strings.TrimSpace(strings.TrimSpace(cp) + " " + strings.TrimSpace(ville))
	return NonVide(s)
}

// pourcent rend un taux de TVA en notation française : "20 %", "5,5 %".
func pourcent(taux decimal.Decimal) string {
	return strings.ReplaceAll(taux.String(), ".", ",") + " %"
}
