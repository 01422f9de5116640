package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	devisdomain "github.com/madenm/BTPAPPMuss-sub002/internal/domain/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	infrapdf "github.com/madenm/BTPAPPMuss-sub002/internal/infrastructure/pdf"
)

var (
	pdfOutput   string
	pdfNumero   string
	pdfTauxTVA  string
	pdfEmetteur string
	pdfClient   string
)

var pdfCmd = &cobra.Command{
	Use:   "pdf [description]",
	Short: "Analyse une description et génère un devis PDF",
	Long: `Analyse une description de travaux, construit un devis à partir des lignes
extraites et rend le document PDF sur une page A4.

Les identités émetteur et client sont optionnelles : les champs absents sont
rendus par un tiret sur le document, comme dans l'application.`,
	Example: `  # Devis PDF minimal
  btpctl pdf "Pose de carrelage 25 m2 à 45€/m2" -o devis.pdf

  # Avec numéro, taux de TVA réduit et identités
  btpctl pdf "Rénovation salle de bain 4500 euros" \
    -o devis.pdf --numero DEV-2026-0001 --tva 10 \
    --emetteur "Bâti Sud SARL" --client "M. Dupont"`,
	Args: cobra.ArbitraryArgs,
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfOutput, "output", "o", "devis.pdf", "fichier PDF de sortie")
	pdfCmd.Flags().StringVar(&pdfNumero, "numero", "DEV-0000-0000", "numéro du devis")
	pdfCmd.Flags().StringVar(&pdfTauxTVA, "tva", "20", "taux de TVA (20, 10 ou 5.5)")
	pdfCmd.Flags().StringVar(&pdfEmetteur, "emetteur", "", "nom de l'entreprise émettrice")
	pdfCmd.Flags().StringVar(&pdfClient, "client", "", "nom du client")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	description, err := lireDescription(args)
	if err != nil {
		return err
	}

	lignes := devisdomain.ParseDescription(description)
	if len(lignes) == 0 {
		return fmt.Errorf("aucune ligne extraite de la description")
	}

	taux, err := decimal.NewFromString(pdfTauxTVA)
	if err != nil {
		return fmt.Errorf("taux de TVA invalide %q : %w", pdfTauxTVA, err)
	}

	totalHT := entity.TotalLignes(lignes)
	totalTVA := totalHT.Mul(taux).Div(decimal.NewFromInt(100))
	devis := &entity.Devis{
		Number:      pdfNumero,
		Status:      entity.DevisStatusBrouillon,
		Description: description,
		TauxTVA:     taux,
		TotalHT:     totalHT,
		TotalTVA:    totalTVA,
		TotalTTC:    totalHT.Add(totalTVA),
		CreatedAt:   time.Now(),
	}

	var company *entity.Company
	if pdfEmetteur != "" {
		company = &entity.Company{Name: pdfEmetteur}
	}
	var client *entity.Client
	if pdfClient != "" {
		client = &entity.Client{Name: pdfClient}
	}

	generator := infrapdf.NewGofpdfGenerator()
	data, err := generator.GenerateDevisPDF(context.Background(), devis, company, client, lignes)
	if err != nil {
		return fmt.Errorf("génération du PDF : %w", err)
	}

	if err := os.WriteFile(pdfOutput, data, 0o644); err != nil {
		return fmt.Errorf("écriture de %s : %w", pdfOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "devis PDF écrit dans %s (%d octets, %d ligne(s))\n",
		pdfOutput, len(data), len(lignes))
	return nil
}
