package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	devisdomain "github.com/madenm/BTPAPPMuss-sub002/internal/domain/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [description]",
	Short: "Analyse une description libre de travaux et affiche les lignes structurées",
	Long: `Analyse une description de travaux en français (telle que saisie dans un
devis) et affiche les lignes structurées extraites : désignation, quantité,
prix unitaire, unité et total.

Sans argument, la description est lue sur l'entrée standard.`,
	Example: `  # Description en argument
  btpctl parse "Pose de carrelage 25 m2 à 45€/m2, fourniture comprise 300 euros"

  # Description depuis un fichier
  btpctl parse < description.txt

  # Sauvegarde du résultat en JSON
  btpctl parse "Peinture 3 pièces 1200€" -o lignes.json`,
	Args: cobra.ArbitraryArgs,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "fichier de sortie JSON (défaut : stdout)")
	rootCmd.AddCommand(parseCmd)
}

// ligneJSON est la projection JSON d'une ligne pour la sortie CLI.
type ligneJSON struct {
	Description  string          `json:"description"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Total        decimal.Decimal `json:"total"`
	Unite        string          `json:"unite,omitempty"`
	SousLignes   []ligneJSON     `json:"sous_lignes,omitempty"`
}

type parseJSON struct {
	Lignes  []ligneJSON     `json:"lignes"`
	TotalHT decimal.Decimal `json:"total_ht"`
}

func runParse(cmd *cobra.Command, args []string) error {
	description, err := lireDescription(args)
	if err != nil {
		return err
	}

	lignes := devisdomain.ParseDescription(description)
	sortie := parseJSON{
		Lignes:  versLignesJSON(lignes),
		TotalHT: entity.TotalLignes(lignes),
	}

	data, err := json.MarshalIndent(sortie, "", "  ")
	if err != nil {
		return fmt.Errorf("encodage JSON : %w", err)
	}
	data = append(data, '\n')

	if parseOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(parseOutput, data, 0o644); err != nil {
		return fmt.Errorf("écriture de %s : %w", parseOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d ligne(s) écrites dans %s\n", len(lignes), parseOutput)
	return nil
}

// lireDescription renvoie la description depuis les arguments, ou depuis
// l'entrée standard si aucun argument n'est fourni.
func lireDescription(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("lecture de l'entrée standard : %w", err)
	}
	description := strings.TrimSpace(string(data))
	if description == "" {
		return "", fmt.Errorf("description vide : passez-la en argument ou sur stdin")
	}
	return description, nil
}

func versLignesJSON(lignes []entity.Ligne) []ligneJSON {
	if len(lignes) == 0 {
		return []ligneJSON{}
	}
	out := make([]ligneJSON, 0, len(lignes))
	for _, l := range lignes {
		out = append(out, ligneJSON{
			Description:  l.Description,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
			Total:        l.MontantAffiche(),
			Unite:        l.Unite,
			SousLignes:   versLignesJSON(l.SousLignes),
		})
	}
	return out
}
