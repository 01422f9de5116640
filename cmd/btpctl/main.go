// btpctl est un outil en ligne de commande pour tester hors ligne les deux
// briques métier qui n'ont pas besoin de base de données : l'analyse de
// descriptions libres en lignes de devis, et le rendu PDF des documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "btpctl",
	Short:   "btpctl - outillage en ligne de commande de l'application BTP",
	Version: version,
	Long: `btpctl permet d'exercer localement, sans serveur ni base de données,
l'analyse de descriptions de travaux et la génération de PDF.

Commandes :
  parse  analyse une description libre et affiche les lignes structurées (JSON)
  pdf    analyse une description et génère un devis PDF`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "erreur : %v\n", err)
		os.Exit(1)
	}
}
