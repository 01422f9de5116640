package ports

import (
	"context"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
)

// LLMService définit le port de sortie vers les services d'intelligence artificielle.
// Tout adaptateur (Anthropic, OpenAI, Ollama, mock) doit implémenter cette interface.
// Suivant le principe d'inversion des dépendances (DIP), la couche application
// ne connaît que ce contrat, jamais l'implémentation concrète.
type LLMService interface {
	// EstimateProjectCost analyse la description libre d'un chantier et propose
	// une fourchette de coûts avec les postes de travaux suggérés.
	// Le contexte doit porter un timeout pour éviter les blocages sur appel externe.
	EstimateProjectCost(
		ctx context.Context,
		description string,
		surfaceM2 string,
	) (*dto.AIEstimationDTO, error)
}
