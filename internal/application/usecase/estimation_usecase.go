package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/ports"
)

// EstimationUseCase orchestre l'estimation de coûts assistée par IA.
// Applique un timeout de 10 secondes sur chaque appel au LLM pour éviter
// que les latences externes ne bloquent les goroutines du serveur.
type EstimationUseCase struct {
	llm ports.LLMService
}

// NewEstimationUseCase construit le cas d'usage en injectant le port LLMService.
func NewEstimationUseCase(llm ports.LLMService) *EstimationUseCase {
	return &EstimationUseCase{llm: llm}
}

// EstimateCost valide l'entrée et délègue au service LLM.
// Enveloppe le contexte d'un timeout de 10 s pour respecter les SLAs de l'API.
func (uc *EstimationUseCase) EstimateCost(
	ctx context.Context,
	req dto.AIEstimationRequest,
) (*dto.AIEstimationDTO, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("description est obligatoire")
	}

	// Timeout de 10 s : les appels aux LLMs peuvent durer plusieurs secondes.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.llm.EstimateProjectCost(ctx, req.Description, req.SurfaceM2)
	if err != nil {
		return nil, fmt.Errorf("estimation IA: %w", err)
	}

	return result, nil
}
