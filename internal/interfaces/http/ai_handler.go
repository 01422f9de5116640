package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/usecase"
)

// AIHandler gère l'estimation de coûts assistée par IA.
type AIHandler struct {
	uc *usecase.EstimationUseCase
}

// NewAIHandler construit le handler.
func NewAIHandler(uc *usecase.EstimationUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Estimate renvoie une fourchette de coûts pour une description de projet.
// POST /api/ai/estimate
func (h *AIHandler) Estimate(c *fiber.Ctx) error {
	var in dto.AIEstimationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.EstimateCost(c.Context(), in)
	if err != nil {
		// Pas de sentinelle domaine ici : clé absente, quota, timeout... tout
		// remonte en 502 pour distinguer des erreurs internes.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}
