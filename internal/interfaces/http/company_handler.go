package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/usecase"
)

// CompanyHandler gère le profil entreprise (l'émetteur des documents).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construit le handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create crée le profil entreprise (public : point d'entrée avant inscription).
// POST /api/company
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	company, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err, "entreprise introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// Get renvoie le profil de l'entreprise du token.
// GET /api/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.uc.GetByID(GetCompanyID(c))
	if err != nil {
		return mapDomainError(c, err, "entreprise introuvable")
	}
	return c.JSON(company)
}

// Update met à jour le profil de l'entreprise du token.
// PUT /api/company
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	company, err := h.uc.Update(GetCompanyID(c), in)
	if err != nil {
		return mapDomainError(c, err, "entreprise introuvable")
	}
	return c.JSON(company)
}
