package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/chantier"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
)

// ChantierHandler gère le suivi des chantiers.
type ChantierHandler struct {
	uc *chantier.UseCase
}

// NewChantierHandler construit le handler.
func NewChantierHandler(uc *chantier.UseCase) *ChantierHandler {
	return &ChantierHandler{uc: uc}
}

// Create crée un chantier.
// POST /api/chantiers
func (h *ChantierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChantierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	chantier, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return mapDomainError(c, err, "client introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(chantier)
}

// List liste les chantiers. Filtre : ?client_id=... pour ceux d'un client.
// GET /api/chantiers
func (h *ChantierHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		list, err := h.uc.ListByClient(GetCompanyID(c), clientID)
		if err != nil {
			return mapDomainError(c, err, "client introuvable")
		}
		return c.JSON(list)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagination invalide"})
	}
	list, err := h.uc.List(GetCompanyID(c), page)
	if err != nil {
		return mapDomainError(c, err, "chantier introuvable")
	}
	return c.JSON(list)
}

// GetByID renvoie un chantier.
// GET /api/chantiers/:id
func (h *ChantierHandler) GetByID(c *fiber.Ctx) error {
	chantier, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "chantier introuvable")
	}
	return c.JSON(chantier)
}

// Update met à jour un chantier (statut, avancement, budget, dates).
// PUT /api/chantiers/:id
func (h *ChantierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChantierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	chantier, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "chantier introuvable")
	}
	return c.JSON(chantier)
}

// Delete supprime un chantier.
// DELETE /api/chantiers/:id
func (h *ChantierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err, "chantier introuvable")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
