package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/crm"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
)

// ClientHandler gère les contacts CRM (prospects et clients).
type ClientHandler struct {
	uc *crm.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *crm.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create crée un contact.
// POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	client, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return mapDomainError(c, err, "contact introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List liste les contacts. Filtres : ?status=prospect|client et ?search=motif
// (recherche insensible aux accents sur nom et raison sociale).
// GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagination invalide"})
	}
	list, err := h.uc.List(GetCompanyID(c), c.Query("status"), c.Query("search"), page)
	if err != nil {
		return mapDomainError(c, err, "contact introuvable")
	}
	return c.JSON(list)
}

// GetByID renvoie un contact.
// GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "contact introuvable")
	}
	return c.JSON(client)
}

// Update met à jour un contact (dont le passage prospect → client).
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	client, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "contact introuvable")
	}
	return c.JSON(client)
}

// Delete supprime un contact.
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err, "contact introuvable")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
