package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/billing"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
)

// FactureHandler gère les factures et leur téléchargement PDF.
type FactureHandler struct {
	uc  *billing.FactureUseCase
	pdf *billing.PDFUseCase
}

// NewFactureHandler construit le handler.
func NewFactureHandler(uc *billing.FactureUseCase, pdf *billing.PDFUseCase) *FactureHandler {
	return &FactureHandler{uc: uc, pdf: pdf}
}

// Create crée une facture directe (sans devis d'origine).
// POST /api/factures
func (h *FactureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFactureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	facture, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return mapDomainError(c, err, "client introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(facture)
}

// List liste les factures de l'entreprise.
// GET /api/factures
func (h *FactureHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagination invalide"})
	}
	list, err := h.uc.List(GetCompanyID(c), page)
	if err != nil {
		return mapDomainError(c, err, "facture introuvable")
	}
	return c.JSON(list)
}

// GetByID renvoie une facture avec ses lignes.
// GET /api/factures/:id
func (h *FactureHandler) GetByID(c *fiber.Ctx) error {
	facture, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "facture introuvable")
	}
	return c.JSON(facture)
}

// UpdateStatus change le statut d'une facture (envoi, paiement, retard).
// PUT /api/factures/:id/status
func (h *FactureHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateFactureStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	facture, err := h.uc.UpdateStatus(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "facture introuvable")
	}
	return c.JSON(facture)
}

// DownloadPDF renvoie la représentation PDF de la facture.
// GET /api/factures/:id/pdf
func (h *FactureHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadFacturePDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "facture introuvable")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
