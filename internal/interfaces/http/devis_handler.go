package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/billing"
	appdevis "github.com/madenm/BTPAPPMuss-sub002/internal/application/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
)

// DevisHandler gère les devis : analyse de description, création, statuts,
// conversion en facture et téléchargement PDF.
type DevisHandler struct {
	uc      *appdevis.UseCase
	convert *billing.ConvertDevisUseCase
	pdf     *billing.PDFUseCase
}

// NewDevisHandler construit le handler.
func NewDevisHandler(uc *appdevis.UseCase, convert *billing.ConvertDevisUseCase, pdf *billing.PDFUseCase) *DevisHandler {
	return &DevisHandler{uc: uc, convert: convert, pdf: pdf}
}

// ParseDescription transforme un texte libre en lignes structurées, sans rien
// persister (prévisualisation côté client).
// POST /api/devis/parse-description
func (h *DevisHandler) ParseDescription(c *fiber.Ctx) error {
	var in dto.ParseDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	// Le parseur accepte tout texte, y compris vide : il renvoie alors une
	// liste vide plutôt qu'une erreur.
	return c.JSON(h.uc.ParseDescription(in))
}

// Create crée un devis depuis des lignes explicites et/ou une description libre.
// POST /api/devis
func (h *DevisHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDevisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	devis, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return mapDomainError(c, err, "client ou chantier introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(devis)
}

// List liste les devis de l'entreprise.
// GET /api/devis
func (h *DevisHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagination invalide"})
	}
	list, err := h.uc.List(GetCompanyID(c), page)
	if err != nil {
		return mapDomainError(c, err, "devis introuvable")
	}
	return c.JSON(list)
}

// GetByID renvoie un devis avec ses lignes.
// GET /api/devis/:id
func (h *DevisHandler) GetByID(c *fiber.Ctx) error {
	devis, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "devis introuvable")
	}
	return c.JSON(devis)
}

// UpdateStatus change le statut d'un devis (envoi, acceptation, refus).
// PUT /api/devis/:id/status
func (h *DevisHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateDevisStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	devis, err := h.uc.UpdateStatus(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "devis introuvable")
	}
	return c.JSON(devis)
}

// Convert transforme un devis accepté en facture (transactionnel).
// POST /api/devis/:id/convert
func (h *DevisHandler) Convert(c *fiber.Ctx) error {
	facture, err := h.convert.Convert(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "devis introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(facture)
}

// DownloadPDF renvoie la représentation PDF du devis.
// GET /api/devis/:id/pdf
func (h *DevisHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadDevisPDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "devis introuvable")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
