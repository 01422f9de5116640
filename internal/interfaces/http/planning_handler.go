package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/planning"
)

// PlanningHandler gère le calendrier de l'entreprise.
type PlanningHandler struct {
	uc *planning.UseCase
}

// NewPlanningHandler construit le handler.
func NewPlanningHandler(uc *planning.UseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// Create crée un événement.
// POST /api/planning
func (h *PlanningHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	event, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return mapDomainError(c, err, "chantier introuvable")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// List liste les événements sur une fenêtre : ?debut=RFC3339&fin=RFC3339.
// Sans paramètres, la semaine courante est renvoyée.
// GET /api/planning
func (h *PlanningHandler) List(c *fiber.Ctx) error {
	debut, fin, err := fenetre(c.Query("debut"), c.Query("fin"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dates attendues au format RFC 3339"})
	}
	list, err := h.uc.ListRange(GetCompanyID(c), debut, fin)
	if err != nil {
		return mapDomainError(c, err, "événement introuvable")
	}
	return c.JSON(list)
}

// Update met à jour un événement.
// PUT /api/planning/:id
func (h *PlanningHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := valider(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	event, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "événement introuvable")
	}
	return c.JSON(event)
}

// Delete supprime un événement.
// DELETE /api/planning/:id
func (h *PlanningHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err, "événement introuvable")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fenetre interprète les bornes de la requête ; par défaut, du lundi de la
// semaine courante à sept jours plus tard.
func fenetre(debutStr, finStr string) (time.Time, time.Time, error) {
	if debutStr == "" && finStr == "" {
		now := time.Now()
		joursDepuisLundi := (int(now.Weekday()) + 6) % 7
		lundi := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, -joursDepuisLundi)
		return lundi, lundi.AddDate(0, 0, 7), nil
	}
	debut, err := time.Parse(time.RFC3339, debutStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fin, err := time.Parse(time.RFC3339, finStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return debut, fin, nil
}
