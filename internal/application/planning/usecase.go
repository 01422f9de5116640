// Package planning porte les cas d'usage du calendrier de l'entreprise :
// interventions sur chantier, rendez-vous et congés de l'équipe.
package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// UseCase cas d'usage du planning.
type UseCase struct {
	repo         repository.PlanningRepository
	chantierRepo repository.ChantierRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.PlanningRepository, chantierRepo repository.ChantierRepository) *UseCase {
	return &UseCase{repo: repo, chantierRepo: chantierRepo}
}

// Create crée un événement. La fin doit être postérieure au début ; un
// rattachement à un chantier est vérifié s'il est fourni.
func (uc *UseCase) Create(companyID string, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if in.Titre == "" || !in.Fin.After(in.Debut) {
		return nil, domain.ErrInvalidInput
	}
	if in.ChantierID != "" {
		chantier, err := uc.chantierRepo.GetByID(in.ChantierID)
		if err != nil || chantier == nil {
			return nil, domain.ErrNotFound
		}
		if chantier.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}
	eventType := in.Type
	if eventType == "" {
		eventType = entity.EventTypeAutre
	}
	now := time.Now()
	event := &entity.PlanningEvent{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		ChantierID: in.ChantierID,
		UserID:     in.UserID,
		Titre:      in.Titre,
		Type:       eventType,
		Debut:      in.Debut,
		Fin:        in.Fin,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return toResponse(event), nil
}

// ListRange liste les événements de l'entreprise sur une fenêtre temporelle.
func (uc *UseCase) ListRange(companyID string, debut, fin time.Time) ([]*dto.EventResponse, error) {
	if !fin.After(debut) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCompanyAndRange(companyID, debut, fin)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toResponse(e))
	}
	return out, nil
}

// Update applique une mise à jour partielle d'un événement.
func (uc *UseCase) Update(companyID, id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Titre != nil {
		event.Titre = *in.Titre
	}
	if in.Type != nil {
		event.Type = *in.Type
	}
	if in.ChantierID != nil {
		event.ChantierID = *in.ChantierID
	}
	if in.UserID != nil {
		event.UserID = *in.UserID
	}
	if in.Debut != nil {
		event.Debut = *in.Debut
	}
	if in.Fin != nil {
		event.Fin = *in.Fin
	}
	if in.Notes != nil {
		event.Notes = *in.Notes
	}
	if !event.Fin.After(event.Debut) {
		return nil, domain.ErrInvalidInput
	}
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	return toResponse(event), nil
}

// Delete supprime un événement de l'entreprise.
func (uc *UseCase) Delete(companyID, id string) error {
	if _, err := uc.charger(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// charger récupère l'événement et vérifie la propriété.
func (uc *UseCase) charger(companyID, id string) (*entity.PlanningEvent, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if event.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func toResponse(e *entity.PlanningEvent) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:         e.ID,
		CompanyID:  e.CompanyID,
		ChantierID: e.ChantierID,
		UserID:     e.UserID,
		Titre:      e.Titre,
		Type:       e.Type,
		Debut:      e.Debut,
		Fin:        e.Fin,
		Notes:      e.Notes,
	}
}
