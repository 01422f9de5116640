// Package chantier porte les cas d'usage de suivi des chantiers : cycle de
// vie planifie → en_cours → (en_pause) → termine, avancement et budget.
package chantier

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// UseCase cas d'usage des chantiers.
type UseCase struct {
	repo       repository.ChantierRepository
	clientRepo repository.ClientRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.ChantierRepository, clientRepo repository.ClientRepository) *UseCase {
	return &UseCase{repo: repo, clientRepo: clientRepo}
}

// Create crée un chantier rattaché à un client de l'entreprise.
func (uc *UseCase) Create(companyID string, in dto.CreateChantierRequest) (*dto.ChantierResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	budget := decimal.Zero
	if in.Budget != "" {
		budget, err = decimal.NewFromString(in.Budget)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	chantier := &entity.Chantier{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Status:      entity.ChantierStatusPlanifie,
		Avancement:  0,
		Budget:      budget,
		DateDebut:   in.DateDebut,
		DateFin:     in.DateFin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(chantier); err != nil {
		return nil, err
	}
	return toResponse(chantier), nil
}

// GetByID récupère un chantier de l'entreprise.
func (uc *UseCase) GetByID(companyID, id string) (*dto.ChantierResponse, error) {
	chantier, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(chantier), nil
}

// List liste les chantiers de l'entreprise.
func (uc *UseCase) List(companyID string, page dto.PageRequest) ([]*dto.ChantierResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ChantierResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// ListByClient liste les chantiers d'un client donné.
func (uc *UseCase) ListByClient(companyID, clientID string) ([]*dto.ChantierResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ChantierResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// Update applique une mise à jour partielle : seuls les champs non nil changent.
func (uc *UseCase) Update(companyID, id string, in dto.UpdateChantierRequest) (*dto.ChantierResponse, error) {
	chantier, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		chantier.Name = *in.Name
	}
	if in.Description != nil {
		chantier.Description = *in.Description
	}
	if in.Address != nil {
		chantier.Address = *in.Address
	}
	if in.Status != nil {
		chantier.Status = *in.Status
	}
	if in.Avancement != nil {
		if *in.Avancement < 0 || *in.Avancement > 100 {
			return nil, domain.ErrInvalidInput
		}
		chantier.Avancement = *in.Avancement
	}
	if in.Budget != nil {
		budget, err := decimal.NewFromString(*in.Budget)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		chantier.Budget = budget
	}
	if in.DateDebut != nil {
		chantier.DateDebut = in.DateDebut
	}
	if in.DateFin != nil {
		chantier.DateFin = in.DateFin
	}
	chantier.UpdatedAt = time.Now()
	if err := uc.repo.Update(chantier); err != nil {
		return nil, err
	}
	return toResponse(chantier), nil
}

// Delete supprime un chantier de l'entreprise.
func (uc *UseCase) Delete(companyID, id string) error {
	if _, err := uc.charger(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// charger récupère le chantier et vérifie la propriété (multi-entreprise).
func (uc *UseCase) charger(companyID, id string) (*entity.Chantier, error) {
	chantier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chantier == nil {
		return nil, domain.ErrNotFound
	}
	if chantier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return chantier, nil
}

func toResponse(c *entity.Chantier) *dto.ChantierResponse {
	if c == nil {
		return nil
	}
	return &dto.ChantierResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		ClientID:    c.ClientID,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		Status:      c.Status,
		Avancement:  c.Avancement,
		Budget:      c.Budget.String(),
		DateDebut:   c.DateDebut,
		DateFin:     c.DateFin,
		CreatedAt:   c.CreatedAt,
	}
}
