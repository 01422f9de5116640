// Package crm porte les cas d'usage du carnet de contacts : prospects et
// clients de l'entreprise, avec recherche insensible aux accents.
package crm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// ClientUseCase cas d'usage CRM : gestion des contacts de l'entreprise.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crée un contact. Statut "prospect" par défaut.
func (uc *ClientUseCase) Create(companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ClientStatusProspect
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       in.Name,
		Entreprise: in.Entreprise,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Status:     status,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID récupère un contact en vérifiant qu'il appartient à l'entreprise.
func (uc *ClientUseCase) GetByID(companyID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toClientResponse(client), nil
}

// List liste les contacts de l'entreprise, filtrés par statut si fourni, puis
// par le motif de recherche (comparaison insensible aux accents et à la casse,
// sur le nom et la raison sociale).
func (uc *ClientUseCase) List(companyID, status, search string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	var list []*entity.Client
	var err error
	if status != "" {
		list, err = uc.repo.ListByCompanyAndStatus(companyID, status, page.Limit, page.Offset)
	} else {
		list, err = uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	motif := Normaliser(search)
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		if motif != "" &&
			!strings.Contains(Normaliser(c.Name), motif) &&
			!strings.Contains(Normaliser(c.Entreprise), motif) {
			continue
		}
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update applique une mise à jour partielle : seuls les champs non nil changent.
// Passer Status de prospect à client officialise la relation commerciale.
func (uc *ClientUseCase) Update(companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Entreprise != nil {
		client.Entreprise = *in.Entreprise
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.PostalCode != nil {
		client.PostalCode = *in.PostalCode
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete supprime un contact de l'entreprise.
func (uc *ClientUseCase) Delete(companyID, id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:         c.ID,
		CompanyID:  c.CompanyID,
		Name:       c.Name,
		Entreprise: c.Entreprise,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Status:     c.Status,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
	}
}
