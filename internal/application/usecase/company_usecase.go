package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// CompanyUseCase règles métier du profil entreprise (l'émetteur des documents).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construit le cas d'usage avec le port de persistance.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crée le profil entreprise. Tous les champs d'identité sont optionnels
// sauf le nom : les documents PDF affichent un tiret pour les champs absents.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Phone:      in.Phone,
		Email:      in.Email,
		SIRET:      in.SIRET,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID récupère le profil entreprise.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// Update applique une mise à jour partielle : seuls les champs non nil changent.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.City != nil {
		company.City = *in.City
	}
	if in.PostalCode != nil {
		company.PostalCode = *in.PostalCode
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.SIRET != nil {
		company.SIRET = *in.SIRET
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Email:      c.Email,
		SIRET:      c.SIRET,
		Status:     c.Status,
	}
}
