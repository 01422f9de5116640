package repository

import "github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"

// CompanyRepository définit le port de persistance pour Company (profil émetteur).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
}
