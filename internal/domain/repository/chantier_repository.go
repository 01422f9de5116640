package repository

import "github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"

// ChantierRepository définit le port de persistance pour les chantiers.
type ChantierRepository interface {
	Create(chantier *entity.Chantier) error
	GetByID(id string) (*entity.Chantier, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Chantier, error)
	ListByClient(clientID string) ([]*entity.Chantier, error)
	Update(chantier *entity.Chantier) error
	Delete(id string) error
}
