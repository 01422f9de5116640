package repository

import "github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"

// ClientRepository définit le port de persistance pour les contacts CRM.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error)
	ListByCompanyAndStatus(companyID, status string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
