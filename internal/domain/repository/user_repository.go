package repository

import "github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"

// UserRepository définit le port de persistance pour les membres de l'équipe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}
