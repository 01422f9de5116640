package repository

import "github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"

// DevisRepository définit le port de persistance pour les devis et leurs lignes.
// Les lignes sont stockées à plat avec un rattachement parent pour les
// sous-lignes ; GetLignesByDevisID reconstruit l'arborescence (un seul niveau).
type DevisRepository interface {
	Create(devis *entity.Devis, lignes []entity.Ligne) error
	GetByID(id string) (*entity.Devis, error)
	GetLignesByDevisID(devisID string) ([]entity.Ligne, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Devis, error)
	Update(devis *entity.Devis) error
	CountByCompanyAndYear(companyID string, annee int) (int, error)
}
