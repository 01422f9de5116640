package repository

import "github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"

// FactureRepository définit le port de persistance pour les factures et leurs lignes.
type FactureRepository interface {
	Create(facture *entity.Facture, lignes []entity.Ligne) error
	GetByID(id string) (*entity.Facture, error)
	GetLignesByFactureID(factureID string) ([]entity.Ligne, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Facture, error)
	Update(facture *entity.Facture) error
	CountByCompanyAndYear(companyID string, annee int) (int, error)
}
