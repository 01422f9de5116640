package postgres

import (
	"context"
	"fmt"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// Vérifie que CompanyRepo implémente repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implémentation du port CompanyRepository sur PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construit l'adaptateur de persistance pour l'entreprise.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste le profil entreprise.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, address, city, postal_code, phone, email, siret, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.City, company.PostalCode,
		company.Phone, company.Email, nullIfEmpty(company.SIRET), company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("siret déjà enregistré: %w", err)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID récupère le profil entreprise.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, address, city, postal_code, phone, email, COALESCE(siret, ''), status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.PostalCode,
		&c.Phone, &c.Email, &c.SIRET, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update met à jour le profil entreprise.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, address = $3, city = $4, postal_code = $5,
		    phone = $6, email = $7, siret = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.City, company.PostalCode,
		company.Phone, company.Email, nullIfEmpty(company.SIRET), company.Status,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
