package postgres

import (
	"context"
	"fmt"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

var _ repository.ChantierRepository = (*ChantierRepo)(nil)

// ChantierRepo implémentation du port ChantierRepository sur PostgreSQL.
type ChantierRepo struct {
	q Querier
}

// NewChantierRepository construit l'adaptateur de persistance pour les chantiers.
func NewChantierRepository(q Querier) *ChantierRepo {
	return &ChantierRepo{q: q}
}

const chantierColumns = `id, company_id, client_id, name, description, address, status, avancement, budget, date_debut, date_fin, created_at, updated_at`

// Create persiste un nouveau chantier.
func (r *ChantierRepo) Create(chantier *entity.Chantier) error {
	query := `
		INSERT INTO chantiers (` + chantierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		chantier.ID, chantier.CompanyID, chantier.ClientID, chantier.Name,
		chantier.Description, chantier.Address, chantier.Status, chantier.Avancement,
		chantier.Budget, chantier.DateDebut, chantier.DateFin,
		chantier.CreatedAt, chantier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert chantier: %w", err)
	}
	return nil
}

// GetByID récupère un chantier par ID.
func (r *ChantierRepo) GetByID(id string) (*entity.Chantier, error) {
	query := `SELECT ` + chantierColumns + ` FROM chantiers WHERE id = $1`
	var c entity.Chantier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.ClientID, &c.Name, &c.Description, &c.Address,
		&c.Status, &c.Avancement, &c.Budget, &c.DateDebut, &c.DateFin,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chantier: %w", err)
	}
	return &c, nil
}

// ListByCompany liste les chantiers de l'entreprise, les plus récents d'abord.
func (r *ChantierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Chantier, error) {
	query := `
		SELECT ` + chantierColumns + `
		FROM chantiers WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByClient liste les chantiers rattachés à un client.
func (r *ChantierRepo) ListByClient(clientID string) ([]*entity.Chantier, error) {
	query := `
		SELECT ` + chantierColumns + `
		FROM chantiers WHERE client_id = $1
		ORDER BY created_at DESC`
	return r.list(query, clientID)
}

// Update met à jour un chantier.
func (r *ChantierRepo) Update(chantier *entity.Chantier) error {
	query := `
		UPDATE chantiers
		SET name = $2, description = $3, address = $4, status = $5, avancement = $6,
		    budget = $7, date_debut = $8, date_fin = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		chantier.ID, chantier.Name, chantier.Description, chantier.Address,
		chantier.Status, chantier.Avancement, chantier.Budget,
		chantier.DateDebut, chantier.DateFin, chantier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chantier: %w", err)
	}
	return nil
}

// Delete supprime un chantier.
func (r *ChantierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM chantiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chantier: %w", err)
	}
	return nil
}

func (r *ChantierRepo) list(query string, args ...any) ([]*entity.Chantier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chantiers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Chantier
	for rows.Next() {
		var c entity.Chantier
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.ClientID, &c.Name, &c.Description, &c.Address,
			&c.Status, &c.Avancement, &c.Budget, &c.DateDebut, &c.DateFin, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chantier: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
