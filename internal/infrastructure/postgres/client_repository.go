package postgres

import (
	"context"
	"fmt"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation du port ClientRepository sur PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur de persistance pour les contacts CRM.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, company_id, name, entreprise, email, phone, address, city, postal_code, status, notes, created_at, updated_at`

// Create persiste un nouveau contact.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.CompanyID, client.Name, client.Entreprise, client.Email,
		client.Phone, client.Address, client.City, client.PostalCode,
		client.Status, client.Notes, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID récupère un contact par ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Entreprise, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.PostalCode, &c.Status, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByCompany liste les contacts de l'entreprise.
func (r *ClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByCompanyAndStatus liste les contacts d'un statut donné (prospect ou client).
func (r *ClientRepo) ListByCompanyAndStatus(companyID, status string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE company_id = $1 AND status = $2
		ORDER BY name LIMIT $3 OFFSET $4`
	return r.list(query, companyID, status, limit, offset)
}

// Update met à jour un contact.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, entreprise = $3, email = $4, phone = $5, address = $6,
		    city = $7, postal_code = $8, status = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Entreprise, client.Email, client.Phone,
		client.Address, client.City, client.PostalCode, client.Status, client.Notes,
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete supprime un contact.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepo) list(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Entreprise, &c.Email, &c.Phone,
			&c.Address, &c.City, &c.PostalCode, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
