package postgres

import (
	"context"
	"fmt"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

var _ repository.DevisRepository = (*DevisRepo)(nil)

// DevisRepo implémentation du port DevisRepository sur PostgreSQL
// (utilisable avec le pool ou une transaction).
type DevisRepo struct {
	q Querier
}

// NewDevisRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewDevisRepository(q Querier) *DevisRepo {
	return &DevisRepo{q: q}
}

const devisColumns = `id, company_id, client_id, chantier_id, number, status, description, taux_tva, total_ht, total_tva, total_ttc, conditions, facture_id, created_at, updated_at`

// Create persiste l'en-tête du devis et ses lignes.
func (r *DevisRepo) Create(devis *entity.Devis, lignes []entity.Ligne) error {
	ctx := context.Background()
	query := `
		INSERT INTO devis (` + devisColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		devis.ID, devis.CompanyID, devis.ClientID, nullIfEmpty(devis.ChantierID),
		devis.Number, devis.Status, devis.Description, devis.TauxTVA,
		devis.TotalHT, devis.TotalTVA, devis.TotalTTC, devis.Conditions,
		nullIfEmpty(devis.FactureID), devis.CreatedAt, devis.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("numéro de devis déjà attribué: %w", err)
		}
		return fmt.Errorf("insert devis: %w", err)
	}
	return insererLignes(ctx, r.q, "devis_lignes", "devis_id", devis.ID, lignes)
}

// GetByID récupère l'en-tête d'un devis.
func (r *DevisRepo) GetByID(id string) (*entity.Devis, error) {
	query := `SELECT ` + devisColumns + ` FROM devis WHERE id = $1`
	var d entity.Devis
	var chantierID, factureID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CompanyID, &d.ClientID, &chantierID, &d.Number, &d.Status,
		&d.Description, &d.TauxTVA, &d.TotalHT, &d.TotalTVA, &d.TotalTTC,
		&d.Conditions, &factureID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devis: %w", err)
	}
	d.ChantierID = derefStr(chantierID)
	d.FactureID = derefStr(factureID)
	return &d, nil
}

// GetLignesByDevisID récupère les lignes d'un devis, arborescence reconstruite.
func (r *DevisRepo) GetLignesByDevisID(devisID string) ([]entity.Ligne, error) {
	return chargerLignes(context.Background(), r.q, "devis_lignes", "devis_id", devisID)
}

// ListByCompany liste les devis de l'entreprise, les plus récents d'abord.
func (r *DevisRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Devis, error) {
	query := `
		SELECT ` + devisColumns + `
		FROM devis WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devis: %w", err)
	}
	defer rows.Close()

	var list []*entity.Devis
	for rows.Next() {
		var d entity.Devis
		var chantierID, factureID *string
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.ClientID, &chantierID, &d.Number, &d.Status,
			&d.Description, &d.TauxTVA, &d.TotalHT, &d.TotalTVA, &d.TotalTTC,
			&d.Conditions, &factureID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan devis: %w", err)
		}
		d.ChantierID = derefStr(chantierID)
		d.FactureID = derefStr(factureID)
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update met à jour l'en-tête d'un devis (statut, conversion, conditions).
func (r *DevisRepo) Update(devis *entity.Devis) error {
	query := `
		UPDATE devis
		SET status = $2, taux_tva = $3, total_ht = $4, total_tva = $5, total_ttc = $6,
		    conditions = $7, facture_id = COALESCE($8, facture_id), updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		devis.ID, devis.Status, devis.TauxTVA, devis.TotalHT, devis.TotalTVA,
		devis.TotalTTC, devis.Conditions, nullIfEmpty(devis.FactureID), devis.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update devis: %w", err)
	}
	return nil
}

// CountByCompanyAndYear compte les devis émis dans l'année (pour la
// numérotation DEV-AAAA-NNNN).
func (r *DevisRepo) CountByCompanyAndYear(companyID string, annee int) (int, error) {
	query := `
		SELECT COUNT(*) FROM devis
		WHERE company_id = $1 AND EXTRACT(YEAR FROM created_at) = $2`
	var count int
	if err := r.q.QueryRow(context.Background(), query, companyID, annee).Scan(&count); err != nil {
		return 0, fmt.Errorf("count devis: %w", err)
	}
	return count, nil
}
