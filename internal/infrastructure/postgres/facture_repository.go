package postgres

import (
	"context"
	"fmt"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

var _ repository.FactureRepository = (*FactureRepo)(nil)

// FactureRepo implémentation du port FactureRepository sur PostgreSQL
// (utilisable avec le pool ou une transaction).
type FactureRepo struct {
	q Querier
}

// NewFactureRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewFactureRepository(q Querier) *FactureRepo {
	return &FactureRepo{q: q}
}

const factureColumns = `id, company_id, client_id, devis_id, number, status, date_emission, date_echeance, taux_tva, total_ht, total_tva, total_ttc, conditions, created_at, updated_at`

// Create persiste l'en-tête de la facture et ses lignes.
func (r *FactureRepo) Create(facture *entity.Facture, lignes []entity.Ligne) error {
	ctx := context.Background()
	query := `
		INSERT INTO factures (` + factureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		facture.ID, facture.CompanyID, facture.ClientID, nullIfEmpty(facture.DevisID),
		facture.Number, facture.Status, facture.DateEmission, facture.DateEcheance,
		facture.TauxTVA, facture.TotalHT, facture.TotalTVA, facture.TotalTTC,
		facture.Conditions, facture.CreatedAt, facture.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("numéro de facture déjà attribué: %w", err)
		}
		return fmt.Errorf("insert facture: %w", err)
	}
	return insererLignes(ctx, r.q, "facture_lignes", "facture_id", facture.ID, lignes)
}

// GetByID récupère l'en-tête d'une facture.
func (r *FactureRepo) GetByID(id string) (*entity.Facture, error) {
	query := `SELECT ` + factureColumns + ` FROM factures WHERE id = $1`
	var f entity.Facture
	var devisID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.CompanyID, &f.ClientID, &devisID, &f.Number, &f.Status,
		&f.DateEmission, &f.DateEcheance, &f.TauxTVA, &f.TotalHT, &f.TotalTVA,
		&f.TotalTTC, &f.Conditions, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get facture: %w", err)
	}
	f.DevisID = derefStr(devisID)
	return &f, nil
}

// GetLignesByFactureID récupère les lignes d'une facture, arborescence reconstruite.
func (r *FactureRepo) GetLignesByFactureID(factureID string) ([]entity.Ligne, error) {
	return chargerLignes(context.Background(), r.q, "facture_lignes", "facture_id", factureID)
}

// ListByCompany liste les factures de l'entreprise, les plus récentes d'abord.
func (r *FactureRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Facture, error) {
	query := `
		SELECT ` + factureColumns + `
		FROM factures WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list factures: %w", err)
	}
	defer rows.Close()

	var list []*entity.Facture
	for rows.Next() {
		var f entity.Facture
		var devisID *string
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.ClientID, &devisID, &f.Number, &f.Status,
			&f.DateEmission, &f.DateEcheance, &f.TauxTVA, &f.TotalHT, &f.TotalTVA,
			&f.TotalTTC, &f.Conditions, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan facture: %w", err)
		}
		f.DevisID = derefStr(devisID)
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update met à jour l'en-tête d'une facture (statut, échéance, conditions).
func (r *FactureRepo) Update(facture *entity.Facture) error {
	query := `
		UPDATE factures
		SET status = $2, date_echeance = $3, conditions = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		facture.ID, facture.Status, facture.DateEcheance, facture.Conditions, facture.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update facture: %w", err)
	}
	return nil
}

// CountByCompanyAndYear compte les factures émises dans l'année (pour la
// numérotation FAC-AAAA-NNNN).
func (r *FactureRepo) CountByCompanyAndYear(companyID string, annee int) (int, error) {
	query := `
		SELECT COUNT(*) FROM factures
		WHERE company_id = $1 AND EXTRACT(YEAR FROM date_emission) = $2`
	var count int
	if err := r.q.QueryRow(context.Background(), query, companyID, annee).Scan(&count); err != nil {
		return 0, fmt.Errorf("count factures: %w", err)
	}
	return count, nil
}
