package postgres

import (
	"context"
	"fmt"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

// Les lignes de devis et de factures sont stockées à plat : une sous-ligne
// porte le parent_id de sa ligne de groupe, position préserve l'ordre du
// document. L'arborescence est limitée à un niveau.

// insererLignes persiste les lignes d'un document dans la table donnée
// (devis_lignes ou facture_lignes, colonne FK devis_id ou facture_id).
func insererLignes(ctx context.Context, q Querier, table, fkColumn, docID string, lignes []entity.Ligne) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, parent_id, position, description, quantite, prix_unitaire, total, unite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, table, fkColumn)
	position := 0
	var inserer func(l entity.Ligne, parentID *string) error
	inserer = func(l entity.Ligne, parentID *string) error {
		_, err := q.Exec(ctx, query,
			l.ID, docID, parentID, position, l.Description,
			l.Quantite, l.PrixUnitaire, l.Total, l.Unite,
		)
		if err != nil {
			return fmt.Errorf("insert ligne: %w", err)
		}
		position++
		for _, sl := range l.SousLignes {
			if err := inserer(sl, &l.ID); err != nil {
				return err
			}
		}
		return nil
	}
	for _, l := range lignes {
		if err := inserer(l, nil); err != nil {
			return err
		}
	}
	return nil
}

// chargerLignes relit les lignes d'un document et reconstruit l'arborescence
// à un niveau, dans l'ordre d'insertion.
func chargerLignes(ctx context.Context, q Querier, table, fkColumn, docID string) ([]entity.Ligne, error) {
	query := fmt.Sprintf(`
		SELECT id, parent_id, description, quantite, prix_unitaire, total, unite
		FROM %s WHERE %s = $1 ORDER BY position`, table, fkColumn)
	rows, err := q.Query(ctx, query, docID)
	if err != nil {
		return nil, fmt.Errorf("list lignes: %w", err)
	}
	defer rows.Close()

	var racines []entity.Ligne
	indexParents := map[string]int{} // id de ligne racine -> index dans racines
	for rows.Next() {
		var l entity.Ligne
		var parentID *string
		if err := rows.Scan(&l.ID, &parentID, &l.Description, &l.Quantite, &l.PrixUnitaire, &l.Total, &l.Unite); err != nil {
			return nil, fmt.Errorf("scan ligne: %w", err)
		}
		if parentID == nil {
			indexParents[l.ID] = len(racines)
			racines = append(racines, l)
			continue
		}
		idx, ok := indexParents[*parentID]
		if !ok {
			// Parent absent ou hors ordre : on la remonte en racine plutôt
			// que de la perdre.
			racines = append(racines, l)
			continue
		}
		racines[idx].SousLignes = append(racines[idx].SousLignes, l)
	}
	return racines, rows.Err()
}
