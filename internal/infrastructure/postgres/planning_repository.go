package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

var _ repository.PlanningRepository = (*PlanningRepo)(nil)

// PlanningRepo implémentation du port PlanningRepository sur PostgreSQL.
type PlanningRepo struct {
	q Querier
}

// NewPlanningRepository construit l'adaptateur de persistance pour le planning.
func NewPlanningRepository(q Querier) *PlanningRepo {
	return &PlanningRepo{q: q}
}

const eventColumns = `id, company_id, chantier_id, user_id, titre, type, debut, fin, notes, created_at, updated_at`

// Create persiste un nouvel événement.
func (r *PlanningRepo) Create(event *entity.PlanningEvent) error {
	query := `
		INSERT INTO planning_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.CompanyID, nullIfEmpty(event.ChantierID), nullIfEmpty(event.UserID),
		event.Titre, event.Type, event.Debut, event.Fin, event.Notes,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID récupère un événement par ID.
func (r *PlanningRepo) GetByID(id string) (*entity.PlanningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM planning_events WHERE id = $1`
	var e entity.PlanningEvent
	var chantierID, userID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyID, &chantierID, &userID, &e.Titre, &e.Type,
		&e.Debut, &e.Fin, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	e.ChantierID = derefStr(chantierID)
	e.UserID = derefStr(userID)
	return &e, nil
}

// ListByCompanyAndRange liste les événements chevauchant la fenêtre [debut, fin).
func (r *PlanningRepo) ListByCompanyAndRange(companyID string, debut, fin time.Time) ([]*entity.PlanningEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM planning_events
		WHERE company_id = $1 AND debut < $3 AND fin > $2
		ORDER BY debut`
	rows, err := r.q.Query(context.Background(), query, companyID, debut, fin)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var list []*entity.PlanningEvent
	for rows.Next() {
		var e entity.PlanningEvent
		var chantierID, userID *string
		if err := rows.Scan(&e.ID, &e.CompanyID, &chantierID, &userID, &e.Titre, &e.Type,
			&e.Debut, &e.Fin, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.ChantierID = derefStr(chantierID)
		e.UserID = derefStr(userID)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update met à jour un événement.
func (r *PlanningRepo) Update(event *entity.PlanningEvent) error {
	query := `
		UPDATE planning_events
		SET chantier_id = $2, user_id = $3, titre = $4, type = $5,
		    debut = $6, fin = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, nullIfEmpty(event.ChantierID), nullIfEmpty(event.UserID),
		event.Titre, event.Type, event.Debut, event.Fin, event.Notes, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete supprime un événement.
func (r *PlanningRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM planning_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
