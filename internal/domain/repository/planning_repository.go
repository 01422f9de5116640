package repository

import (
	"time"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

// PlanningRepository définit le port de persistance pour les événements du planning.
type PlanningRepository interface {
	Create(event *entity.PlanningEvent) error
	GetByID(id string) (*entity.PlanningEvent, error)
	ListByCompanyAndRange(companyID string, debut, fin time.Time) ([]*entity.PlanningEvent, error)
	Update(event *entity.PlanningEvent) error
	Delete(id string) error
}
