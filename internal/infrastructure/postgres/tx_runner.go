package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/billing"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// Vérification à la compilation que TxRunner implémente billing.BillingTxRunner.
var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion ouvre une transaction, exécute fn avec des repos devis et
// factures liés à cette transaction, puis Commit ou Rollback.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(
	devisRepo repository.DevisRepository,
	factureRepo repository.FactureRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	devisRepo := NewDevisRepository(tx)
	factureRepo := NewFactureRepository(tx)

	if err := fn(devisRepo, factureRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
