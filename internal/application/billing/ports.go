package billing

import (
	"context"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// BillingTxRunner exécute une fonction dans une transaction couvrant les repos
// devis et factures. Sert à la conversion devis → facture : si la création de
// la facture ou le gel du devis échoue, tout est annulé (atomicité).
type BillingTxRunner interface {
	RunConversion(ctx context.Context, fn func(
		devisRepo repository.DevisRepository,
		factureRepo repository.FactureRepository,
	) error) error
}

// DocumentPDFGenerator génère la représentation PDF d'un devis ou d'une facture.
// company et client peuvent être nil : les champs absents sont rendus par un
// tiret cadratin sur le document.
type DocumentPDFGenerator interface {
	GenerateFacturePDF(ctx context.Context, facture *entity.Facture, company *entity.Company, client *entity.Client, lignes []entity.Ligne) ([]byte, error)
	GenerateDevisPDF(ctx context.Context, devis *entity.Devis, company *entity.Company, client *entity.Client, lignes []entity.Ligne) ([]byte, error)
}
