package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// ConvertDevisUseCase transforme un devis accepté en facture. La création de
// la facture et le gel du devis (statut converti) se font dans une même
// transaction.
type ConvertDevisUseCase struct {
	txRunner  BillingTxRunner
	devisRepo repository.DevisRepository
}

// NewConvertDevisUseCase construit le cas d'usage.
func NewConvertDevisUseCase(txRunner BillingTxRunner, devisRepo repository.DevisRepository) *ConvertDevisUseCase {
	return &ConvertDevisUseCase{txRunner: txRunner, devisRepo: devisRepo}
}

// Convert crée la facture reprenant les lignes et les totaux du devis.
// Le devis doit être au statut accepte ; un devis déjà converti renvoie
// ErrAlreadyConverted.
func (uc *ConvertDevisUseCase) Convert(ctx context.Context, companyID, devisID string) (*dto.FactureResponse, error) {
	devis, err := uc.devisRepo.GetByID(devisID)
	if err != nil {
		return nil, err
	}
	if devis == nil {
		return nil, domain.ErrNotFound
	}
	if devis.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if devis.Status == entity.DevisStatusConverti {
		return nil, domain.ErrAlreadyConverted
	}
	if devis.Status != entity.DevisStatusAccepte {
		return nil, domain.ErrQuoteNotEditable
	}

	lignesDevis, err := uc.devisRepo.GetLignesByDevisID(devisID)
	if err != nil {
		return nil, err
	}
	// Les lignes de la facture sont des copies : de nouveaux identifiants,
	// le devis garde les siens.
	lignes := copierLignes(lignesDevis)

	now := time.Now()
	var facture *entity.Facture
	err = uc.txRunner.RunConversion(ctx, func(
		devisRepo repository.DevisRepository,
		factureRepo repository.FactureRepository,
	) error {
		number, err := ProchainNumeroFacture(factureRepo, companyID, now)
		if err != nil {
			return err
		}
		facture = &entity.Facture{
			ID:           uuid.New().String(),
			CompanyID:    devis.CompanyID,
			ClientID:     devis.ClientID,
			DevisID:      devis.ID,
			Number:       number,
			Status:       entity.FactureStatusBrouillon,
			DateEmission: now,
			TauxTVA:      devis.TauxTVA,
			TotalHT:      devis.TotalHT,
			TotalTVA:     devis.TotalTVA,
			TotalTTC:     devis.TotalTTC,
			Conditions:   devis.Conditions,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := factureRepo.Create(facture, lignes); err != nil {
			return err
		}
		devis.Status = entity.DevisStatusConverti
		devis.FactureID = facture.ID
		devis.UpdatedAt = now
		return devisRepo.Update(devis)
	})
	if err != nil {
		return nil, err
	}
	return factureVersReponse(facture, lignes), nil
}

func copierLignes(in []entity.Ligne) []entity.Ligne {
	out := make([]entity.Ligne, 0, len(in))
	for _, l := range in {
		copie := l
		copie.ID = uuid.New().String()
		copie.SousLignes = copierLignes(l.SousLignes)
		out = append(out, copie)
	}
	return out
}
