// Package billing porte les cas d'usage de facturation : création directe de
// factures, conversion d'un devis accepté et génération des documents PDF.
package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// Taux de TVA appliqué quand la demande n'en précise pas.
var tauxTVADefaut = decimal.NewFromInt(20)

// FactureUseCase cas d'usage des factures.
type FactureUseCase struct {
	repo       repository.FactureRepository
	clientRepo repository.ClientRepository
}

// NewFactureUseCase construit le cas d'usage.
func NewFactureUseCase(repo repository.FactureRepository, clientRepo repository.ClientRepository) *FactureUseCase {
	return &FactureUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crée une facture directe (sans devis d'origine), numérotée
// FAC-AAAA-NNNN, en brouillon.
func (uc *FactureUseCase) Create(companyID string, in dto.CreateFactureRequest) (*dto.FactureResponse, error) {
	if len(in.Lignes) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	taux := in.TauxTVA
	if taux.IsZero() {
		taux = tauxTVADefaut
	}
	if !tauxAdmis(taux) {
		return nil, domain.ErrInvalidInput
	}

	lignes := lignesDepuisRequete(in.Lignes)
	now := time.Now()
	number, err := ProchainNumeroFacture(uc.repo, companyID, now)
	if err != nil {
		return nil, err
	}

	totalHT := entity.TotalLignes(lignes)
	totalTVA := totalHT.Mul(taux).Div(decimal.NewFromInt(100))
	facture := &entity.Facture{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ClientID:     in.ClientID,
		Number:       number,
		Status:       entity.FactureStatusBrouillon,
		DateEmission: now,
		DateEcheance: in.DateEcheance,
		TauxTVA:      taux,
		TotalHT:      totalHT,
		TotalTVA:     totalTVA,
		TotalTTC:     totalHT.Add(totalTVA),
		Conditions:   in.Conditions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(facture, lignes); err != nil {
		return nil, err
	}
	return factureVersReponse(facture, lignes), nil
}

// GetByID récupère une facture de l'entreprise avec ses lignes.
func (uc *FactureUseCase) GetByID(companyID, id string) (*dto.FactureResponse, error) {
	facture, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	lignes, err := uc.repo.GetLignesByFactureID(id)
	if err != nil {
		return nil, err
	}
	return factureVersReponse(facture, lignes), nil
}

// List liste les factures de l'entreprise (en-têtes seuls, sans lignes).
func (uc *FactureUseCase) List(companyID string, page dto.PageRequest) ([]*dto.FactureResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FactureResponse, 0, len(list))
	for _, f := range list {
		out = append(out, factureVersReponse(f, nil))
	}
	return out, nil
}

// UpdateStatus change le statut d'une facture (envoi, paiement, retard).
func (uc *FactureUseCase) UpdateStatus(companyID, id string, in dto.UpdateFactureStatusRequest) (*dto.FactureResponse, error) {
	facture, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	facture.Status = in.Status
	facture.UpdatedAt = time.Now()
	if err := uc.repo.Update(facture); err != nil {
		return nil, err
	}
	lignes, err := uc.repo.GetLignesByFactureID(id)
	if err != nil {
		return nil, err
	}
	return factureVersReponse(facture, lignes), nil
}

// charger récupère la facture et vérifie la propriété.
func (uc *FactureUseCase) charger(companyID, id string) (*entity.Facture, error) {
	facture, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if facture == nil {
		return nil, domain.ErrNotFound
	}
	if facture.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return facture, nil
}

// ProchainNumeroFacture attribue le numéro FAC-AAAA-NNNN, séquence par
// entreprise et par année civile. Exporté car la conversion d'un devis numérote
// sa facture avec la même séquence.
func ProchainNumeroFacture(repo repository.FactureRepository, companyID string, now time.Time) (string, error) {
	count, err := repo.CountByCompanyAndYear(companyID, now.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("FAC-%d-%04d", now.Year(), count+1), nil
}

func factureVersReponse(f *entity.Facture, lignes []entity.Ligne) *dto.FactureResponse {
	return &dto.FactureResponse{
		ID:           f.ID,
		CompanyID:    f.CompanyID,
		ClientID:     f.ClientID,
		DevisID:      f.DevisID,
		Number:       f.Number,
		Status:       f.Status,
		DateEmission: f.DateEmission,
		DateEcheance: f.DateEcheance,
		TauxTVA:      f.TauxTVA,
		TotalHT:      f.TotalHT,
		TotalTVA:     f.TotalTVA,
		TotalTTC:     f.TotalTTC,
		Conditions:   f.Conditions,
		Lignes:       lignesVersReponse(lignes),
		CreatedAt:    f.CreatedAt,
	}
}

// tauxAdmis vérifie que le taux fait partie des taux de TVA travaux admis.
func tauxAdmis(taux decimal.Decimal) bool {
	for _, admis := range entity.TauxTVAAdmis {
		d, err := decimal.NewFromString(admis)
		if err == nil && d.Equal(taux) {
			return true
		}
	}
	return false
}

// lignesDepuisRequete convertit les lignes de la requête en lignes du domaine
// (arborescence limitée à un niveau).
func lignesDepuisRequete(in []dto.LigneRequest) []entity.Ligne {
	lignes := make([]entity.Ligne, 0, len(in))
	for _, lr := range in {
		ligne := entity.Ligne{
			ID:           uuid.New().String(),
			Description:  lr.Description,
			Quantite:     lr.Quantite,
			PrixUnitaire: lr.PrixUnitaire,
			Total:        lr.Quantite.Mul(lr.PrixUnitaire),
			Unite:        lr.Unite,
		}
		for _, sl := range lr.SousLignes {
			ligne.SousLignes = append(ligne.SousLignes, entity.Ligne{
				ID:           uuid.New().String(),
				Description:  sl.Description,
				Quantite:     sl.Quantite,
				PrixUnitaire: sl.PrixUnitaire,
				Total:        sl.Quantite.Mul(sl.PrixUnitaire),
				Unite:        sl.Unite,
			})
		}
		lignes = append(lignes, ligne)
	}
	return lignes
}

func lignesVersReponse(lignes []entity.Ligne) []dto.LigneResponse {
	out := make([]dto.LigneResponse, 0, len(lignes))
	for _, l := range lignes {
		out = append(out, dto.LigneResponse{
			ID:           l.ID,
			Description:  l.Description,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
			Total:        l.MontantAffiche(),
			Unite:        l.Unite,
			SousLignes:   lignesVersReponse(l.SousLignes),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
