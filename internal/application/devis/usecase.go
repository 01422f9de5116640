// Package devis porte les cas d'usage des devis : création depuis des lignes
// explicites ou depuis une description libre analysée par le parseur du
// domaine, numérotation annuelle et cycle de statuts.
package devis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	devisdomain "github.com/madenm/BTPAPPMuss-sub002/internal/domain/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// Taux de TVA appliqué quand la demande n'en précise pas.
var tauxTVADefaut = decimal.NewFromInt(20)

// UseCase cas d'usage des devis.
type UseCase struct {
	repo         repository.DevisRepository
	clientRepo   repository.ClientRepository
	chantierRepo repository.ChantierRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	repo repository.DevisRepository,
	clientRepo repository.ClientRepository,
	chantierRepo repository.ChantierRepository,
) *UseCase {
	return &UseCase{repo: repo, clientRepo: clientRepo, chantierRepo: chantierRepo}
}

// ParseDescription analyse un texte libre et renvoie les lignes structurées,
// sans rien persister. Sert de prévisualisation avant création du devis.
func (uc *UseCase) ParseDescription(in dto.ParseDescriptionRequest) *dto.ParseDescriptionResponse {
	lignes := devisdomain.ParseDescription(in.Description)
	return &dto.ParseDescriptionResponse{Lignes: lignesVersReponse(lignes)}
}

// Create crée un devis en brouillon. Les lignes explicites de la demande sont
// prises d'abord ; si une description libre est fournie, les lignes que le
// parseur en extrait sont ajoutées à la suite. Au moins une ligne doit en
// résulter.
func (uc *UseCase) Create(companyID string, in dto.CreateDevisRequest) (*dto.DevisResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.ChantierID != "" {
		chantier, err := uc.chantierRepo.GetByID(in.ChantierID)
		if err != nil || chantier == nil {
			return nil, domain.ErrNotFound
		}
		if chantier.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	lignes := lignesDepuisRequete(in.Lignes)
	if in.Description != "" {
		lignes = append(lignes, devisdomain.ParseDescription(in.Description)...)
	}
	if len(lignes) == 0 {
		return nil, domain.ErrInvalidInput
	}

	taux := in.TauxTVA
	if taux.IsZero() {
		taux = tauxTVADefaut
	}
	if !tauxAdmis(taux) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	number, err := uc.prochainNumero(companyID, now)
	if err != nil {
		return nil, err
	}

	totalHT := entity.TotalLignes(lignes)
	totalTVA := totalHT.Mul(taux).Div(decimal.NewFromInt(100))
	devis := &entity.Devis{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ClientID:    in.ClientID,
		ChantierID:  in.ChantierID,
		Number:      number,
		Status:      entity.DevisStatusBrouillon,
		Description: in.Description,
		TauxTVA:     taux,
		TotalHT:     totalHT,
		TotalTVA:    totalTVA,
		TotalTTC:    totalHT.Add(totalTVA),
		Conditions:  in.Conditions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(devis, lignes); err != nil {
		return nil, err
	}
	return uc.toResponse(devis, lignes), nil
}

// GetByID récupère un devis de l'entreprise avec ses lignes.
func (uc *UseCase) GetByID(companyID, id string) (*dto.DevisResponse, error) {
	devis, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	lignes, err := uc.repo.GetLignesByDevisID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(devis, lignes), nil
}

// List liste les devis de l'entreprise (en-têtes seuls, sans lignes).
func (uc *UseCase) List(companyID string, page dto.PageRequest) ([]*dto.DevisResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DevisResponse, 0, len(list))
	for _, d := range list {
		out = append(out, uc.toResponse(d, nil))
	}
	return out, nil
}

// UpdateStatus change le statut d'un devis. Un devis déjà converti en facture
// est figé : toute modification renvoie ErrAlreadyConverted.
func (uc *UseCase) UpdateStatus(companyID, id string, in dto.UpdateDevisStatusRequest) (*dto.DevisResponse, error) {
	devis, err := uc.charger(companyID, id)
	if err != nil {
		return nil, err
	}
	if devis.Status == entity.DevisStatusConverti {
		return nil, domain.ErrAlreadyConverted
	}
	devis.Status = in.Status
	devis.UpdatedAt = time.Now()
	if err := uc.repo.Update(devis); err != nil {
		return nil, err
	}
	lignes, err := uc.repo.GetLignesByDevisID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(devis, lignes), nil
}

// charger récupère le devis et vérifie la propriété.
func (uc *UseCase) charger(companyID, id string) (*entity.Devis, error) {
	devis, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if devis == nil {
		return nil, domain.ErrNotFound
	}
	if devis.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return devis, nil
}

// prochainNumero attribue le numéro DEV-AAAA-NNNN, séquence par entreprise et
// par année civile.
func (uc *UseCase) prochainNumero(companyID string, now time.Time) (string, error) {
	count, err := uc.repo.CountByCompanyAndYear(companyID, now.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DEV-%d-%04d", now.Year(), count+1), nil
}

func (uc *UseCase) toResponse(d *entity.Devis, lignes []entity.Ligne) *dto.DevisResponse {
	return &dto.DevisResponse{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		ClientID:   d.ClientID,
		ChantierID: d.ChantierID,
		Number:     d.Number,
		Status:     d.Status,
		TauxTVA:    d.TauxTVA,
		TotalHT:    d.TotalHT,
		TotalTVA:   d.TotalTVA,
		TotalTTC:   d.TotalTTC,
		Conditions: d.Conditions,
		FactureID:  d.FactureID,
		Lignes:     lignesVersReponse(lignes),
		CreatedAt:  d.CreatedAt,
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

// lignesDepuisRequete convertit les lignes de la requête en lignes du domaine.
// L'arborescence est limitée à un niveau : les sous-lignes d'une sous-ligne
// sont ignorées.
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
