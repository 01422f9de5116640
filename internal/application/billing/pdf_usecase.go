package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/repository"
)

// PDFUseCase génère la représentation PDF d'une facture ou d'un devis.
// L'entreprise et le client sont chargés en meilleure intention : leur absence
// ne bloque pas la génération, le document affiche des tirets à la place.
type PDFUseCase struct {
	factureRepo repository.FactureRepository
	devisRepo   repository.DevisRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	generator   DocumentPDFGenerator
}

// NewPDFUseCase construit le cas d'usage en injectant toutes ses dépendances.
func NewPDFUseCase(
	factureRepo repository.FactureRepository,
	devisRepo repository.DevisRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	generator DocumentPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		factureRepo: factureRepo,
		devisRepo:   devisRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		generator:   generator,
	}
}

// DownloadFacturePDF charge la facture, son émetteur, son client et ses lignes
// puis génère le document.
//
// Retourne :
//   - (pdfBytes, filename, nil) si tout se passe bien.
//   - domain.ErrNotFound        si la facture n'existe pas.
//   - domain.ErrForbidden       si la facture n'appartient pas à l'entreprise du token.
func (uc *PDFUseCase) DownloadFacturePDF(
	ctx context.Context,
	companyID, factureID string,
) (pdfBytes []byte, filename string, err error) {
	facture, err := uc.factureRepo.GetByID(factureID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger facture: %w", err)
	}
	if facture == nil {
		return nil, "", domain.ErrNotFound
	}
	if facture.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	lignes, err := uc.factureRepo.GetLignesByFactureID(factureID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger lignes: %w", err)
	}

	company, client := uc.chargerIdentites(companyID, facture.ClientID)
	pdfBytes, err = uc.generator.GenerateFacturePDF(ctx, facture, company, client, lignes)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération: %w", err)
	}
	return pdfBytes, nomDeFichier("facture", facture.Number), nil
}

// DownloadDevisPDF même flux pour un devis.
func (uc *PDFUseCase) DownloadDevisPDF(
	ctx context.Context,
	companyID, devisID string,
) (pdfBytes []byte, filename string, err error) {
	devis, err := uc.devisRepo.GetByID(devisID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger devis: %w", err)
	}
	if devis == nil {
		return nil, "", domain.ErrNotFound
	}
	if devis.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	lignes, err := uc.devisRepo.GetLignesByDevisID(devisID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger lignes: %w", err)
	}

	company, client := uc.chargerIdentites(companyID, devis.ClientID)
	pdfBytes, err = uc.generator.GenerateDevisPDF(ctx, devis, company, client, lignes)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération: %w", err)
	}
	return pdfBytes, nomDeFichier("devis", devis.Number), nil
}

// chargerIdentites récupère émetteur et client sans faire échouer la
// génération : nil est accepté par le générateur (tirets sur le document).
func (uc *PDFUseCase) chargerIdentites(companyID, clientID string) (*entity.Company, *entity.Client) {
	company, _ := uc.companyRepo.GetByID(companyID)
	var client *entity.Client
	if clientID != "" {
		client, _ = uc.clientRepo.GetByID(clientID)
	}
	return company, client
}

// nomDeFichier compose "facture_FAC-2026-0001.pdf" en neutralisant les
// caractères hasardeux d'un numéro.
func nomDeFichier(prefixe, number string) string {
	propre := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, number)
	return fmt.Sprintf("%s_%s.pdf", prefixe, propre)
}
