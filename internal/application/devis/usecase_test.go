package devis_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdevis "github.com/madenm/BTPAPPMuss-sub002/internal/application/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID      = "company-1"
	autreCompanyID = "company-2"
	clientID       = "client-1"
)

type fakeDevisRepo struct {
	devis  map[string]*entity.Devis
	lignes map[string][]entity.Ligne
}

func newFakeDevisRepo() *fakeDevisRepo {
	return &fakeDevisRepo{
		devis:  map[string]*entity.Devis{},
		lignes: map[string][]entity.Ligne{},
	}
}

func (r *fakeDevisRepo) Create(d *entity.Devis, lignes []entity.Ligne) error {
	copie := *d
	r.devis[d.ID] = &copie
	r.lignes[d.ID] = lignes
	return nil
}

func (r *fakeDevisRepo) GetByID(id string) (*entity.Devis, error) {
	d, ok := r.devis[id]
	if !ok {
		return nil, nil
	}
	copie := *d
	return &copie, nil
}

func (r *fakeDevisRepo) GetLignesByDevisID(devisID string) ([]entity.Ligne, error) {
	return r.lignes[devisID], nil
}

func (r *fakeDevisRepo) ListByCompany(cid string, limit, offset int) ([]*entity.Devis, error) {
	var out []*entity.Devis
	for _, d := range r.devis {
		if d.CompanyID == cid {
			copie := *d
			out = append(out, &copie)
		}
	}
	return out, nil
}

func (r *fakeDevisRepo) Update(d *entity.Devis) error {
	copie := *d
	r.devis[d.ID] = &copie
	return nil
}

func (r *fakeDevisRepo) CountByCompanyAndYear(cid string, annee int) (int, error) {
	n := 0
	for _, d := range r.devis {
		if d.CompanyID == cid && d.CreatedAt.Year() == annee {
			n++
		}
	}
	return n, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error          { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeClientRepo) ListByCompany(cid string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) ListByCompanyAndStatus(cid, status string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(id string) error        { return nil }

type fakeChantierRepo struct{}

func (r *fakeChantierRepo) Create(c *entity.Chantier) error             { return nil }
func (r *fakeChantierRepo) GetByID(id string) (*entity.Chantier, error) { return nil, nil }
func (r *fakeChantierRepo) ListByCompany(cid string, limit, offset int) ([]*entity.Chantier, error) {
	return nil, nil
}
func (r *fakeChantierRepo) ListByClient(clientID string) ([]*entity.Chantier, error) {
	return nil, nil
}
func (r *fakeChantierRepo) Update(c *entity.Chantier) error { return nil }
func (r *fakeChantierRepo) Delete(id string) error          { return nil }

func buildUseCase() (*appdevis.UseCase, *fakeDevisRepo) {
	devisRepo := newFakeDevisRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		clientID: {ID: clientID, CompanyID: companyID, Name: "M. Dupont"},
	}}
	return appdevis.NewUseCase(devisRepo, clientRepo, &fakeChantierRepo{}), devisRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Création depuis une description libre
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DepuisDescriptionLibre(t *testing.T) {
	uc, _ := buildUseCase()

	resp, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID:    clientID,
		Description: "25 m2 de carrelage : 45€, peinture du séjour : 1200€",
	})
	require.NoError(t, err, "une description analysable doit produire un devis")
	require.NotNil(t, resp)

	assert.Equal(t, entity.DevisStatusBrouillon, resp.Status, "un devis naît en brouillon")
	assert.Len(t, resp.Lignes, 2, "le parseur doit extraire deux lignes de la description")

	// Ligne 1 : 25 × 45 = 1125 ; ligne 2 : 1200 (quantité 1 implicite)
	assert.True(t, resp.Lignes[0].Total.Equal(decimal.NewFromInt(1125)),
		"total de la première ligne : attendu 1125, obtenu %s", resp.Lignes[0].Total)
	assert.True(t, resp.Lignes[1].Total.Equal(decimal.NewFromInt(1200)))

	// Totaux : HT = 2325, TVA 20 % = 465, TTC = 2790
	assert.True(t, resp.TotalHT.Equal(decimal.NewFromInt(2325)), "total HT : obtenu %s", resp.TotalHT)
	assert.True(t, resp.TotalTVA.Equal(decimal.NewFromInt(465)), "TVA 20%% par défaut : obtenu %s", resp.TotalTVA)
	assert.True(t, resp.TotalTTC.Equal(decimal.NewFromInt(2790)), "total TTC : obtenu %s", resp.TotalTTC)
}

func TestCreate_LignesExplicitesEtDescription(t *testing.T) {
	uc, _ := buildUseCase()

	resp, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID: clientID,
		Lignes: []dto.LigneRequest{
			{Description: "Main d'œuvre", Quantite: decimal.NewFromInt(8), PrixUnitaire: decimal.NewFromInt(50), Unite: "h"},
		},
		Description: "Fourniture peinture 300 euros",
	})
	require.NoError(t, err)

	// Les lignes explicites viennent d'abord, puis celles extraites du texte.
	require.Len(t, resp.Lignes, 2)
	assert.Equal(t, "Main d'œuvre", resp.Lignes[0].Description)
	assert.True(t, resp.Lignes[0].Total.Equal(decimal.NewFromInt(400)))
	assert.True(t, resp.Lignes[1].Total.Equal(decimal.NewFromInt(300)))
}

func TestCreate_SansAucuneLigne_Refuse(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(companyID, dto.CreateDevisRequest{ClientID: clientID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un devis sans ligne ni description doit être refusé")
}

func TestCreate_ClientDUneAutreEntreprise_Refuse(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(autreCompanyID, dto.CreateDevisRequest{
		ClientID:    clientID,
		Description: "Peinture 500 euros",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"le client appartient à une autre entreprise")
}

func TestCreate_TauxTVAInconnu_Refuse(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID:    clientID,
		Description: "Peinture 500 euros",
		TauxTVA:     decimal.NewFromFloat(19.6), // taux historique, plus admis
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TauxReduit(t *testing.T) {
	uc, _ := buildUseCase()

	resp, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID:    clientID,
		Description: "Rénovation énergétique 1000 euros",
		TauxTVA:     decimal.NewFromFloat(5.5),
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalTVA.Equal(decimal.NewFromInt(55)),
		"TVA à 5.5%% sur 1000 : obtenu %s", resp.TotalTVA)
}

// ──────────────────────────────────────────────────────────────────────────────
// Numérotation annuelle
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NumerotationSequentielleParAnnee(t *testing.T) {
	uc, _ := buildUseCase()

	premier, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID: clientID, Description: "Peinture 500 euros",
	})
	require.NoError(t, err)
	second, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID: clientID, Description: "Carrelage 800 euros",
	})
	require.NoError(t, err)

	annee := premier.CreatedAt.Year()
	assert.Equal(t, formatNumero(annee, 1), premier.Number)
	assert.Equal(t, formatNumero(annee, 2), second.Number)
}

func formatNumero(annee, seq int) string {
	return fmt.Sprintf("DEV-%d-%04d", annee, seq)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cycle de statuts
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_DevisConverti_EstFige(t *testing.T) {
	uc, repo := buildUseCase()

	resp, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID: clientID, Description: "Peinture 500 euros",
	})
	require.NoError(t, err)

	// Conversion simulée directement dans le repo.
	devis, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	devis.Status = entity.DevisStatusConverti
	require.NoError(t, repo.Update(devis))

	_, err = uc.UpdateStatus(companyID, resp.ID, dto.UpdateDevisStatusRequest{
		Status: entity.DevisStatusRefuse,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyConverted,
		"un devis converti en facture ne doit plus changer de statut")
}

func TestUpdateStatus_Acceptation(t *testing.T) {
	uc, _ := buildUseCase()

	resp, err := uc.Create(companyID, dto.CreateDevisRequest{
		ClientID: clientID, Description: "Peinture 500 euros",
	})
	require.NoError(t, err)

	maj, err := uc.UpdateStatus(companyID, resp.ID, dto.UpdateDevisStatusRequest{
		Status: entity.DevisStatusAccepte,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DevisStatusAccepte, maj.Status)
	assert.Len(t, maj.Lignes, 1, "les lignes doivent être renvoyées avec le devis mis à jour")
}
