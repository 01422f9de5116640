package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

// Une feuille fait autorité sur son propre Total ; un groupe fait autorité sur
// la somme de ses sous-lignes et ignore ses Quantite/PrixUnitaire propres.

func TestLigne_MontantAffiche_Feuille(t *testing.T) {
	l := entity.Ligne{
		Quantite:     decimal.NewFromInt(3),
		PrixUnitaire: decimal.NewFromInt(50),
		Total:        decimal.NewFromInt(150),
	}

	assert.False(t, l.EstGroupe())
	assert.True(t, l.MontantAffiche().Equal(decimal.NewFromInt(150)))
}

func TestLigne_MontantAffiche_Groupe(t *testing.T) {
	l := entity.Ligne{
		Quantite:     decimal.NewFromInt(7),  // non autoritaire
		PrixUnitaire: decimal.NewFromInt(11), // non autoritaire
		Total:        decimal.NewFromInt(77),
		SousLignes: []entity.Ligne{
			{Total: decimal.NewFromInt(100)},
			{Total: decimal.NewFromInt(50)},
		},
	}

	assert.True(t, l.EstGroupe())
	assert.True(t, l.MontantAffiche().Equal(decimal.NewFromInt(150)),
		"le montant d'un groupe est la somme des sous-lignes, jamais quantité×prix")
}

func TestTotalLignes_MelangeFeuillesEtGroupes(t *testing.T) {
	lignes := []entity.Ligne{
		{Total: decimal.NewFromInt(200)},
		{SousLignes: []entity.Ligne{
			{Total: decimal.NewFromInt(100)},
			{Total: decimal.NewFromInt(50)},
		}},
	}

	assert.True(t, entity.TotalLignes(lignes).Equal(decimal.NewFromInt(350)))
}

func TestTotalLignes_Vide(t *testing.T) {
	assert.True(t, entity.TotalLignes(nil).Equal(decimal.Zero))
}
