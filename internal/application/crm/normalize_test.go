package crm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/crm"
)

func TestNormaliser_AccentsEtCasse(t *testing.T) {
	assert.Equal(t, "sebastien", crm.Normaliser("Sébastien"))
	assert.Equal(t, "francois perrier", crm.Normaliser("  François PERRIER "))
	assert.Equal(t, "batiment & cie", crm.Normaliser("Bâtiment & Cie"))
}

func TestNormaliser_SansAccentInchangee(t *testing.T) {
	assert.Equal(t, "dupont", crm.Normaliser("dupont"))
	assert.Equal(t, "", crm.Normaliser(""))
}
