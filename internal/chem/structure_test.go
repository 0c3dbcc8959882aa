package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElectronDomains(t *testing.T) {
	info, err := ElectronDomains("NH3")
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.Equal(t, "H", info.CentralAtom)
	assert.Equal(t, []string{"N"}, info.SurroundingAtoms)
	assert.Empty(t, info.Geometry)

	info, err = ElectronDomains("NaCl")
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.Equal(t, "Na", info.CentralAtom, "ties keep the first symbol")

	_, err = ElectronDomains("Ca(OH")
	assert.ErrorIs(t, err, ErrParse)
}

func TestAnalyzeStructure(t *testing.T) {
	info, err := AnalyzeStructure("H2O")
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.False(t, info.Supported)
	assert.Equal(t, "H2O", info.Formula)
	assert.Empty(t, info.FunctionalGroups)

	_, err = AnalyzeStructure("(H2O")
	assert.ErrorIs(t, err, ErrParse)
}
