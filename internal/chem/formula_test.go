package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		formula string
		want    Composition
	}{
		{"H2O", Composition{"H": 2, "O": 1}},
		{"Ca(OH)2", Composition{"Ca": 1, "O": 2, "H": 2}},
		{"NaCl", Composition{"Na": 1, "Cl": 1}},
		{"C6H12O6", Composition{"C": 6, "H": 12, "O": 6}},
		{"Al2(SO4)3", Composition{"Al": 2, "S": 3, "O": 12}},
		{"K4(Fe(CN)6)", Composition{"K": 4, "Fe": 1, "C": 6, "N": 6}},
		{"CH3COOH", Composition{"C": 2, "H": 4, "O": 2}},
		{"2 H2O", Composition{"H": 2, "O": 1}},
		{"OH-", Composition{"O": 1, "H": 1}},
		{"", Composition{}},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got, err := ParseFormula(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormula_Unbalanced(t *testing.T) {
	for _, f := range []string{"Ca(OH", "CaOH)2", "((H2O)"} {
		_, err := ParseFormula(f)
		assert.ErrorIs(t, err, ErrParse, f)
	}
}

func TestParseFormula_CountOverflow(t *testing.T) {
	for _, f := range []string{
		"((H999999999)999999999)999999999",
		"(((H)999999999)999999999)999999999",
		"H9223372036854775807H",
	} {
		_, err := ParseFormula(f)
		assert.ErrorIs(t, err, ErrParse, f)
	}
}

func TestCompositionSymbols(t *testing.T) {
	c, err := ParseFormula("NaHCO3")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "H", "Na", "O"}, c.Symbols())
}
