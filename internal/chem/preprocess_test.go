package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii arrow and coefficients", "2H2 + O2 -> 2H2O", "2 H2 + O2 → 2 H2O"},
		{"yields and tight plus", "CH4+2O2 yields CO2+2H2O", "CH4 + 2 O2 → CO2 + 2 H2O"},
		{"long arrow", "2Na + Cl2 ⟶ 2NaCl", "2 Na + Cl2 → 2 NaCl"},
		{"double dash arrow", "Zn+CuSO4-->ZnSO4+Cu", "Zn + CuSO4 → ZnSO4 + Cu"},
		{"formulas are untouched", "Cl2 and CO2 and H2O2 stay", "Cl2 and CO2 and H2O2 stay"},
		{"ocr digits", "It weighs 1O0 g and l5 kg", "It weighs 100 g and 15 kg"},
		{"words containing arrow words", "He forgives", "He forgives"},
		{"horizontal whitespace collapses", "a   b\t\tc\n\nd", "a b c\n\nd"},
		{"crlf", "line one\r\nline two", "line one\nline two"},
		{"nfc", "cafe\u0301", "caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.in))
		})
	}
}
