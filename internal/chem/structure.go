package chem

import (
	"fmt"
)

// ElectronDomainInfo describes the VSEPR electron domains of a molecule.
type ElectronDomainInfo struct {
	CentralAtom      string   `json:"central_atom"`
	SurroundingAtoms []string `json:"surrounding_atoms"`
	Geometry         string   `json:"geometry,omitempty"`
	BondAngle        float64  `json:"bond_angle,omitempty"`
	LonePairs        int      `json:"lone_pairs"`
}

// ElectronDomains picks the central atom of formula (the element with the
// highest count, earliest on ties) and lists the others.
//
// Geometry, bond angle and lone pairs are not computed yet. The returned
// info is always usable and the error is ErrNotSupported once the atoms are
// known, or ErrParse.
func ElectronDomains(formula string) (ElectronDomainInfo, error) {
	var info ElectronDomainInfo
	c, err := ParseFormula(formula)
	if err != nil {
		return info, err
	}
	if len(c) == 0 {
		return info, fmt.Errorf("%w: formula %q has no elements", ErrParse, formula)
	}

	order := symbolsInOrder(formula)
	for _, s := range order {
		if info.CentralAtom == "" || c[s] > c[info.CentralAtom] {
			info.CentralAtom = s
		}
	}
	for _, s := range order {
		if s != info.CentralAtom {
			info.SurroundingAtoms = append(info.SurroundingAtoms, s)
		}
	}
	return info, fmt.Errorf("%w: VSEPR geometry for %s", ErrNotSupported, formula)
}

// StructureInfo is the result of AnalyzeStructure.
type StructureInfo struct {
	Formula          string            `json:"formula"`
	Geometry         string            `json:"geometry,omitempty"`
	Hybridization    map[string]string `json:"hybridization"`
	BondTypes        []string          `json:"bond_types"`
	FunctionalGroups []string          `json:"functional_groups"`
	Chiral           bool              `json:"chiral"`
	Resonance        bool              `json:"resonance"`

	// Supported is false until structure analysis is implemented. Every
	// other field is then a zero placeholder.
	Supported bool `json:"supported"`
}

// AnalyzeStructure returns a placeholder for formula. It validates that the
// formula parses and otherwise reports ErrNotSupported.
func AnalyzeStructure(formula string) (StructureInfo, error) {
	info := StructureInfo{
		Formula:          formula,
		Hybridization:    map[string]string{},
		BondTypes:        []string{},
		FunctionalGroups: []string{},
	}
	if _, err := ParseFormula(formula); err != nil {
		return info, err
	}
	return info, fmt.Errorf("%w: structure analysis for %s", ErrNotSupported, formula)
}
