package chem

import (
	"regexp"
	"slices"
	"strings"
)

// ReactionType is the coarse category of a chemical reaction.
type ReactionType string

const (
	Synthesis          ReactionType = "synthesis"
	Decomposition      ReactionType = "decomposition"
	SingleDisplacement ReactionType = "single_displacement"
	DoubleDisplacement ReactionType = "double_displacement"
	Combustion         ReactionType = "combustion"
	AcidBase           ReactionType = "acid_base"
	Redox              ReactionType = "redox"
	Unknown            ReactionType = "unknown"
)

// Title renders the type the way questions display it, e.g. "Acid Base".
func (t ReactionType) Title() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Shape heuristics. They carry no chemical validation: the salt shape
// matches any two adjacent capitalized symbols.
var (
	acidShape = regexp.MustCompile(`H[A-Z]`)
	baseShape = regexp.MustCompile(`OH-`)
	saltShape = regexp.MustCompile(`[A-Z][a-z]?[A-Z]`)
)

var combustionProducts = []string{"CO2", "H2O", "SO2", "NO2"}

// ClassifyReaction assigns a reaction type to equation.
//
// Only acid-base and combustion are detected. Redox, organic and
// displacement checks are placeholders that never fire, so everything else
// is Unknown. Equations that fail to parse are Unknown.
func ClassifyReaction(equation string) ReactionType {
	r, err := SplitReaction(equation)
	if err != nil {
		return Unknown
	}
	reactants := make([]string, len(r.Reactants))
	for i, t := range r.Reactants {
		reactants[i] = stripCoefficient(t)
	}
	products := make([]string, len(r.Products))
	for i, t := range r.Products {
		products[i] = stripCoefficient(t)
	}

	rc, err := compositions(reactants)
	if err != nil {
		return Unknown
	}
	pc, err := compositions(products)
	if err != nil {
		return Unknown
	}

	if changesOxidationState(rc, pc) {
		return Redox
	}
	if organicPattern(reactants, products) != "" {
		return Unknown
	}

	if anyMatch(acidShape, reactants) && anyMatch(baseShape, reactants) && anyMatch(saltShape, products) {
		return AcidBase
	}

	if slices.Contains(reactants, "O2") && allIn(products, combustionProducts) {
		return Combustion
	}

	if len(reactants) == 2 && len(products) == 2 && isDisplacement(rc, pc) {
		return SingleDisplacement
	}
	return Unknown
}

func compositions(terms []string) ([]Composition, error) {
	out := make([]Composition, len(terms))
	for i, t := range terms {
		c, err := ParseFormula(t)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// oxidationStates is not implemented and reports no states.
func oxidationStates(Composition) map[string]int { return nil }

func changesOxidationState(reactants, products []Composition) bool {
	for i := 0; i < min(len(reactants), len(products)); i++ {
		before, after := oxidationStates(reactants[i]), oxidationStates(products[i])
		for s, v := range before {
			if after[s] != v {
				return true
			}
		}
	}
	return false
}

// organicPattern names an addition, elimination or substitution reaction.
// Formulas carry no bond notation, so it never matches.
func organicPattern(reactants, products []string) string {
	return ""
}

// isDisplacement is not implemented.
func isDisplacement(reactants, products []Composition) bool { return false }

func anyMatch(re *regexp.Regexp, terms []string) bool {
	return slices.ContainsFunc(terms, re.MatchString)
}

func allIn(terms, set []string) bool {
	for _, t := range terms {
		if !slices.Contains(set, t) {
			return false
		}
	}
	return true
}
