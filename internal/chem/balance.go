package chem

import (
	"fmt"
	"maps"
	"math/big"
	"regexp"
	"slices"
	"strings"
)

// Arrow is the canonical reaction arrow produced by Preprocess.
const Arrow = "→"

var (
	leadingCoefficient = regexp.MustCompile(`^\d+\s*`)
	coefficientPrefix  = regexp.MustCompile(`^\d+\s*[A-Z]`)
)

// Reaction is an equation split into its reactant and product terms.
// Terms keep any leading coefficient as written.
type Reaction struct {
	Reactants []string
	Products  []string
}

// SplitReaction splits an equation on the arrow and each side on '+'.
func SplitReaction(equation string) (Reaction, error) {
	sides := strings.Split(equation, Arrow)
	if len(sides) != 2 {
		return Reaction{}, fmt.Errorf("%w: equation %q needs exactly one arrow", ErrParse, equation)
	}
	r := Reaction{Reactants: splitTerms(sides[0]), Products: splitTerms(sides[1])}
	if len(r.Reactants) == 0 || len(r.Products) == 0 {
		return Reaction{}, fmt.Errorf("%w: equation %q has an empty side", ErrParse, equation)
	}
	return r, nil
}

func splitTerms(side string) []string {
	var out []string
	for _, t := range strings.Split(side, "+") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// stripCoefficient removes a leading stoichiometric coefficient.
func stripCoefficient(term string) string {
	return leadingCoefficient.ReplaceAllString(term, "")
}

// BalanceEquation returns equation with integer coefficients that balance
// every element. Any failure returns the input unchanged.
func BalanceEquation(equation string) string {
	balanced, err := Balance(equation)
	if err != nil {
		return equation
	}
	return balanced
}

// Balance solves the element-conservation system of equation. Existing
// coefficients are ignored, so balancing a balanced equation is a no-op.
//
// Each element contributes one row, reactant columns count positively and
// product columns negatively. The first vector of the exact rational null
// space is scaled to the smallest positive integer vector. Coefficients of
// 1 are omitted.
func Balance(equation string) (string, error) {
	r, err := SplitReaction(equation)
	if err != nil {
		return "", err
	}

	terms := make([]string, 0, len(r.Reactants)+len(r.Products))
	for _, t := range r.Reactants {
		terms = append(terms, stripCoefficient(t))
	}
	for _, t := range r.Products {
		terms = append(terms, stripCoefficient(t))
	}

	comps := make([]Composition, len(terms))
	elements := make(map[string]bool)
	for i, t := range terms {
		c, err := ParseFormula(t)
		if err != nil {
			return "", err
		}
		if len(c) == 0 {
			return "", fmt.Errorf("%w: term %q has no elements", ErrParse, t)
		}
		comps[i] = c
		for s := range c {
			elements[s] = true
		}
	}

	matrix := make([][]*big.Rat, 0, len(elements))
	for _, s := range slices.Sorted(maps.Keys(elements)) {
		row := make([]*big.Rat, len(terms))
		for j, c := range comps {
			v := int64(c[s])
			if j >= len(r.Reactants) {
				v = -v
			}
			row[j] = big.NewRat(v, 1)
		}
		matrix = append(matrix, row)
	}

	vec, err := nullVector(matrix, len(terms))
	if err != nil {
		return "", fmt.Errorf("equation %q: %w", equation, err)
	}
	coeffs, err := integerCoefficients(vec)
	if err != nil {
		return "", fmt.Errorf("equation %q: %w", equation, err)
	}

	format := func(offset int, side []string) string {
		parts := make([]string, len(side))
		for i := range side {
			term := terms[offset+i]
			if c := coeffs[offset+i]; c.Cmp(big.NewInt(1)) != 0 {
				term = c.String() + " " + term
			}
			parts[i] = term
		}
		return strings.Join(parts, " + ")
	}
	return format(0, r.Reactants) + " " + Arrow + " " + format(len(r.Reactants), r.Products), nil
}

// nullVector reduces m to row echelon form and returns the null-space basis
// vector obtained by setting the first free variable to 1.
func nullVector(m [][]*big.Rat, cols int) ([]*big.Rat, error) {
	pivotCols := make([]int, 0, len(m))
	row := 0
	for col := 0; col < cols && row < len(m); col++ {
		pivot := -1
		for i := row; i < len(m); i++ {
			if m[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[row], m[pivot] = m[pivot], m[row]

		inv := new(big.Rat).Inv(m[row][col])
		for j := col; j < cols; j++ {
			m[row][j] = new(big.Rat).Mul(m[row][j], inv)
		}
		for i := range m {
			if i == row || m[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(m[i][col])
			for j := col; j < cols; j++ {
				m[i][j] = new(big.Rat).Sub(m[i][j], new(big.Rat).Mul(factor, m[row][j]))
			}
		}
		pivotCols = append(pivotCols, col)
		row++
	}

	isPivot := make([]bool, cols)
	for _, c := range pivotCols {
		isPivot[c] = true
	}
	free := -1
	for c := 0; c < cols; c++ {
		if !isPivot[c] {
			free = c
			break
		}
	}
	if free < 0 {
		return nil, fmt.Errorf("%w: null space is empty", ErrAlgebra)
	}

	vec := make([]*big.Rat, cols)
	for c := range vec {
		vec[c] = new(big.Rat)
	}
	vec[free].SetInt64(1)
	for r, c := range pivotCols {
		vec[c] = new(big.Rat).Neg(m[r][free])
	}
	return vec, nil
}

// integerCoefficients scales vec by the LCM of its denominators, divides by
// the GCD and fixes the sign. Every coefficient must end up positive.
func integerCoefficients(vec []*big.Rat) ([]*big.Int, error) {
	lcm := big.NewInt(1)
	for _, v := range vec {
		d := v.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}

	out := make([]*big.Int, len(vec))
	gcd := new(big.Int)
	for i, v := range vec {
		n := new(big.Int).Mul(v.Num(), new(big.Int).Quo(lcm, v.Denom()))
		out[i] = n
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(n))
	}
	if gcd.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero null vector", ErrAlgebra)
	}

	negate := out[0].Sign() < 0
	for _, n := range out {
		n.Quo(n, gcd)
		if negate {
			n.Neg(n)
		}
		if n.Sign() <= 0 {
			return nil, fmt.Errorf("%w: non-positive coefficient %s", ErrAlgebra, n)
		}
	}
	return out, nil
}

// hasLeadingCoefficient reports whether equation starts with an integer
// coefficient, e.g. "2 H2 + O2 → 2 H2O".
func hasLeadingCoefficient(equation string) bool {
	return coefficientPrefix.MatchString(equation)
}
