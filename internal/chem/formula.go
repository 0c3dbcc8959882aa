// Package chem implements the chemistry quiz pipeline: text preprocessing,
// content extraction, formula algebra (parsing, balancing, classification)
// and question synthesis.
package chem

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
)

// Composition maps an element symbol to its atom count.
type Composition map[string]int

// Symbols returns the element symbols in sorted order.
func (c Composition) Symbols() []string {
	out := make([]string, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// ParseFormula expands a formula such as "Ca(OH)2" into atom counts.
//
// Parenthesized groups multiply their contents by the digits that follow the
// closing parenthesis and may nest. A symbol is an upper-case letter with an
// optional lower-case letter, followed by an optional count. Any other
// character is skipped. Unbalanced parentheses return ErrParse.
func ParseFormula(formula string) (Composition, error) {
	c := make(Composition)
	if err := parseGroup(c, formula, 1); err != nil {
		return nil, fmt.Errorf("%w: formula %q: %v", ErrParse, formula, err)
	}
	return c, nil
}

func parseGroup(c Composition, s string, multiplier int) error {
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '(':
			depth, j := 1, i+1
			for ; j < len(s) && depth > 0; j++ {
				switch s[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
			}
			if depth != 0 {
				return fmt.Errorf("unmatched '(' at offset %d", i)
			}
			n, k, err := readCount(s, j)
			if err != nil {
				return err
			}
			scaled, ok := mulCount(multiplier, n)
			if !ok {
				return fmt.Errorf("group multiplier overflows at offset %d", i)
			}
			if err := parseGroup(c, s[i+1:j-1], scaled); err != nil {
				return err
			}
			i = k
		case ch == ')':
			return fmt.Errorf("unmatched ')' at offset %d", i)
		case isUpper(ch):
			end := i + 1
			if end < len(s) && isLower(s[end]) {
				end++
			}
			symbol := s[i:end]
			n, k, err := readCount(s, end)
			if err != nil {
				return err
			}
			atoms, ok := mulCount(n, multiplier)
			if !ok || c[symbol] > math.MaxInt-atoms {
				return fmt.Errorf("count of %s overflows at offset %d", symbol, i)
			}
			c[symbol] += atoms
			i = k
		default:
			i++
		}
	}
	return nil
}

// mulCount multiplies two non-negative counts, reporting false on overflow.
func mulCount(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// readCount reads the digits starting at s[i]. It returns 1 when there are
// none, plus the offset just past the digits.
func readCount(s string, i int) (int, int, error) {
	k := i
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == i {
		return 1, k, nil
	}
	n, err := strconv.Atoi(s[i:k])
	if err != nil {
		return 0, k, fmt.Errorf("count %q: %w", s[i:k], err)
	}
	return n, k, nil
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

var symbolPattern = regexp.MustCompile(`[A-Z][a-z]?`)

// symbolsInOrder lists distinct symbols in order of first appearance.
func symbolsInOrder(formula string) []string {
	var out []string
	for _, s := range symbolPattern.FindAllString(formula, -1) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
