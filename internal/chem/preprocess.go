package chem

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	arrowVariants = regexp.MustCompile(`-+>|⟶|⇒|\byields\b|\bgives\b`)
	arrowSpacing  = regexp.MustCompile(`[ \t]*→[ \t]*`)
	coefficient   = regexp.MustCompile(`\b(\d+)([A-Z(])`)
	plusBetween   = regexp.MustCompile(`([A-Za-z0-9)])[ \t]*\+[ \t]*(\d*[A-Z(])`)
	horizontalWS  = regexp.MustCompile(`[ \t\f\v]+`)
)

// Preprocess normalizes raw document text before extraction.
//
// Text is NFC-normalized and arrow variants ("->", "-->", "⟶", "yields",
// "gives") become "→". OCR slips inside numbers are repaired ("1l0" reads
// "100"). '+' between formula terms gets single spaces, leading
// coefficients are split from their formula ("2H2O" becomes "2 H2O") and
// the arrow is spaced, and runs of horizontal whitespace collapse. Newlines are
// kept so that each equation stays on its own line.
func Preprocess(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = arrowVariants.ReplaceAllString(text, Arrow)
	text = fixOCR(text)

	// Matches share their boundary characters, so repeat until stable.
	for range 8 {
		next := plusBetween.ReplaceAllString(text, "$1 + $2")
		if next == text {
			break
		}
		text = next
	}
	text = coefficient.ReplaceAllString(text, "$1 $2")
	text = arrowSpacing.ReplaceAllString(text, " "+Arrow+" ")
	return horizontalWS.ReplaceAllString(text, " ")
}

// fixOCR replaces 'l' and 'O' that sit inside a number. A number is a run
// of digits not preceded by a letter, so "1l0" and "1O0" both read "100"
// while "Cl2", "CO2" and "H2O2" are left alone. A lone 'l' that starts a
// number ("l5") also becomes '1'. Equation lines keep their 'O' because
// "2O2" there is a coefficient and a formula.
func fixOCR(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fixOCRLine(line, !strings.Contains(line, Arrow))
	}
	return strings.Join(lines, "\n")
}

func fixOCRLine(line string, fixO bool) string {
	b := []byte(line)
	for i := range b {
		if b[i] != 'l' && (b[i] != 'O' || !fixO) {
			continue
		}
		if i+1 >= len(b) || !isDigit(b[i+1]) {
			continue
		}
		start := i
		for start > 0 && isDigit(b[start-1]) {
			start--
		}
		if start > 0 && isLetter(b[start-1]) {
			continue
		}
		switch {
		case b[i] == 'l':
			b[i] = '1'
		case start < i:
			b[i] = '0'
		}
	}
	return string(b)
}

func isLetter(b byte) bool { return isUpper(b) || isLower(b) || b >= 0x80 }
