package chem

import (
	"regexp"
	"slices"
	"strings"
)

// ConceptType is a chemistry topic detected in text.
type ConceptType string

const (
	ConceptValency            ConceptType = "valency"
	ConceptAcidBase           ConceptType = "acid_base"
	ConceptRedox              ConceptType = "redox"
	ConceptBonding            ConceptType = "bonding"
	ConceptStoichiometry      ConceptType = "stoichiometry"
	ConceptEquilibrium        ConceptType = "equilibrium"
	ConceptOrganic            ConceptType = "organic"
	ConceptPeriodicTable      ConceptType = "periodic_table"
	ConceptStereochemistry    ConceptType = "stereochemistry"
	ConceptPharmacokinetics   ConceptType = "pharmacokinetics"
	ConceptDrugTarget         ConceptType = "drug_target"
	ConceptAnalytical         ConceptType = "analytical"
	ConceptBiochemistry       ConceptType = "biochemistry"
	ConceptPharmaceutics      ConceptType = "pharmaceutics"
	ConceptMedicinalChemistry ConceptType = "medicinal_chemistry"
)

// ElementMention is an element whose name or symbol occurs in text.
type ElementMention = Element

// CompoundMention is a compound whose name or formula occurs in text.
type CompoundMention = Compound

// ConceptMention is a concept pattern match.
type ConceptMention struct {
	Text string      `json:"text"`
	Type ConceptType `json:"type"`
}

// Content is everything Extract finds in a piece of text.
type Content struct {
	// Formulas are distinct, in order of first appearance.
	Formulas []string `json:"formulas"`

	// Equations are in document order.
	Equations []string `json:"equations"`

	ElementMentions  []ElementMention  `json:"element_mentions"`
	CompoundMentions []CompoundMention `json:"compound_mentions"`
	Concepts         []ConceptMention  `json:"concepts"`
}

// Merge appends other into c. Formulas and mentions stay distinct, while
// equations and concepts are concatenated.
func (c *Content) Merge(other Content) {
	for _, f := range other.Formulas {
		if !slices.Contains(c.Formulas, f) {
			c.Formulas = append(c.Formulas, f)
		}
	}
	c.Equations = append(c.Equations, other.Equations...)
	for _, m := range other.ElementMentions {
		if !slices.Contains(c.ElementMentions, m) {
			c.ElementMentions = append(c.ElementMentions, m)
		}
	}
	for _, m := range other.CompoundMentions {
		if !slices.Contains(c.CompoundMentions, m) {
			c.CompoundMentions = append(c.CompoundMentions, m)
		}
	}
	c.Concepts = append(c.Concepts, other.Concepts...)
}

var (
	// formulaShape is one or more element groups, each a symbol with an
	// optional count or a parenthesized run of symbols with a multiplier.
	formulaShape = regexp.MustCompile(`^(?:[A-Z][a-z]?\d*|\((?:[A-Z][a-z]?\d*)+\)\d*)+$`)

	equationTerm  = `\d*[ \t]?(?:[A-Z][a-z]?\d*|\((?:[A-Z][a-z]?\d*)+\)\d*)+-?`
	equationSide  = equationTerm + `(?:[ \t]*\+[ \t]*` + equationTerm + `)*`
	equationShape = regexp.MustCompile(equationSide + `[ \t]*→[ \t]*` + equationSide)

	spaceRun = regexp.MustCompile(`\s+`)
)

// equationSpan returns the equation-shaped part of an equation line, or the
// line itself when no span matches.
func equationSpan(line string) string {
	if span := equationShape.FindString(line); span != "" {
		return strings.TrimSpace(spaceRun.ReplaceAllString(span, " "))
	}
	return line
}

var conceptPatterns = []struct {
	re   *regexp.Regexp
	kind ConceptType
}{
	{regexp.MustCompile(`(?i)(?:valency|valence)\s+of\s+([A-Za-z]+)`), ConceptValency},
	{regexp.MustCompile(`(?i)(?:acid|base|pH|pOH|buffer)`), ConceptAcidBase},
	{regexp.MustCompile(`(?i)(?:oxidation|reduction|redox|electron\s+transfer)`), ConceptRedox},
	{regexp.MustCompile(`(?i)(?:bond|bonding|ionic|covalent|metallic)`), ConceptBonding},
	{regexp.MustCompile(`(?i)(?:mole|stoichiometry|mass)`), ConceptStoichiometry},
	{regexp.MustCompile(`(?i)(?:equilibrium|Le\s+Chatelier)`), ConceptEquilibrium},
	{regexp.MustCompile(`(?i)(?:organic|hydrocarbon|alkane|alkene|alkyne|aromatic)`), ConceptOrganic},
	{regexp.MustCompile(`(?i)(?:periodic\s+table|group|period|block)`), ConceptPeriodicTable},
	{regexp.MustCompile(`(?i)(?:stereochemistry|chirality|enantiomer|diastereomer)`), ConceptStereochemistry},
	{regexp.MustCompile(`(?i)(?:pharmacokinetics|absorption|distribution|metabolism|excretion|ADME)`), ConceptPharmacokinetics},
	{regexp.MustCompile(`(?i)(?:drug[\s-]target|receptor|binding|antagonist|agonist)`), ConceptDrugTarget},
	{regexp.MustCompile(`(?i)(?:spectroscopy|NMR|IR|UV-Vis|mass[\s-]spec)`), ConceptAnalytical},
	{regexp.MustCompile(`(?i)(?:enzyme|substrate|inhibition|active[\s-]site)`), ConceptBiochemistry},
	{regexp.MustCompile(`(?i)(?:drug[\s-]delivery|formulation|bioavailability|dosage)`), ConceptPharmaceutics},
	{regexp.MustCompile(`(?i)(?:structure-activity|SAR|lead[\s-]compound|drug[\s-]design)`), ConceptMedicinalChemistry},
}

// Extract scans preprocessed text for formulas, equations, element and
// compound mentions and concepts. Every line holding an arrow is an
// equation, kept whole with its whitespace collapsed.
//
// Mentions are plain case-sensitive substring tests of names and
// symbols, so "Na" also matches inside "Natural".
func Extract(text string) Content {
	var c Content

	for _, tok := range strings.Fields(text) {
		if f, ok := formulaToken(tok); ok && !slices.Contains(c.Formulas, f) {
			c.Formulas = append(c.Formulas, f)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, Arrow) {
			continue
		}
		c.Equations = append(c.Equations, strings.TrimSpace(spaceRun.ReplaceAllString(line, " ")))
	}

	for _, e := range Elements {
		if strings.Contains(text, e.Name) || strings.Contains(text, e.Symbol) {
			c.ElementMentions = append(c.ElementMentions, e)
		}
	}
	for _, k := range Compounds {
		if strings.Contains(text, k.Name) || strings.Contains(text, k.Formula) {
			c.CompoundMentions = append(c.CompoundMentions, k)
		}
	}

	for _, p := range conceptPatterns {
		for _, m := range p.re.FindAllString(text, -1) {
			c.Concepts = append(c.Concepts, ConceptMention{Text: m, Type: p.kind})
		}
	}
	return c
}

// formulaToken reports whether tok, with surrounding punctuation trimmed,
// is a chemical formula. Besides the shape test, every symbol must be a real
// element, the formula must contain one of the known elements, and it must
// carry a count, a group or at least two symbols. That keeps words such as
// "He", "No" or "NMR" out.
func formulaToken(tok string) (string, bool) {
	tok = strings.Trim(tok, ".,;:!?\"'[]{}")
	if strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") && strings.Count(tok, "(") == 1 {
		tok = tok[1 : len(tok)-1]
	}
	if !formulaShape.MatchString(tok) {
		tok = strings.Trim(tok, "()")
		if !formulaShape.MatchString(tok) {
			return "", false
		}
	}

	symbols := symbolPattern.FindAllString(tok, -1)
	known := false
	for _, s := range symbols {
		if !periodicSymbols[s] {
			return "", false
		}
		if _, ok := elementBySymbol[s]; ok {
			known = true
		}
	}
	if !known {
		return "", false
	}
	if len(symbols) < 2 && !strings.ContainsAny(tok, "0123456789(") {
		return "", false
	}
	return tok, true
}
