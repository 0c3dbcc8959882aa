package nlp

import (
	"slices"
	"strings"
)

var (
	beForms  = []string{"be", "is", "are", "was", "were", "am", "been", "being", "'s", "'re", "'m"}
	auxForms = append([]string{"have", "has", "had", "having", "do", "does", "did"}, beForms...)
)

func isFinite(tag string) bool { return tag == "VBZ" || tag == "VBP" || tag == "VBD" || tag == "MD" }
func isVerbTag(tag string) bool {
	return strings.HasPrefix(tag, "VB") || tag == "MD"
}
func isNominal(pos string) bool { return pos == POSNoun || pos == POSPropn || pos == POSPron }

// LabelDependencies assigns a shallow dependency parse to a tagged sentence
// in place. It finds the main verb as ROOT, marks auxiliaries, attaches the
// nearest preceding noun phrase as subject, the noun phrase right after the
// root as direct object (attribute after a copula) and noun phrases after prepositions as their
// objects. A sentence whose only verb is a form of "be" has an AUX root.
func LabelDependencies(tokens []Token) {
	if len(tokens) == 0 {
		return
	}
	for i := range tokens {
		tokens[i].Head = -1
		tokens[i].Dep = ""
	}

	root := findRoot(tokens)
	tokens[root].Dep = DepRoot
	tokens[root].Head = root
	if slices.Contains(beForms, strings.ToLower(tokens[root].Text)) {
		tokens[root].POS = POSAux
	}

	passive := false
	for i := 0; i < root; i++ {
		if tokens[i].POS == POSAux {
			tokens[i].Dep = DepAux
			tokens[i].Head = root
			if tokens[root].Tag == "VBN" && slices.Contains(beForms, strings.ToLower(tokens[i].Text)) {
				tokens[i].Dep = DepAuxPass
				passive = true
			}
		}
	}

	chunks := NounChunks(tokens)
	headOf := func(s Span) int {
		for k := s.End - 1; k >= s.Start; k-- {
			if isNominal(tokens[k].POS) {
				return k
			}
		}
		return s.End - 1
	}
	for _, c := range chunks {
		h := headOf(c)
		for k := c.Start; k < c.End; k++ {
			if k == h || k == root {
				continue
			}
			tokens[k].Head = h
			switch tokens[k].POS {
			case POSDet:
				tokens[k].Dep = DepDet
			case POSAdj:
				tokens[k].Dep = DepAmod
			case POSNum:
				tokens[k].Dep = DepNummod
			default:
				tokens[k].Dep = DepCompound
			}
		}
	}

	// Subject: the last noun phrase before the root that is not the object
	// of a preposition.
	for k := len(chunks) - 1; k >= 0; k-- {
		c := chunks[k]
		if c.End > root {
			continue
		}
		if c.Start > 0 && tokens[c.Start-1].POS == POSAdp {
			continue
		}
		h := headOf(c)
		tokens[h].Head = root
		tokens[h].Dep = DepNsubj
		if passive {
			tokens[h].Dep = DepNsubjPass
		}
		break
	}

	// Direct object: a noun phrase starting right after the root, allowing
	// adverbs and particles in between. A wh-adverb or subordinator opens a
	// clause, so its noun phrase is not an object of the root.
	for _, c := range chunks {
		if c.Start <= root {
			continue
		}
		between := tokens[root+1 : c.Start]
		if !slices.ContainsFunc(between, opensClause) {
			h := headOf(c)
			tokens[h].Head = root
			tokens[h].Dep = DepDobj
			if tokens[root].POS == POSAux {
				tokens[h].Dep = DepAttr
			}
		}
		break
	}

	// Prepositions attach to the nearest preceding noun phrase head or the
	// root, and govern the noun phrase that follows them.
	for i, t := range tokens {
		if t.POS != POSAdp || i == root {
			continue
		}
		tokens[i].Dep = DepPrep
		tokens[i].Head = root
		if i > 0 && i-1 != root {
			if prev := chunkEndingAt(chunks, i); prev >= 0 {
				tokens[i].Head = headOf(chunks[prev])
			}
		}
		if next := chunkStartingAt(chunks, i+1); next >= 0 {
			h := headOf(chunks[next])
			if tokens[h].Dep == "" {
				tokens[h].Head = i
				tokens[h].Dep = DepPobj
			}
		}
	}

	for i := range tokens {
		if tokens[i].Dep != "" {
			continue
		}
		tokens[i].Head = root
		switch tokens[i].POS {
		case POSAux:
			tokens[i].Dep = DepAux
		case POSAdv:
			tokens[i].Dep = DepAdvmod
		case POSCconj:
			tokens[i].Dep = DepCC
		case POSPunct:
			tokens[i].Dep = DepPunct
		default:
			tokens[i].Dep = DepDep
		}
	}
}

// findRoot picks the main verb and marks the auxiliaries in front of it.
// The first finite verb decides: an auxiliary hands the role to the verb it
// supports. Without a finite verb any verb will do, then the first noun,
// then the first token.
func findRoot(tokens []Token) int {
	for i, t := range tokens {
		if !isFinite(t.Tag) {
			continue
		}
		if j := supportedVerb(tokens, i); j >= 0 {
			for k := i; k < j; k++ {
				if isVerbTag(tokens[k].Tag) {
					tokens[k].POS = POSAux
				}
			}
			return j
		}
		return i
	}
	for i, t := range tokens {
		if isVerbTag(t.Tag) {
			return i
		}
	}
	for i, t := range tokens {
		if isNominal(t.POS) {
			return i
		}
	}
	return 0
}

// supportedVerb returns the main verb that follows auxiliary i, skipping
// adverbs, "not" and further auxiliaries. It returns -1 when tokens[i] is
// not used as an auxiliary.
func supportedVerb(tokens []Token, i int) int {
	if tokens[i].Tag != "MD" && !slices.Contains(auxForms, strings.ToLower(tokens[i].Text)) {
		return -1
	}
	for j := i + 1; j < len(tokens); j++ {
		t := tokens[j]
		switch {
		case t.POS == POSAdv || t.POS == POSPart:
			continue
		case isVerbTag(t.Tag) && slices.Contains(auxForms, strings.ToLower(t.Text)):
			if k := supportedVerb(tokens, j); k >= 0 {
				return k
			}
			return j
		case isVerbTag(t.Tag):
			return j
		}
		return -1
	}
	return -1
}

// NounChunks returns the maximal runs of determiners, adjectives, numbers
// and nouns that end in a noun, proper noun or pronoun.
func NounChunks(tokens []Token) []Span {
	var out []Span
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		last := end - 1
		for last >= start && !isNominal(tokens[last].POS) {
			last--
		}
		if last >= start {
			texts := make([]string, 0, last-start+1)
			for k := start; k <= last; k++ {
				texts = append(texts, tokens[k].Text)
			}
			out = append(out, Span{Text: strings.Join(texts, " "), Start: start, End: last + 1})
		}
		start = -1
	}
	for i, t := range tokens {
		switch t.POS {
		case POSDet, POSAdj, POSNum, POSNoun, POSPropn:
			if start < 0 {
				start = i
			}
		case POSPron:
			flush(i)
			out = append(out, Span{Text: t.Text, Start: i, End: i + 1})
		default:
			flush(i)
		}
	}
	flush(len(tokens))
	return out
}

func chunkEndingAt(chunks []Span, end int) int {
	for k, c := range chunks {
		if c.End == end {
			return k
		}
	}
	return -1
}

func chunkStartingAt(chunks []Span, start int) int {
	for k, c := range chunks {
		if c.Start == start {
			return k
		}
	}
	return -1
}

// opensClause reports whether t ends the run of modifiers that may sit
// between a verb and its object.
func opensClause(t Token) bool {
	switch {
	case t.Tag == "WRB", t.Tag == "IN":
		return true
	case t.POS == POSAdv, t.POS == POSPart:
		return false
	}
	return true
}
