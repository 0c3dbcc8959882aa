package general

import (
	"fmt"
	"slices"

	"github.com/abhisek/studyquiz/internal/nlp"
	"github.com/abhisek/studyquiz/internal/quiz"
)

const (
	DefaultDistractorMin = 0.3
	DefaultDistractorMax = 0.8

	maxSimilarDefinitions = 5
	numDistractors        = 3
	frequentWordCount     = 10
)

// distractors returns exactly three wrong options for a definition concept.
//
// Other definitions from the document whose TF-IDF cosine similarity to the
// correct definition lies strictly inside (min, max) are preferred, most
// similar first. Short lists are topped up with phrases assembled from the
// most frequent words of the context and finally padded with filler.
func (s *Synthesizer) distractors(c Concept, definitions []string) []string {
	var others []string
	for _, d := range definitions {
		if d != c.Definition && !slices.Contains(others, d) {
			others = append(others, d)
		}
	}

	var out []string
	if len(others) > 0 {
		sims, err := similarityToFirst(append([]string{c.Definition}, others...))
		if err != nil {
			s.log.Debug("tfidf similarity unavailable", "term", c.Term, "error", err)
		} else {
			type scored struct {
				text string
				sim  float64
			}
			var candidates []scored
			for i, sim := range sims {
				if sim > s.opts.DistractorMin && sim < s.opts.DistractorMax {
					candidates = append(candidates, scored{others[i], sim})
				}
			}
			slices.SortStableFunc(candidates, func(a, b scored) int {
				switch {
				case a.sim > b.sim:
					return -1
				case a.sim < b.sim:
					return 1
				}
				return 0
			})
			for _, cand := range candidates[:min(len(candidates), maxSimilarDefinitions)] {
				out = append(out, cand.text)
			}
		}
	}

	if len(out) < numDistractors {
		if words := frequentWords(c.contextTokens, frequentWordCount); len(words) > 0 {
			for range min(numDistractors, maxSimilarDefinitions-len(out)) {
				fake := fmt.Sprintf("a %s that %s the %s",
					quiz.Choice(s.rand, words), quiz.Choice(s.rand, words), quiz.Choice(s.rand, words))
				if fake != c.Definition {
					out = append(out, fake)
				}
			}
		}
	}

	out = uniqueStrings(out)
	if len(out) > numDistractors {
		out = out[:numDistractors]
	}
	for len(out) < numDistractors {
		out = append(out, "None of the above regarding "+c.Term)
	}
	return out
}

// frequentWords returns the k most frequent alphabetic non-stop-word tokens.
// Ties keep first-occurrence order.
func frequentWords(tokens []nlp.Token, k int) []string {
	counts := make(map[string]int)
	var order []string
	for _, t := range tokens {
		if t.IsStop || !t.IsAlpha {
			continue
		}
		if counts[t.Text] == 0 {
			order = append(order, t.Text)
		}
		counts[t.Text]++
	}
	slices.SortStableFunc(order, func(a, b string) int { return counts[b] - counts[a] })
	return order[:min(len(order), k)]
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
