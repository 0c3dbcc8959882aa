package quiz

import (
	"slices"
	"strings"
)

// DefaultSimilarityThreshold is the aligned-character similarity above which
// two question prompts count as duplicates.
const DefaultSimilarityThreshold = 0.75

// Score assigns an additive quality score to every question and returns them
// sorted by score, highest first. Ties keep their input order.
//
//	+2 answer has 2-15 whitespace tokens (else +1 if non-empty)
//	+1 context longer than 50 characters
//	+1 multiple_choice or cloze
//	+1 multiple_choice with at least 4 options
func Score(questions []Question) []Question {
	out := make([]Question, len(questions))
	copy(out, questions)

	for i := range out {
		q := &out[i]
		score := 0

		n := len(strings.Fields(q.Answer.String()))
		switch {
		case n >= 2 && n <= 15:
			score += 2
		case n > 0:
			score++
		}

		if len(q.Context) > 50 {
			score++
		}
		if q.Type == TypeMultipleChoice || q.Type == TypeCloze {
			score++
		}
		if q.Type == TypeMultipleChoice && len(q.Options) >= 4 {
			score++
		}

		s := score
		q.QualityScore = &s
	}

	slices.SortStableFunc(out, func(a, b Question) int {
		return scoreOf(b) - scoreOf(a)
	})
	return out
}

func scoreOf(q Question) int {
	if q.QualityScore == nil {
		return 0
	}
	return *q.QualityScore
}

// TextSimilarity is the number of equal characters at aligned positions
// divided by the longer length. Empty inputs have similarity 0.
func TextSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < min(len(ra), len(rb)); i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}
	return float64(matches) / float64(longest)
}

// Dedup drops every question whose lower-cased prompt is more similar than
// threshold to a prompt already kept. The first occurrence wins.
func Dedup(questions []Question, threshold float64) []Question {
	var kept []Question
	var texts []string

	for _, q := range questions {
		text := strings.ToLower(q.Prompt)
		duplicate := false
		for _, existing := range texts {
			if TextSimilarity(text, existing) > threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, q)
		texts = append(texts, text)
	}
	return kept
}

// Order ranks the leftover pool during the fill pass of Diversify.
// It returns a negative number when a should come before b.
type Order func(a, b Question) int

// ByScoreDesc fills remaining slots with the highest-scoring questions.
func ByScoreDesc(a, b Question) int { return scoreOf(b) - scoreOf(a) }

// ByDifficultyDesc fills remaining slots with the hardest questions.
func ByDifficultyDesc(a, b Question) int { return b.Difficulty.Rank() - a.Difficulty.Rank() }

// Diversify selects at most n questions, balancing question types.
//
// The first pass walks questions in input order and admits each one while
// its type holds fewer than max(3, len(questions)/types) selections, so the
// best-ranked items of every type come first. The second pass fills the
// remaining slots from the leftover pool sorted by order. A question (by ID)
// and a prompt are never emitted twice.
func Diversify(questions []Question, n int, order Order) []Question {
	if n <= 0 || len(questions) == 0 {
		return nil
	}

	types := make(map[Type]bool)
	for _, q := range questions {
		types[q.Type] = true
	}
	quota := max(3, len(questions)/len(types))

	selected := make([]Question, 0, n)
	usedIDs := make(map[string]bool)
	usedPrompts := make(map[string]bool)
	take := func(q Question) bool {
		if usedIDs[q.ID] || usedPrompts[q.Prompt] {
			return false
		}
		usedIDs[q.ID] = true
		usedPrompts[q.Prompt] = true
		selected = append(selected, q)
		return true
	}

	taken := make(map[Type]int)
	for _, q := range questions {
		if len(selected) >= n {
			break
		}
		if taken[q.Type] < quota && take(q) {
			taken[q.Type]++
		}
	}

	if len(selected) < n {
		var rest []Question
		for _, q := range questions {
			if !usedIDs[q.ID] {
				rest = append(rest, q)
			}
		}
		slices.SortStableFunc(rest, order)
		for _, q := range rest {
			if len(selected) >= n {
				break
			}
			take(q)
		}
	}

	return selected
}
