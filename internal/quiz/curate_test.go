package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mcq(prompt string, options ...string) Question {
	return NewMultipleChoice(prompt, options[0], options, DifficultyMedium)
}

func TestScore(t *testing.T) {
	longContext := "This context is deliberately longer than fifty characters in total."

	tests := []struct {
		name string
		q    Question
		want int
	}{
		{
			name: "short answer two tokens",
			q:    New(TypeShortAnswer, "What?", TextAnswer("two words"), DifficultyEasy),
			want: 2,
		},
		{
			name: "single token answer",
			q:    New(TypeShortAnswer, "What?", TextAnswer("one"), DifficultyEasy),
			want: 1,
		},
		{
			name: "empty answer",
			q:    New(TypeShortAnswer, "What?", TextAnswer(""), DifficultyEasy),
			want: 0,
		},
		{
			name: "boolean answer counts as one token",
			q:    New(TypeTrueFalse, "True or False: x", BoolAnswer(true), DifficultyEasy),
			want: 1,
		},
		{
			name: "cloze with context",
			q: func() Question {
				q := New(TypeCloze, "Fill in the blank: ___ is x", TextAnswer("Machine learning"), DifficultyEasy)
				q.Context = longContext
				return q
			}(),
			want: 4,
		},
		{
			name: "multiple choice with four options and context",
			q: func() Question {
				q := mcq("Which?", "a b", "c", "d", "e")
				q.Context = longContext
				return q
			}(),
			want: 5,
		},
		{
			name: "multiple choice with three options",
			q:    mcq("Which?", "a b", "c", "d"),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Score([]Question{tt.q})
			require.Len(t, out, 1)
			require.NotNil(t, out[0].QualityScore)
			assert.Equal(t, tt.want, *out[0].QualityScore)
		})
	}
}

func TestScore_SortsDescendingAndStable(t *testing.T) {
	a := New(TypeShortAnswer, "a", TextAnswer("one"), DifficultyEasy)
	b := New(TypeShortAnswer, "b", TextAnswer("two words"), DifficultyEasy)
	c := New(TypeShortAnswer, "c", TextAnswer("again one"), DifficultyEasy)

	out := Score([]Question{a, b, c})
	require.Len(t, out, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{out[0].Prompt, out[1].Prompt, out[2].Prompt})
	assert.Nil(t, a.QualityScore, "input must not be mutated")
}

func TestTextSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, TextSimilarity("abc", "abc"))
	assert.Equal(t, 0.0, TextSimilarity("", ""))
	assert.InDelta(t, 0.5, TextSimilarity("abcd", "abxy"), 1e-9)
	assert.InDelta(t, 0.5, TextSimilarity("ab", "abcd"), 1e-9)
}

func TestDedup(t *testing.T) {
	qs := []Question{
		New(TypeShortAnswer, "What is machine learning?", TextAnswer("x"), DifficultyEasy),
		New(TypeShortAnswer, "WHAT IS MACHINE LEARNING?", TextAnswer("y"), DifficultyEasy),
		New(TypeShortAnswer, "What is machine learnings?", TextAnswer("z"), DifficultyEasy),
		New(TypeShortAnswer, "Fill in the blank: something else entirely", TextAnswer("w"), DifficultyEasy),
	}

	out := Dedup(qs, DefaultSimilarityThreshold)
	require.Len(t, out, 2)
	assert.Equal(t, qs[0].ID, out[0].ID, "first occurrence wins")
	assert.Equal(t, qs[3].ID, out[1].ID)
}

func TestDedup_Idempotent(t *testing.T) {
	var qs []Question
	for i := range 10 {
		qs = append(qs, New(TypeShortAnswer, fmt.Sprintf("Question number %d about topic %d?", i%3, i), TextAnswer("a"), DifficultyEasy))
	}
	qs = append(qs, New(TypeCloze, "Completely different prompt", TextAnswer("b"), DifficultyEasy))

	once := Dedup(qs, DefaultSimilarityThreshold)
	twice := Dedup(once, DefaultSimilarityThreshold)
	assert.Equal(t, once, twice)
}

func TestDiversify_NeverExceedsN(t *testing.T) {
	var qs []Question
	for i := range 20 {
		qs = append(qs, New(TypeShortAnswer, fmt.Sprintf("short %d", i), TextAnswer("a"), DifficultyEasy))
	}
	for n := 0; n <= 25; n += 5 {
		out := Diversify(qs, n, ByScoreDesc)
		assert.LessOrEqual(t, len(out), n)
	}
}

func TestDiversify_NoDuplicates(t *testing.T) {
	var qs []Question
	types := []Type{TypeShortAnswer, TypeCloze, TypeTrueFalse, TypeMultipleChoice}
	for i := range 24 {
		tp := types[i%len(types)]
		q := New(tp, fmt.Sprintf("prompt %d", i), TextAnswer("a"), DifficultyEasy)
		if tp == TypeMultipleChoice {
			q.Options = []string{"a", "b", "c", "d"}
		}
		qs = append(qs, q)
	}

	out := Diversify(Score(qs), 30, ByScoreDesc)
	seen := make(map[string]bool)
	for _, q := range out {
		assert.False(t, seen[q.ID], "question %s emitted twice", q.ID)
		seen[q.ID] = true
	}
	assert.Len(t, out, 24)
}

func TestDiversify_FirstPassKeepsInputOrder(t *testing.T) {
	var qs []Question
	for i := range 10 {
		qs = append(qs, New(TypeShortAnswer, fmt.Sprintf("short %d", i), TextAnswer("a"), DifficultyEasy))
	}
	qs = append(qs, New(TypeCloze, "cloze", TextAnswer("a"), DifficultyEasy))
	qs = append(qs, New(TypeTrueFalse, "tf", BoolAnswer(true), DifficultyEasy))

	out := Diversify(qs, 3, ByScoreDesc)
	require.Len(t, out, 3)
	for i, q := range out {
		assert.Equal(t, qs[i].ID, q.ID, "truncation keeps the leading items")
	}

	// Quota is max(3, 12/3) = 4, so the fifth short answer yields to the other types.
	out = Diversify(qs, 6, ByScoreDesc)
	require.Len(t, out, 6)
	got := make([]string, len(out))
	for i, q := range out {
		got[i] = q.Prompt
	}
	assert.Equal(t, []string{"short 0", "short 1", "short 2", "short 3", "cloze", "tf"}, got)
}

func TestDiversify_TopScoresSurviveTruncation(t *testing.T) {
	longContext := "This context is deliberately longer than fifty characters in total."
	var qs []Question
	for i := range 4 {
		q := mcq(fmt.Sprintf("Which option %d?", i), "a b", "c", "d", "e")
		q.Context = longContext
		qs = append(qs, q)
		qs = append(qs, New(TypeTrueFalse, fmt.Sprintf("True or False: claim %d", i), BoolAnswer(true), DifficultyEasy))
	}

	out := Diversify(Score(qs), 4, ByScoreDesc)
	require.Len(t, out, 4)
	for _, q := range out {
		require.NotNil(t, q.QualityScore)
		assert.Equal(t, 5, *q.QualityScore)
		assert.Equal(t, TypeMultipleChoice, q.Type)
	}
}

func TestDiversify_FillsByOrder(t *testing.T) {
	var qs []Question
	for i := range 6 {
		qs = append(qs, New(TypeShortAnswer, fmt.Sprintf("easy %d", i), TextAnswer("a"), DifficultyEasy))
	}
	hard := New(TypeShortAnswer, "hard one", TextAnswer("a"), DifficultyHard)
	qs = append(qs, hard)

	// Quota is max(3, 7/1) = 7 so everything fits in the first pass.
	out := Diversify(qs, 7, ByDifficultyDesc)
	assert.Len(t, out, 7)

	// With 8 candidates of 2 types the quota is 4, leaving slots for the fill pass.
	qs = append(qs, New(TypeCloze, "cloze", TextAnswer("a"), DifficultyEasy))
	out = Diversify(qs, 6, ByDifficultyDesc)
	require.Len(t, out, 6)
	assert.Equal(t, hard.ID, out[5].ID, "hardest leftover fills the first free slot")
}

func TestValidate(t *testing.T) {
	ok := mcq("Which?", "a", "b", "c", "d")
	require.NoError(t, Validate(ok))

	dup := NewMultipleChoice("Which?", "a", []string{"a", "a", "b"}, DifficultyEasy)
	assert.Error(t, Validate(dup))

	missing := NewMultipleChoice("Which?", "z", []string{"a", "b"}, DifficultyEasy)
	assert.Error(t, Validate(missing))

	tf := New(TypeTrueFalse, "True or False: x", TextAnswer("True"), DifficultyEasy)
	assert.Error(t, Validate(tf))
}
