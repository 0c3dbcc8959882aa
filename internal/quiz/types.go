package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Question is a single generated quiz item.
type Question struct {
	// ID uniquely identifies this question object within a run.
	// The diversity selector uses it to avoid emitting the same object twice.
	ID string `json:"id"`

	// Type selects how the learner answers this question.
	Type Type `json:"question_type"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"question"`

	// Answer is the canonical correct answer.
	Answer Answer `json:"answer"`

	// Options is populated only when Type is TypeMultipleChoice and always
	// contains Answer exactly once.
	Options []string `json:"options,omitempty"`

	Difficulty Difficulty `json:"difficulty"`

	// QualityScore is set by Score. Nil for unscored questions.
	QualityScore *int `json:"quality_score,omitempty"`

	// Provenance. All optional.
	Context        string `json:"context,omitempty"`
	SourceSentence string `json:"source_sentence,omitempty"`
	Topic          string `json:"topic,omitempty"`
}

// Type is the answer format of a question.
type Type string

const (
	TypeShortAnswer    Type = "short_answer"
	TypeMultipleChoice Type = "multiple_choice"
	TypeTrueFalse      Type = "true_false"
	TypeCloze          Type = "cloze"
)

// Valid reports whether t is one of the known question types.
func (t Type) Valid() bool {
	switch t {
	case TypeShortAnswer, TypeMultipleChoice, TypeTrueFalse, TypeCloze:
		return true
	}
	return false
}

// Difficulty is the coarse difficulty label attached to every question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank orders difficulties easy=0, medium=1, hard=2. Unknown labels rank
// as medium.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyHard:
		return 2
	default:
		return 1
	}
}

// Answer is either a text answer or a boolean answer (true/false questions).
// The zero value is an empty text answer.
type Answer struct {
	text   string
	truth  bool
	isBool bool
}

// TextAnswer returns a text answer.
func TextAnswer(s string) Answer { return Answer{text: s} }

// BoolAnswer returns a boolean answer.
func BoolAnswer(b bool) Answer { return Answer{truth: b, isBool: true} }

// IsBool reports whether the answer is boolean.
func (a Answer) IsBool() bool { return a.isBool }

// Bool returns the boolean value and whether the answer is boolean.
func (a Answer) Bool() (bool, bool) { return a.truth, a.isBool }

// String renders the answer the way it is displayed and scored.
// Boolean answers render as "True" or "False".
func (a Answer) String() string {
	if a.isBool {
		if a.truth {
			return "True"
		}
		return "False"
	}
	return a.text
}

// MarshalJSON encodes text answers as JSON strings and boolean answers as
// JSON booleans.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isBool {
		return []byte(strconv.FormatBool(a.truth)), nil
	}
	return json.Marshal(a.text)
}

// UnmarshalJSON accepts a JSON string or a JSON boolean.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = BoolAnswer(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("answer must be a string or boolean: %w", err)
	}
	*a = TextAnswer(s)
	return nil
}
