package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New builds a question with a fresh ID.
func New(t Type, prompt string, answer Answer, d Difficulty) Question {
	return Question{
		ID:         uuid.NewString(),
		Type:       t,
		Prompt:     prompt,
		Answer:     answer,
		Difficulty: d,
	}
}

// NewMultipleChoice builds a multiple-choice question. options must already
// contain answer.
func NewMultipleChoice(prompt, answer string, options []string, d Difficulty) Question {
	q := New(TypeMultipleChoice, prompt, TextAnswer(answer), d)
	q.Options = options
	return q
}

// ValidationError describes why a question violates the record invariants.
type ValidationError struct {
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Message)
}

// Validate checks the invariants every generated question must hold.
func Validate(q Question) error {
	if !q.Type.Valid() {
		return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("unknown question type %q", q.Type)}
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{QuestionID: q.ID, Message: "prompt is empty"}
	}
	if q.Type == TypeTrueFalse && !q.Answer.IsBool() {
		return &ValidationError{QuestionID: q.ID, Message: "true_false answer must be boolean"}
	}
	if q.Type != TypeTrueFalse && strings.TrimSpace(q.Answer.String()) == "" {
		return &ValidationError{QuestionID: q.ID, Message: "answer is empty"}
	}
	if q.Type == TypeMultipleChoice {
		if len(q.Options) == 0 {
			return &ValidationError{QuestionID: q.ID, Message: "multiple_choice requires options"}
		}
		n := 0
		for _, o := range q.Options {
			if o == q.Answer.String() {
				n++
			}
		}
		if n != 1 {
			return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("answer appears %d times in options", n)}
		}
	} else if len(q.Options) > 0 {
		return &ValidationError{QuestionID: q.ID, Message: "options are only allowed on multiple_choice"}
	}
	return nil
}
