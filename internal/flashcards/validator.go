package flashcards

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validator checks one generated card. Implementations must be safe for
// concurrent use.
type Validator interface {
	Name() string
	Validate(c Flashcard) *ValidationError
}

// ValidationError describes why a card was dropped.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator rejects cards with an empty side, a side longer than
// MaxLength runes (when positive), or a back that repeats the front.
type StructuralValidator struct {
	MaxLength int
}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c Flashcard) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	front, back := strings.TrimSpace(c.Front), strings.TrimSpace(c.Back)
	switch {
	case front == "":
		return fail("front is empty")
	case back == "":
		return fail("back is empty")
	case strings.EqualFold(front, back):
		return fail("back repeats the front")
	}
	if v.MaxLength > 0 {
		if n := utf8.RuneCountInString(front); n > v.MaxLength {
			return fail("front has %d characters, limit is %d", n, v.MaxLength)
		}
		if n := utf8.RuneCountInString(back); n > v.MaxLength {
			return fail("back has %d characters, limit is %d", n, v.MaxLength)
		}
	}
	return nil
}
