package quiz

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed and inner runs collapsed
// - Comparison is case-insensitive
// - A trailing period is ignored
// - For true/false: accepts true/false, t/f, yes/no
// - For multiple choice: matches against the option text or index (1-N)
// - For integers: leading zeros are ignored (e.g., "007" matches "7")
func CheckAnswer(learnerAnswer string, q Question) bool {
	learnerAnswer = normalize(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	switch q.Type {
	case TypeTrueFalse:
		return checkTrueFalse(learnerAnswer, q)
	case TypeMultipleChoice:
		return checkMultipleChoice(learnerAnswer, q)
	}

	correct := normalize(q.Answer.String())
	if a, err := strconv.ParseInt(learnerAnswer, 10, 64); err == nil {
		if b, err := strconv.ParseInt(correct, 10, 64); err == nil {
			return a == b
		}
	}
	return learnerAnswer == correct
}

func checkTrueFalse(learnerAnswer string, q Question) bool {
	want, ok := q.Answer.Bool()
	if !ok {
		return learnerAnswer == normalize(q.Answer.String())
	}
	switch learnerAnswer {
	case "true", "t", "yes", "y":
		return want
	case "false", "f", "no", "n":
		return !want
	}
	return false
}

// checkMultipleChoice checks the learner's answer against MC options.
func checkMultipleChoice(learnerAnswer string, q Question) bool {
	correct := normalize(q.Answer.String())

	// Option text wins over index so numeric options ("1", "14") stay unambiguous.
	for _, o := range q.Options {
		if normalize(o) == learnerAnswer {
			return learnerAnswer == correct
		}
	}

	// Try matching by index (1-N).
	if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(q.Options) {
		return normalize(q.Options[idx-1]) == correct
	}

	return learnerAnswer == correct
}

func normalize(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return strings.TrimSuffix(s, ".")
}
