package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyquiz/internal/flashcards"
	"github.com/abhisek/studyquiz/internal/quiz"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorAccent  = lipgloss.Color("#14B8A6")
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	promptStyle  = lipgloss.NewStyle().Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(colorDim)
	answerStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// questionHeader renders "N. [type, difficulty] prompt".
func questionHeader(i int, q quiz.Question) string {
	tag := tagStyle.Render(fmt.Sprintf("[%s, %s]", q.Type, q.Difficulty))
	return fmt.Sprintf("%d. %s %s", i+1, tag, promptStyle.Render(q.Prompt))
}

func optionLines(q quiz.Question) []string {
	lines := make([]string, len(q.Options))
	for i, o := range q.Options {
		lines[i] = fmt.Sprintf("   %d) %s", i+1, o)
	}
	return lines
}

func renderQuestions(w io.Writer, title string, qs []quiz.Question) error {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("%s: %d questions", title, len(qs))))
	for i, q := range qs {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, questionHeader(i, q))
		for _, line := range optionLines(q) {
			fmt.Fprintln(&b, line)
		}
		fmt.Fprintln(&b, "   "+answerStyle.Render("Answer: "+q.Answer.String()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderFlashcards(w io.Writer, list flashcards.List) error {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("Flashcards: %d cards", len(list.Items))))
	for _, c := range list.Items {
		body := promptStyle.Render(c.Front) + "\n" + answerStyle.Render(c.Back)
		fmt.Fprintln(&b, cardStyle.Render(body))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
