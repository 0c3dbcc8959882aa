package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/docsource"
	"github.com/abhisek/studyquiz/internal/quiz"
)

// practiceResult is one graded answer.
type practiceResult struct {
	Question quiz.Question `json:"question"`
	Given    string        `json:"given"`
	Correct  bool          `json:"correct"`
}

type practiceSummary struct {
	Total   int              `json:"total"`
	Correct int              `json:"correct"`
	Results []practiceResult `json:"results"`
}

func newPracticeCmd(s *session) *cobra.Command {
	var pipeline string
	cmd := &cobra.Command{
		Use:   "practice <file>",
		Short: "Answer generated questions in the terminal",
		Long: `Ask generated questions one at a time and grade each answer.

Multiple-choice questions take the option text or its number. True/false
questions accept true/false, t/f and yes/no. Enter on an empty answer counts
as wrong and Esc or Ctrl+C ends the session early.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == docsource.Stdin {
				return errors.New("practice reads answers from stdin; pass the document as a file")
			}
			p, err := parsePipeline(pipeline)
			if err != nil {
				return err
			}
			text, err := docsource.Read(args[0], nil)
			if err != nil {
				return err
			}
			qs := s.questions(cmd.Context(), p, text)

			// JSON mode keeps stdout machine-readable, so the session renders on stderr.
			screen := cmd.OutOrStdout()
			if s.format == formatJSON {
				screen = cmd.ErrOrStderr()
			}
			summary, err := runPractice(cmd.Context(), cmd.InOrStdin(), screen, qs)
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), summary, func(w io.Writer) error {
				line := fmt.Sprintf("Score: %d/%d", summary.Correct, summary.Total)
				_, err := fmt.Fprintln(w, "\n"+titleStyle.Render(line))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&pipeline, "pipeline", "p", string(pipelineGeneral), "Question pipeline: chem or general")
	return cmd
}

// runPractice runs the practice session over in and out until every
// question is answered or the learner quits.
func runPractice(ctx context.Context, in io.Reader, out io.Writer, qs []quiz.Question) (practiceSummary, error) {
	p := tea.NewProgram(newPracticeModel(qs),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return practiceSummary{}, fmt.Errorf("run practice session: %w", err)
	}
	return final.(practiceModel).summary, nil
}

// practiceModel asks questions in order. Enter grades the typed answer with
// quiz.CheckAnswer and moves on; the last verdict stays on screen above the
// next question.
type practiceModel struct {
	questions []quiz.Question
	current   int
	input     textinput.Model
	verdict   string
	summary   practiceSummary
	done      bool
}

func newPracticeModel(qs []quiz.Question) practiceModel {
	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.Prompt = "> "
	ti.Focus()
	return practiceModel{
		questions: qs,
		input:     ti,
		summary:   practiceSummary{Results: []practiceResult{}},
		done:      len(qs) == 0,
	}
}

func (m practiceModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return m.input.Focus()
}

func (m practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch kmsg.String() {
	case "ctrl+c", "esc":
		m.done = true
		return m, tea.Quit
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m practiceModel) submit() (tea.Model, tea.Cmd) {
	q := m.questions[m.current]
	given := strings.TrimSpace(m.input.Value())
	correct := quiz.CheckAnswer(given, q)

	m.summary.Total++
	if correct {
		m.summary.Correct++
		m.verdict = successStyle.Render("✓ Correct")
	} else {
		m.verdict = errorStyle.Render("✗ Answer: " + q.Answer.String())
	}
	m.summary.Results = append(m.summary.Results, practiceResult{Question: q, Given: given, Correct: correct})

	m.input.Reset()
	m.current++
	if m.current >= len(m.questions) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m practiceModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m practiceModel) render() string {
	var b strings.Builder
	if m.verdict != "" {
		b.WriteString(m.verdict + "\n\n")
	}
	if !m.done {
		q := m.questions[m.current]
		b.WriteString(questionHeader(m.current, q) + "\n")
		for _, line := range optionLines(q) {
			b.WriteString(line + "\n")
		}
		b.WriteString(m.input.View() + "\n")
		b.WriteString(tagStyle.Render(fmt.Sprintf("%d/%d  Enter submit  Esc quit", m.current+1, len(m.questions))))
	}
	return b.String()
}
