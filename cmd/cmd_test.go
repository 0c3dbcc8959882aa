package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyquiz/internal/flashcards"
	"github.com/abhisek/studyquiz/internal/quiz"
)

const chemNotes = "Water is H2O and methane is CH4."

// run executes the command tree with a throwaway config file.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "studyquiz.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed = 7\n\n[log]\nmode = \"prod\"\n"), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestChemCommand_JSON(t *testing.T) {
	out, err := run(t, "", "chem", writeDoc(t, "notes.txt", chemNotes), "-n", "10", "--format", "json")
	require.NoError(t, err)

	var qs []quiz.Question
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	require.NotEmpty(t, qs)
	assert.LessOrEqual(t, len(qs), 10)

	var prompts []string
	for _, q := range qs {
		prompts = append(prompts, q.Prompt)
	}
	assert.Contains(t, prompts, "What is the chemical formula for Water?")
}

func TestChemCommand_StdinText(t *testing.T) {
	out, err := run(t, chemNotes, "chem", "-", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Chemistry quiz")
	assert.Contains(t, out, "Answer:")
}

func TestChemCommand_SeedIsDeterministic(t *testing.T) {
	doc := writeDoc(t, "notes.txt", chemNotes)
	a, err := run(t, "", "chem", doc, "--seed", "3", "--format", "json")
	require.NoError(t, err)
	b, err := run(t, "", "chem", doc, "--seed", "3", "--format", "json")
	require.NoError(t, err)

	strip := func(s string) []quiz.Question {
		var qs []quiz.Question
		require.NoError(t, json.Unmarshal([]byte(s), &qs))
		for i := range qs {
			qs[i].ID = ""
		}
		return qs
	}
	assert.Equal(t, strip(a), strip(b))
}

func TestRootCommand_RejectsBadFormat(t *testing.T) {
	_, err := run(t, "", "chem", writeDoc(t, "notes.txt", chemNotes), "--format", "yaml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRootCommand_MissingFile(t *testing.T) {
	_, err := run(t, "", "chem", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlashcardsCommand_Offline(t *testing.T) {
	out, err := run(t, "", "flashcards", writeDoc(t, "notes.md", chemNotes), "--from", "chem", "--format", "json")
	require.NoError(t, err)

	var list flashcards.List
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.NotEmpty(t, list.Items)
	for _, c := range list.Items {
		assert.NotEmpty(t, c.Front)
		assert.NotEmpty(t, c.Back)
	}
}

func TestFlashcardsCommand_UnknownPipeline(t *testing.T) {
	_, err := run(t, "", "flashcards", writeDoc(t, "notes.md", chemNotes), "--from", "physics")
	assert.ErrorContains(t, err, "unknown pipeline")
}

func TestPracticeCommand_RejectsStdinDocument(t *testing.T) {
	_, err := run(t, "", "practice", "-")
	assert.Error(t, err)
}

func TestPracticeCommand_ScoresSession(t *testing.T) {
	// Three bare Enter presses skip three questions.
	out, err := run(t, "\r\r\r", "practice", writeDoc(t, "notes.txt", chemNotes), "--pipeline", "chem", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 0/3")
}

func TestPracticeCommand_JSONSummary(t *testing.T) {
	out, err := run(t, "\r\r\r", "practice", writeDoc(t, "notes.txt", chemNotes), "--pipeline", "chem", "-n", "3", "--format", "json")
	require.NoError(t, err)

	var summary practiceSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Len(t, summary.Results, 3)
}

func practiceQuestions() []quiz.Question {
	return []quiz.Question{
		quiz.New(quiz.TypeShortAnswer, "What is the chemical formula for Water?", quiz.TextAnswer("H2O"), quiz.DifficultyEasy),
		quiz.NewMultipleChoice("Which element has the symbol Na?", "Sodium", []string{"Neon", "Sodium", "Nitrogen"}, quiz.DifficultyMedium),
		quiz.New(quiz.TypeTrueFalse, "True or False: CH4 is methane.", quiz.BoolAnswer(true), quiz.DifficultyEasy),
	}
}

func answer(t *testing.T, m practiceModel, text string) (practiceModel, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return next.(practiceModel), cmd
}

func TestPracticeModel_GradesEachAnswer(t *testing.T) {
	m := newPracticeModel(practiceQuestions())
	assert.Contains(t, m.render(), "What is the chemical formula for Water?")
	assert.NotContains(t, m.render(), "Neon", "options render only for the current question")

	m, cmd := answer(t, m, "h2o")
	assert.Nil(t, cmd)
	assert.Contains(t, m.render(), "Correct")
	assert.Contains(t, m.render(), "1) Neon")
	assert.Empty(t, m.input.Value(), "input is cleared after each answer")

	m, _ = answer(t, m, "2")
	m, cmd = answer(t, m, "no")
	require.NotNil(t, cmd)
	assert.True(t, m.done)

	assert.Equal(t, 3, m.summary.Total)
	assert.Equal(t, 2, m.summary.Correct)
	require.Len(t, m.summary.Results, 3)
	assert.True(t, m.summary.Results[0].Correct)
	assert.True(t, m.summary.Results[1].Correct)
	assert.False(t, m.summary.Results[2].Correct)
	assert.Equal(t, "no", m.summary.Results[2].Given)
	assert.Contains(t, m.render(), "Answer: True")
}

func TestPracticeModel_EscEndsEarly(t *testing.T) {
	m := newPracticeModel(practiceQuestions())
	m, _ = answer(t, m, "H2O")

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m = next.(practiceModel)
	assert.True(t, m.done)
	assert.Equal(t, 1, m.summary.Total)
	assert.Equal(t, 1, m.summary.Correct)
}

func TestPracticeModel_NoQuestions(t *testing.T) {
	m := newPracticeModel(nil)
	assert.True(t, m.done)
	assert.NotNil(t, m.Init())
	assert.Empty(t, m.render())
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "studyquiz (devel)\n", out)
}
