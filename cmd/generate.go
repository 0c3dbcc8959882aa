package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/chem"
	"github.com/abhisek/studyquiz/internal/docsource"
	"github.com/abhisek/studyquiz/internal/general"
	"github.com/abhisek/studyquiz/internal/quiz"
)

type pipelineName string

const (
	pipelineChem    pipelineName = "chem"
	pipelineGeneral pipelineName = "general"
)

func (p pipelineName) title() string {
	if p == pipelineChem {
		return "Chemistry quiz"
	}
	return "Quiz"
}

func parsePipeline(s string) (pipelineName, error) {
	switch p := pipelineName(s); p {
	case pipelineChem, pipelineGeneral:
		return p, nil
	}
	return "", fmt.Errorf("unknown pipeline %q: want %s or %s", s, pipelineChem, pipelineGeneral)
}

func newQuizCmd(s *session, p pipelineName) *cobra.Command {
	short := "Generate general-knowledge questions from a document"
	if p == pipelineChem {
		short = "Generate chemistry questions from a document"
	}
	return &cobra.Command{
		Use:   string(p) + " <file>",
		Short: short,
		Long:  short + ". Use - to read the document from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := docsource.Read(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			qs := s.questions(cmd.Context(), p, text)
			return s.write(cmd.OutOrStdout(), qs, func(w io.Writer) error {
				return renderQuestions(w, p.title(), qs)
			})
		},
	}
}

// questions runs pipeline p over text with the session's settings.
func (s *session) questions(ctx context.Context, p pipelineName, text string) []quiz.Question {
	n := s.cfg.NumQuestions
	if p == pipelineChem {
		c := s.cfg.Chemistry
		return chem.NewPipeline(chem.Options{
			WindowSize:    c.WindowSize,
			FallbackTopic: c.FallbackTopic,
			MinQuestions:  c.MinQuestions,
			Rand:          s.rand,
			Logger:        s.log,
		}).ProcessDocument(ctx, text, n)
	}
	g := s.cfg.General
	return general.NewPipeline(general.Options{
		ContextWindow:       g.ContextWindow,
		MinSentenceLength:   g.MinSentenceLength,
		SimilarityThreshold: g.SimilarityThreshold,
		DistractorMin:       g.DistractorMin,
		DistractorMax:       g.DistractorMax,
		Rand:                s.rand,
		Logger:              s.log,
	}).ProcessDocument(ctx, text, n)
}
