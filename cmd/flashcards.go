package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/docsource"
	"github.com/abhisek/studyquiz/internal/flashcards"
	"github.com/abhisek/studyquiz/internal/llm"
)

func newFlashcardsCmd(s *session) *cobra.Command {
	var topic, from string
	cmd := &cobra.Command{
		Use:   "flashcards <file>",
		Short: "Generate flashcards from a document",
		Long: `Generate front/back flashcards from a document with a language model.

The provider comes from the [llm] config section or STUDYQUIZ_* variables and
defaults to a local Ollama server. With --from chem or --from general the
cards are built offline from the question pipeline instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := docsource.Read(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			var list flashcards.List
			if from != "" {
				p, err := parsePipeline(from)
				if err != nil {
					return err
				}
				list = flashcards.FromQuestions(s.questions(cmd.Context(), p, text))
			} else {
				ctx := llm.WithPurpose(cmd.Context(), "flashcards")
				provider, err := llm.NewProvider(ctx, s.cfg.LLMConfig(), s.log)
				if err != nil {
					return err
				}
				fc := s.cfg.Flashcards
				cfg := flashcards.DefaultConfig()
				cfg.MaxTokens = fc.MaxTokens
				cfg.Temperature = fc.Temperature
				cfg.Concurrency = fc.Concurrency
				cfg.Timeout = fc.Timeout()
				cfg.WindowSize = s.cfg.Chemistry.WindowSize
				cfg.FallbackTopic = s.cfg.Chemistry.FallbackTopic

				list, err = flashcards.New(provider, cfg, s.log).Generate(ctx, text, topic)
				if err != nil {
					return err
				}
			}

			return s.write(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return renderFlashcards(w, list)
			})
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "Topic for documents without header lines")
	cmd.Flags().StringVar(&from, "from", "", "Build cards offline from a question pipeline: chem or general")
	return cmd
}
