package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/config"
	"github.com/abhisek/studyquiz/internal/logger"
	"github.com/abhisek/studyquiz/internal/quiz"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// session carries what every subcommand needs once flags and config are
// resolved.
type session struct {
	cfg    config.Config
	log    *logger.Logger
	rand   quiz.Rand
	format string
}

type globalFlags struct {
	configPath string
	verbose    bool
	logMode    string
	count      int
	seed       uint64
	format     string
}

// ExecuteContext runs the studyquiz command tree. Cancelling ctx stops
// long-running pipelines and model requests.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	s := &session{}

	root := &cobra.Command{
		Use:           "studyquiz",
		Short:         "Generate quiz questions and flashcards from study notes",
		Long:          "studyquiz turns chemistry and general study documents into quizzes, practice sessions and flashcards.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.log != nil {
				s.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a studyquiz.toml file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.logMode, "log-mode", "", "Log format: dev or prod")
	pf.IntVarP(&flags.count, "count", "n", 0, "Maximum number of questions")
	pf.Uint64Var(&flags.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	pf.StringVar(&flags.format, "format", formatText, "Output format: text or json")

	root.AddCommand(
		newQuizCmd(s, pipelineChem),
		newQuizCmd(s, pipelineGeneral),
		newFlashcardsCmd(s),
		newPracticeCmd(s),
		newVersionCmd(),
	)
	return root
}

func (s *session) init(cmd *cobra.Command, flags globalFlags) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("count") {
		cfg.NumQuestions = flags.count
	}
	if changed("seed") {
		cfg.Seed = flags.seed
	}
	if changed("verbose") {
		cfg.Log.Verbose = flags.verbose
	}
	if changed("log-mode") {
		cfg.Log.Mode = flags.logMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch flags.format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q: want %s or %s", flags.format, formatText, formatJSON)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Verbose)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.log = log
	s.rand = quiz.NewRand(cfg.Seed)
	s.format = flags.format
	return nil
}

func (s *session) write(w io.Writer, v any, text func(io.Writer) error) error {
	if s.format == formatJSON {
		return writeJSON(w, v)
	}
	return text(w)
}
