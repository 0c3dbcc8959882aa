package chem

import (
	"context"
	"fmt"

	"github.com/abhisek/studyquiz/internal/chunk"
	"github.com/abhisek/studyquiz/internal/logger"
	"github.com/abhisek/studyquiz/internal/quiz"
)

// Options configures a Pipeline. Zero values select the defaults.
type Options struct {
	WindowSize    int
	FallbackTopic string
	MinQuestions  int

	// Rand drives distractor sampling and shuffling. Nil seeds from the clock.
	Rand   quiz.Rand
	Logger *logger.Logger
}

// Pipeline runs the chemistry pipeline over whole documents.
type Pipeline struct {
	opts  Options
	synth *Synthesizer
	log   *logger.Logger
}

// NewPipeline creates a chemistry pipeline.
func NewPipeline(opts Options) *Pipeline {
	if opts.Rand == nil {
		opts.Rand = quiz.NewRand(0)
	}
	log := logger.OrNop(opts.Logger).With("pipeline", "chemistry")
	return &Pipeline{
		opts:  opts,
		synth: NewSynthesizer(opts.Rand, log).WithMinQuestions(opts.MinQuestions),
		log:   log,
	}
}

// ProcessDocument segments text by headers, extracts chemistry content from
// every chunk and synthesizes at most n questions. A chunk that fails is
// logged and skipped. Cancellation stops extraction and synthesizes from the
// chunks seen so far.
func ProcessDocument(ctx context.Context, text string, n int) []quiz.Question {
	return NewPipeline(Options{}).ProcessDocument(ctx, text, n)
}

// ProcessDocument is the package-level ProcessDocument with p's options.
func (p *Pipeline) ProcessDocument(ctx context.Context, text string, n int) []quiz.Question {
	chunks := chunk.ByHeaders(text, p.opts.FallbackTopic, p.opts.WindowSize)
	p.log.Debug("segmented document", "chunks", len(chunks))

	var content Content
	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			p.log.Warn("extraction cancelled", "processed", i, "chunks", len(chunks), "error", err)
			break
		}
		extracted, err := extractChunk(c)
		if err != nil {
			p.log.Warn("skipping chunk", "topic", c.Topic, "error", err)
			continue
		}
		content.Merge(extracted)
	}

	p.log.Debug("extracted content",
		"formulas", len(content.Formulas),
		"equations", len(content.Equations),
		"elements", len(content.ElementMentions),
		"compounds", len(content.CompoundMentions),
		"concepts", len(content.Concepts))

	qs := p.synth.Generate(content, n)
	p.log.Info("generated questions", "count", len(qs), "requested", n)
	return qs
}

func extractChunk(c chunk.Chunk) (content Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract chunk %q: %v", c.Topic, r)
		}
	}()
	return Extract(Preprocess(c.Content)), nil
}
