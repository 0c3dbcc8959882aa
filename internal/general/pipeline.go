package general

import (
	"context"

	"github.com/abhisek/studyquiz/internal/logger"
	"github.com/abhisek/studyquiz/internal/nlp"
	"github.com/abhisek/studyquiz/internal/quiz"
)

// Options configures the general pipeline. Zero values select the defaults.
type Options struct {
	ContextWindow       int
	MinSentenceLength   int
	SimilarityThreshold float64
	DistractorMin       float64
	DistractorMax       float64

	// Annotator segments and parses text. Nil uses the prose annotator.
	Annotator nlp.Annotator
	// Rand drives coin flips and option shuffling. Nil seeds from the clock.
	Rand   quiz.Rand
	Logger *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.ContextWindow <= 0 {
		o.ContextWindow = DefaultContextWindow
	}
	if o.MinSentenceLength <= 0 {
		o.MinSentenceLength = DefaultMinSentenceLength
	}
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = quiz.DefaultSimilarityThreshold
	}
	if o.DistractorMin <= 0 {
		o.DistractorMin = DefaultDistractorMin
	}
	if o.DistractorMax <= 0 {
		o.DistractorMax = DefaultDistractorMax
	}
	if o.Annotator == nil {
		o.Annotator = nlp.NewProseAnnotator()
	}
	if o.Rand == nil {
		o.Rand = quiz.NewRand(0)
	}
	return o
}

// Pipeline runs the general pipeline over whole documents.
type Pipeline struct {
	opts  Options
	synth *Synthesizer
	log   *logger.Logger
}

// NewPipeline creates a general pipeline.
func NewPipeline(opts Options) *Pipeline {
	opts = opts.withDefaults()
	log := logger.OrNop(opts.Logger).With("pipeline", "general")
	return &Pipeline{
		opts:  opts,
		synth: NewSynthesizer(opts.Rand, log, opts),
		log:   log,
	}
}

// ProcessDocument extracts concepts from text and synthesizes at most n
// curated questions. Annotation failures are logged and yield no questions.
func ProcessDocument(ctx context.Context, text string, n int) []quiz.Question {
	return NewPipeline(Options{}).ProcessDocument(ctx, text, n)
}

// ProcessDocument is the package-level ProcessDocument with p's options.
func (p *Pipeline) ProcessDocument(ctx context.Context, text string, n int) []quiz.Question {
	concepts, err := p.Concepts(ctx, text)
	if err != nil {
		p.log.Warn("concept extraction failed", "error", err)
		return nil
	}
	return p.synth.Generate(concepts, n)
}

// Concepts segments text and returns its definition and relationship
// concepts.
func (p *Pipeline) Concepts(ctx context.Context, text string) ([]Concept, error) {
	sentences, err := Segment(ctx, p.opts.Annotator, text, p.opts.MinSentenceLength)
	if err != nil {
		return nil, err
	}
	concepts := ExtractConcepts(sentences, p.opts.ContextWindow)
	p.log.Debug("extracted concepts", "sentences", len(sentences), "concepts", len(concepts))
	return concepts, nil
}
