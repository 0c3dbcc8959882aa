package general

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/abhisek/studyquiz/internal/logger"
	"github.com/abhisek/studyquiz/internal/nlp"
	"github.com/abhisek/studyquiz/internal/quiz"
)

const mlSample = `
Machine learning is a subset of artificial intelligence focused on building systems that learn from data.
Neural networks are computational models inspired by the human brain's structure and function.

Deep learning is a subset of machine learning that uses neural networks with many layers.
The perceptron is the simplest type of neural network, consisting of a single layer.
Supervised learning occurs when algorithms are trained on labeled data to make predictions or decisions.
`

var (
	fakeSentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
	fakeWordPattern     = regexp.MustCompile(`[\p{L}\p{N}']+|[^\s\p{L}\p{N}]`)
)

// fakeAnnotator splits on sentence punctuation and tags every word as a noun.
type fakeAnnotator struct {
	lastInput string
	err       error
}

func (f *fakeAnnotator) Annotate(ctx context.Context, text string) (*nlp.Document, error) {
	f.lastInput = text
	if f.err != nil {
		return nil, f.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := &nlp.Document{}
	for _, raw := range fakeSentencePattern.FindAllString(text, -1) {
		s := nlp.Sentence{Text: strings.TrimSpace(raw)}
		if s.Text == "" {
			continue
		}
		for _, w := range fakeWordPattern.FindAllString(s.Text, -1) {
			s.Tokens = append(s.Tokens, nlp.NewToken(w, "NN"))
		}
		doc.Sentences = append(doc.Sentences, s)
	}
	return doc, nil
}

func newTestSynth(t *testing.T) *Synthesizer {
	t.Helper()
	return NewSynthesizer(quiz.NewRand(42), logger.NewTest(t), Options{Annotator: &fakeAnnotator{}})
}

func sentence(text string, tokens ...nlp.Token) nlp.Sentence {
	return nlp.Sentence{Text: text, Tokens: tokens}
}
