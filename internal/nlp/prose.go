package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseAnnotator annotates text with prose's segmenter, tagger and entity
// extractor. Dependencies and noun chunks come from LabelDependencies and
// NounChunks.
type ProseAnnotator struct{}

// NewProseAnnotator returns the default annotator.
func NewProseAnnotator() *ProseAnnotator {
	return &ProseAnnotator{}
}

// Annotate segments text into sentences and annotates each one.
func (a *ProseAnnotator) Annotate(ctx context.Context, text string) (*Document, error) {
	seg, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segment text: %w", err)
	}

	doc := &Document{}
	for _, s := range seg.Sentences() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sentence := strings.TrimSpace(s.Text)
		if sentence == "" {
			continue
		}
		annotated, err := a.annotateSentence(sentence)
		if err != nil {
			return nil, err
		}
		doc.Sentences = append(doc.Sentences, annotated)
	}
	return doc, nil
}

func (a *ProseAnnotator) annotateSentence(text string) (Sentence, error) {
	pd, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return Sentence{}, fmt.Errorf("annotate sentence %q: %w", text, err)
	}

	s := Sentence{Text: text}
	for _, t := range pd.Tokens() {
		s.Tokens = append(s.Tokens, NewToken(t.Text, t.Tag))
	}
	LabelDependencies(s.Tokens)
	s.NounChunks = NounChunks(s.Tokens)
	for _, e := range pd.Entities() {
		s.Entities = append(s.Entities, Entity{Text: e.Text, Label: e.Label})
	}
	return s, nil
}
