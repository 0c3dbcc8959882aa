// Package general implements the general-purpose quiz pipeline: sentence
// segmentation, definition and relationship extraction, question synthesis
// with TF-IDF distractors, and curation.
package general

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/studyquiz/internal/nlp"
)

// DefaultMinSentenceLength is the trimmed length a sentence must exceed.
const DefaultMinSentenceLength = 10

var newlineRuns = regexp.MustCompile(`\n+`)

// Segment collapses newline runs, annotates text and keeps the sentences
// whose trimmed text is longer than minLength characters.
func Segment(ctx context.Context, a nlp.Annotator, text string, minLength int) ([]nlp.Sentence, error) {
	text = newlineRuns.ReplaceAllString(text, "\n")

	doc, err := a.Annotate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotate document: %w", err)
	}

	var out []nlp.Sentence
	for _, s := range doc.Sentences {
		s.Text = strings.TrimSpace(s.Text)
		if utf8.RuneCountInString(s.Text) > minLength {
			out = append(out, s)
		}
	}
	return out, nil
}
