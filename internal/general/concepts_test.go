package general

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyquiz/internal/nlp"
)

func TestSegment(t *testing.T) {
	a := &fakeAnnotator{}
	got, err := Segment(context.Background(), a, "Too short.\n\n\nThis sentence is long enough to keep.", DefaultMinSentenceLength)
	require.NoError(t, err)

	assert.Equal(t, "Too short.\nThis sentence is long enough to keep.", a.lastInput, "newline runs collapse")
	require.Len(t, got, 1)
	assert.Equal(t, "This sentence is long enough to keep.", got[0].Text)
}

func TestSegment_AnnotatorError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Segment(context.Background(), &fakeAnnotator{err: boom}, "Some text here.", DefaultMinSentenceLength)
	assert.ErrorIs(t, err, boom)
}

func TestExtractConcepts_Definition(t *testing.T) {
	sentences := []nlp.Sentence{
		sentence("Machine learning is a subset of artificial intelligence focused on data."),
		sentence("It is everywhere these days."),
	}

	concepts := ExtractConcepts(sentences, DefaultContextWindow)
	require.Len(t, concepts, 1)

	c := concepts[0]
	assert.Equal(t, KindDefinition, c.Kind)
	assert.Equal(t, "Machine learning", c.Term)
	assert.Equal(t, "a subset of artificial intelligence focused on data", c.Definition)
	assert.Equal(t, sentences[0].Text, c.Sentence)
	assert.Equal(t, sentences[0].Text+" "+sentences[1].Text, c.Context)
}

func TestExtractConcepts_DefinitionVerbs(t *testing.T) {
	for _, verb := range []string{"is", "are", "refers to", "means", "defines", "represents", "constitutes"} {
		t.Run(verb, func(t *testing.T) {
			s := sentence(fmt.Sprintf("Entropy %s a measure of disorder", verb))
			concepts := ExtractConcepts([]nlp.Sentence{s}, DefaultContextWindow)
			require.Len(t, concepts, 1)
			assert.Equal(t, "Entropy", concepts[0].Term)
			assert.Equal(t, "a measure of disorder", concepts[0].Definition)
		})
	}
}

func TestExtractConcepts_NoDefinitionWithoutCapital(t *testing.T) {
	concepts := ExtractConcepts([]nlp.Sentence{sentence("entropy is a measure of disorder")}, DefaultContextWindow)
	assert.Empty(t, concepts)
}

func TestExtractConcepts_ContextWindow(t *testing.T) {
	var sentences []nlp.Sentence
	for i := range 9 {
		text := fmt.Sprintf("filler sentence number %d here", i)
		if i == 4 {
			text = "Osmosis is the diffusion of water"
		}
		sentences = append(sentences, sentence(text))
	}

	concepts := ExtractConcepts(sentences, 3)
	require.Len(t, concepts, 1)
	assert.NotContains(t, concepts[0].Context, "number 0")
	assert.Contains(t, concepts[0].Context, "number 1")
	assert.Contains(t, concepts[0].Context, "number 7")
	assert.NotContains(t, concepts[0].Context, "number 8")
}

func TestExtractConcepts_Relationship(t *testing.T) {
	tokens := []nlp.Token{
		nlp.NewToken("Neural", "JJ"), nlp.NewToken("networks", "NNS"), nlp.NewToken("learn", "VBP"),
		nlp.NewToken("patterns", "NNS"), nlp.NewToken("from", "IN"), nlp.NewToken("data", "NNS"), nlp.NewToken(".", "."),
	}
	nlp.LabelDependencies(tokens)

	concepts := ExtractConcepts([]nlp.Sentence{sentence("Neural networks learn patterns from data.", tokens...)}, DefaultContextWindow)
	require.Len(t, concepts, 1)

	c := concepts[0]
	assert.Equal(t, KindRelationship, c.Kind)
	assert.Equal(t, "learn", c.Verb)
	assert.Equal(t, []string{"networks"}, c.Subjects)
	assert.Equal(t, []string{"patterns"}, c.Objects)
	assert.Equal(t, "Neural networks learn patterns from data.", c.Context)
}

func TestExtractConcepts_RelationshipNeedsObject(t *testing.T) {
	tokens := []nlp.Token{nlp.NewToken("Cells", "NNS"), nlp.NewToken("divide", "VBP"), nlp.NewToken(".", ".")}
	nlp.LabelDependencies(tokens)

	concepts := ExtractConcepts([]nlp.Sentence{sentence("Cells divide.", tokens...)}, DefaultContextWindow)
	assert.Empty(t, concepts)
}
