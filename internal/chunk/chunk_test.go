package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByHeaders_Fallback(t *testing.T) {
	tests := []struct {
		words  int
		window int
		want   int
	}{
		{0, 500, 0},
		{1, 500, 1},
		{500, 500, 1},
		{501, 500, 2},
		{1234, 500, 3},
		{10, 3, 4},
	}

	for _, tt := range tests {
		text := strings.TrimSpace(strings.Repeat("word ", tt.words))
		got := ByHeaders(text, "", tt.window)
		assert.Len(t, got, tt.want, "words=%d window=%d", tt.words, tt.window)
		for _, c := range got {
			assert.Equal(t, DefaultFallbackTopic, c.Topic)
			assert.LessOrEqual(t, len(strings.Fields(c.Content)), tt.window)
		}
	}
}

func TestByHeaders_FallbackTopic(t *testing.T) {
	got := ByHeaders("just some lower case words", "Chemistry", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "Chemistry", got[0].Topic)
	assert.Equal(t, "just some lower case words", got[0].Content)
}

func TestByHeaders_Headers(t *testing.T) {
	text := `Intro text before any header is ignored.
ACIDS AND BASES
Acids donate protons.
Bases accept them.
REDOX: REACTIONS
Oxidation is loss of electrons.
UNIT 3 - BONDING
Ionic bonds form between ions.`

	got := ByHeaders(text, "", 500)
	require.Len(t, got, 3)

	assert.Equal(t, "ACIDS AND BASES", got[0].Topic)
	assert.Equal(t, "Acids donate protons.\nBases accept them.", got[0].Content)
	assert.Equal(t, "REDOX: REACTIONS", got[1].Topic)
	assert.Equal(t, "Oxidation is loss of electrons.", got[1].Content)
	assert.Equal(t, "UNIT 3 - BONDING", got[2].Topic)
	assert.Equal(t, "Ionic bonds form between ions.", got[2].Content)
}

func TestByHeaders_NoGapsOrOverlaps(t *testing.T) {
	text := "FIRST SECTION\nalpha beta\nSECOND SECTION\ngamma\nTHIRD SECTION\ndelta epsilon"
	got := ByHeaders(text, "", 500)
	require.Len(t, got, 3)

	var rebuilt []string
	for _, c := range got {
		rebuilt = append(rebuilt, c.Topic, c.Content)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(rebuilt, "\n")))
}

func TestByHeaders_DropsEmptyChunks(t *testing.T) {
	text := "EMPTY SECTION\n   \nREAL SECTION\ncontent here"
	got := ByHeaders(text, "", 500)
	require.Len(t, got, 1)
	assert.Equal(t, "REAL SECTION", got[0].Topic)
}

func TestByHeaders_ShortCapsAreNotHeaders(t *testing.T) {
	// "NACL" is only four characters long and "Acids" is mixed case.
	got := ByHeaders("NACL\nAcids\nmore text", "", 500)
	require.Len(t, got, 1)
	assert.Equal(t, DefaultFallbackTopic, got[0].Topic)
}
