// Package chunk splits document text into topic-labelled chunks.
package chunk

import (
	"regexp"
	"strings"
)

// Defaults used when callers pass zero values.
const (
	DefaultWindowSize    = 500
	DefaultFallbackTopic = "General"
)

// headerPattern matches a whole line of at least six upper-case letters,
// digits, spaces, tabs, hyphens or colons, starting with a letter.
var headerPattern = regexp.MustCompile(`(?m)^[A-Z][A-Z0-9 \t:\-]{5,}$`)

// Chunk is a topic-labelled span of document text.
type Chunk struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

// ByHeaders splits text on header lines. Each header's chunk runs from the
// end of its line to the start of the next header. Chunks whose trimmed
// content is empty are dropped.
//
// When no header is present the text is split into windows of windowSize
// whitespace-delimited words, each labelled fallbackTopic.
func ByHeaders(text, fallbackTopic string, windowSize int) []Chunk {
	if fallbackTopic == "" {
		fallbackTopic = DefaultFallbackTopic
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	matches := headerPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return byWords(text, fallbackTopic, windowSize)
	}

	var chunks []Chunk
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(text[m[1]:end])
		if content == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			Topic:   strings.TrimSpace(text[m[0]:m[1]]),
			Content: content,
		})
	}
	return chunks
}

func byWords(text, topic string, size int) []Chunk {
	words := strings.Fields(text)
	chunks := make([]Chunk, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, Chunk{
			Topic:   topic,
			Content: strings.Join(words[start:end], " "),
		})
	}
	return chunks
}
