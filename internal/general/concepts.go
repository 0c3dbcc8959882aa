package general

import (
	"regexp"
	"strings"

	"github.com/abhisek/studyquiz/internal/nlp"
)

// DefaultContextWindow is the number of sentences on each side of a source
// sentence that make up its context.
const DefaultContextWindow = 3

// Kind tags the variant held by a Concept.
type Kind string

const (
	KindDefinition   Kind = "definition"
	KindRelationship Kind = "relationship"
)

// Concept is a definition ("Term is Definition") or a subject-verb-object
// relationship found in a sentence.
type Concept struct {
	Kind Kind `json:"type"`

	// Definition fields.
	Term       string `json:"term,omitempty"`
	Definition string `json:"definition,omitempty"`

	// Relationship fields.
	Verb     string   `json:"verb,omitempty"`
	Subjects []string `json:"subjects,omitempty"`
	Objects  []string `json:"objects,omitempty"`

	Sentence string `json:"sentence"`
	Context  string `json:"context"`

	// contextTokens are the tokens of the context sentences.
	contextTokens []nlp.Token
}

var definitionPattern = regexp.MustCompile(`([A-Z][^.,:;]+)\s+(is|are|refers to|means|defines|represents|constitutes)\s+([^.,:;]+)`)

// ExtractConcepts scans every sentence for definitions and root-verb
// relationships. Each concept carries the text of the sentences within
// window positions of its source, joined by spaces.
func ExtractConcepts(sentences []nlp.Sentence, window int) []Concept {
	var concepts []Concept

	for i, s := range sentences {
		start := max(0, i-window)
		end := min(len(sentences), i+window+1)

		texts := make([]string, 0, end-start)
		var tokens []nlp.Token
		for _, w := range sentences[start:end] {
			texts = append(texts, w.Text)
			tokens = append(tokens, w.Tokens...)
		}
		context := strings.Join(texts, " ")

		for _, m := range definitionPattern.FindAllStringSubmatch(s.Text, -1) {
			concepts = append(concepts, Concept{
				Kind:          KindDefinition,
				Term:          strings.TrimSpace(m[1]),
				Definition:    strings.TrimSpace(m[3]),
				Sentence:      s.Text,
				Context:       context,
				contextTokens: tokens,
			})
		}

		if c, ok := relationship(s); ok {
			c.Context = context
			c.contextTokens = tokens
			concepts = append(concepts, c)
		}
	}
	return concepts
}

// relationship reads the subjects and objects attached to the root verb.
func relationship(s nlp.Sentence) (Concept, bool) {
	root := s.Root()
	if root < 0 || s.Tokens[root].POS != nlp.POSVerb {
		return Concept{}, false
	}

	var subjects, objects []string
	for _, j := range s.Lefts(root) {
		if dep := s.Tokens[j].Dep; dep == nlp.DepNsubj || dep == nlp.DepNsubjPass {
			subjects = append(subjects, s.Tokens[j].Text)
		}
	}
	for _, j := range s.Rights(root) {
		if dep := s.Tokens[j].Dep; dep == nlp.DepDobj || dep == nlp.DepPobj {
			objects = append(objects, s.Tokens[j].Text)
		}
	}
	if len(subjects) == 0 || len(objects) == 0 {
		return Concept{}, false
	}
	return Concept{
		Kind:     KindRelationship,
		Verb:     s.Tokens[root].Text,
		Subjects: subjects,
		Objects:  objects,
		Sentence: s.Text,
	}, true
}
