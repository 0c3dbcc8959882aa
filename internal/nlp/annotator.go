// Package nlp defines the linguistic annotation consumed by the general
// pipeline and a default implementation backed by prose.
package nlp

import "context"

// Annotator splits text into sentences and annotates every token with
// part-of-speech, dependency, noun chunks and named entities.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Document, error)
}

// Document is the annotation of one text.
type Document struct {
	Sentences []Sentence `json:"sentences"`
}

// Sentence is one annotated sentence.
type Sentence struct {
	Text       string   `json:"text"`
	Tokens     []Token  `json:"tokens"`
	NounChunks []Span   `json:"noun_chunks,omitempty"`
	Entities   []Entity `json:"entities,omitempty"`
}

// Token is a single annotated word or punctuation mark.
type Token struct {
	Text string `json:"text"`

	// Tag is the Penn Treebank tag, POS the universal part of speech.
	Tag string `json:"tag"`
	POS string `json:"pos"`

	// Dep is the dependency label and Head the index of the governing token
	// within the sentence. The root is its own head.
	Dep  string `json:"dep"`
	Head int    `json:"head"`

	IsStop  bool `json:"is_stop"`
	IsAlpha bool `json:"is_alpha"`
}

// Span is a half-open token range [Start, End) of a sentence.
type Span struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Entity is a named entity.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Universal part-of-speech tags.
const (
	POSNoun  = "NOUN"
	POSPropn = "PROPN"
	POSPron  = "PRON"
	POSVerb  = "VERB"
	POSAux   = "AUX"
	POSAdj   = "ADJ"
	POSAdv   = "ADV"
	POSAdp   = "ADP"
	POSDet   = "DET"
	POSNum   = "NUM"
	POSCconj = "CCONJ"
	POSPart  = "PART"
	POSPunct = "PUNCT"
	POSX     = "X"
)

// Dependency labels assigned by LabelDependencies.
const (
	DepRoot      = "ROOT"
	DepNsubj     = "nsubj"
	DepNsubjPass = "nsubjpass"
	DepDobj      = "dobj"
	DepAttr      = "attr"
	DepPobj      = "pobj"
	DepPrep      = "prep"
	DepAux       = "aux"
	DepAuxPass   = "auxpass"
	DepCompound  = "compound"
	DepDet       = "det"
	DepAmod      = "amod"
	DepNummod    = "nummod"
	DepAdvmod    = "advmod"
	DepCC        = "cc"
	DepPunct     = "punct"
	DepDep       = "dep"
)

// Root returns the index of the root token, or -1.
func (s Sentence) Root() int {
	for i, t := range s.Tokens {
		if t.Dep == DepRoot {
			return i
		}
	}
	return -1
}

// Lefts returns the indices of the direct children of token i that precede it.
func (s Sentence) Lefts(i int) []int {
	var out []int
	for j := 0; j < i && j < len(s.Tokens); j++ {
		if s.Tokens[j].Head == i {
			out = append(out, j)
		}
	}
	return out
}

// Rights returns the indices of the direct children of token i that follow it.
func (s Sentence) Rights(i int) []int {
	var out []int
	for j := i + 1; j < len(s.Tokens); j++ {
		if s.Tokens[j].Head == i {
			out = append(out, j)
		}
	}
	return out
}
