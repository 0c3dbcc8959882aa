// Package flashcards generates front/back study cards from a document with a
// language model, one request per header chunk.
package flashcards

// Flashcard is one study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// List is the flashcard output of one document.
type List struct {
	Items []Flashcard `json:"items"`
}
