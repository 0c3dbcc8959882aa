package flashcards

import "github.com/abhisek/studyquiz/internal/quiz"

// FromQuestions turns generated questions into cards without a model: the
// prompt on the front and the correct answer on the back.
func FromQuestions(qs []quiz.Question) List {
	list := List{Items: make([]Flashcard, 0, len(qs))}
	for _, q := range qs {
		list.Items = append(list.Items, Flashcard{Front: q.Prompt, Back: q.Answer.String()})
	}
	return list
}
