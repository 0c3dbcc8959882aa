package general

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyquiz/internal/logger"
	"github.com/abhisek/studyquiz/internal/quiz"
)

const blank = "________"

var copulas = map[string]bool{"is": true, "are": true, "was": true, "were": true}

// Synthesizer turns concepts into curated questions.
type Synthesizer struct {
	rand quiz.Rand
	log  *logger.Logger
	opts Options
}

// NewSynthesizer creates a synthesizer. Zero thresholds in opts select the
// defaults.
func NewSynthesizer(r quiz.Rand, log *logger.Logger, opts Options) *Synthesizer {
	return &Synthesizer{rand: r, log: logger.OrNop(log), opts: opts.withDefaults()}
}

// Generate builds candidate questions from concepts, then scores,
// deduplicates and diversifies them down to at most n.
func (s *Synthesizer) Generate(concepts []Concept, n int) []quiz.Question {
	var definitions []string
	for _, c := range concepts {
		if c.Kind == KindDefinition {
			definitions = append(definitions, c.Definition)
		}
	}

	var candidates []quiz.Question
	for _, c := range concepts {
		switch c.Kind {
		case KindDefinition:
			candidates = append(candidates, s.fromDefinition(c, definitions)...)
		case KindRelationship:
			candidates = append(candidates, s.fromRelationship(c))
		}
	}

	var valid []quiz.Question
	for _, q := range candidates {
		if err := quiz.Validate(q); err != nil {
			s.log.Warn("dropping invalid question", "error", err)
			continue
		}
		valid = append(valid, q)
	}

	scored := quiz.Score(valid)
	unique := quiz.Dedup(scored, s.opts.SimilarityThreshold)
	out := quiz.Diversify(unique, n, quiz.ByScoreDesc)
	s.log.Debug("synthesized questions",
		"candidates", len(candidates), "unique", len(unique), "selected", len(out))
	return out
}

func (s *Synthesizer) fromDefinition(c Concept, definitions []string) []quiz.Question {
	withSource := func(q quiz.Question) quiz.Question {
		q.Context = c.Context
		q.SourceSentence = c.Sentence
		return q
	}

	short := withSource(quiz.New(quiz.TypeShortAnswer,
		fmt.Sprintf("What is %s?", c.Term), quiz.TextAnswer(c.Definition), quiz.DifficultyMedium))

	cloze := withSource(quiz.New(quiz.TypeCloze,
		"Fill in the blank: "+strings.ReplaceAll(c.Sentence, c.Term, blank),
		quiz.TextAnswer(c.Term), quiz.DifficultyEasy))

	truth := s.rand.Float64() > 0.5
	statement := fmt.Sprintf("%s is %s.", c.Term, c.Definition)
	if !truth {
		statement = fmt.Sprintf("%s is not %s.", c.Term, c.Definition)
	}
	trueFalse := withSource(quiz.New(quiz.TypeTrueFalse,
		"True or False: "+statement, quiz.BoolAnswer(truth), quiz.DifficultyEasy))

	options := append(s.distractors(c, definitions), c.Definition)
	quiz.ShuffleStrings(s.rand, options)
	mc := withSource(quiz.NewMultipleChoice(
		fmt.Sprintf("Which of the following best describes %s?", c.Term),
		c.Definition, options, quiz.DifficultyMedium))

	return []quiz.Question{short, cloze, trueFalse, mc}
}

func (s *Synthesizer) fromRelationship(c Concept) quiz.Question {
	subject := c.Subjects[0]
	prompt := fmt.Sprintf("What does %s %s?", subject, c.Verb)
	if copulas[strings.ToLower(c.Verb)] {
		prompt = fmt.Sprintf("What %s %s?", c.Verb, subject)
	}
	q := quiz.New(quiz.TypeShortAnswer, prompt, quiz.TextAnswer(c.Objects[0]), quiz.DifficultyMedium)
	q.Context = c.Context
	q.SourceSentence = c.Sentence
	return q
}
