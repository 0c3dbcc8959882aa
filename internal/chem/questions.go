package chem

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/studyquiz/internal/logger"
	"github.com/abhisek/studyquiz/internal/quiz"
)

// DefaultMinQuestions is the floor the backfill step tops candidates up to.
const DefaultMinQuestions = 5

var (
	reactionOptions = []string{"Synthesis", "Decomposition", "Single Displacement", "Double Displacement", "Combustion"}
	geometryOptions = []string{"linear", "bent", "trigonal planar", "tetrahedral", "trigonal pyramidal", "octahedral"}
	hybridOptions   = []string{"sp", "sp2", "sp3", "sp3d", "sp3d2"}
	blockOptions    = []string{"s", "p", "d", "f"}
)

type cannedQuestion struct {
	prompt     string
	answer     quiz.Answer
	options    []string
	difficulty quiz.Difficulty
}

func (c cannedQuestion) build() quiz.Question {
	t := quiz.TypeShortAnswer
	switch {
	case c.answer.IsBool():
		t = quiz.TypeTrueFalse
	case len(c.options) > 0:
		t = quiz.TypeMultipleChoice
	}
	q := quiz.New(t, c.prompt, c.answer, c.difficulty)
	q.Options = slices.Clone(c.options)
	return q
}

var conceptBank = map[ConceptType][]cannedQuestion{
	ConceptAcidBase: {
		{
			prompt:     "True or False: According to the Arrhenius definition, acids donate protons (H+) in aqueous solutions.",
			answer:     quiz.BoolAnswer(true),
			difficulty: quiz.DifficultyMedium,
		},
		{
			prompt:     "Which of the following is an acid according to the Brønsted-Lowry definition?",
			answer:     quiz.TextAnswer("Proton donor"),
			options:    []string{"Proton donor", "Proton acceptor", "Electron donor", "Electron acceptor"},
			difficulty: quiz.DifficultyMedium,
		},
	},
	ConceptRedox: {{
		prompt:     "In a redox reaction, what happens to the element being oxidized?",
		answer:     quiz.TextAnswer("It loses electrons"),
		options:    []string{"It loses electrons", "It gains electrons", "Its oxidation number decreases", "It becomes more electronegative"},
		difficulty: quiz.DifficultyMedium,
	}},
	ConceptBonding: {{
		prompt:     "Which type of bonding occurs between atoms with large differences in electronegativity?",
		answer:     quiz.TextAnswer("Ionic"),
		options:    []string{"Ionic", "Covalent", "Metallic", "Hydrogen"},
		difficulty: quiz.DifficultyMedium,
	}},
	ConceptPeriodicTable: {{
		prompt:     "As you move from left to right across a period in the periodic table, what generally happens to atomic radius?",
		answer:     quiz.TextAnswer("It decreases"),
		options:    []string{"It decreases", "It increases", "It remains constant", "It increases then decreases"},
		difficulty: quiz.DifficultyHard,
	}},
}

var pharmacyBank = map[ConceptType][]cannedQuestion{
	ConceptStereochemistry: {{
		prompt: "What is the significance of chirality in drug action?",
		answer: quiz.TextAnswer("Different enantiomers can have different biological effects"),
		options: []string{
			"Different enantiomers can have different biological effects",
			"Chiral drugs are always more potent",
			"Stereochemistry has no effect on drug action",
			"All drug molecules must be chiral",
		},
		difficulty: quiz.DifficultyMedium,
	}},
	ConceptPharmacokinetics: {{
		prompt:     "What does ADME stand for in pharmacokinetics?",
		answer:     quiz.TextAnswer("Absorption, Distribution, Metabolism, Excretion"),
		difficulty: quiz.DifficultyMedium,
	}},
	ConceptDrugTarget: {{
		prompt:     "What is the difference between an agonist and an antagonist?",
		answer:     quiz.TextAnswer("An agonist activates a receptor while an antagonist blocks or reduces receptor activity"),
		difficulty: quiz.DifficultyMedium,
	}},
}

// Synthesizer turns extracted chemistry content into quiz questions.
type Synthesizer struct {
	rand         quiz.Rand
	log          *logger.Logger
	minQuestions int
}

// NewSynthesizer creates a synthesizer drawing randomness from r.
// A nil logger discards output.
func NewSynthesizer(r quiz.Rand, log *logger.Logger) *Synthesizer {
	return &Synthesizer{rand: r, log: logger.OrNop(log), minQuestions: DefaultMinQuestions}
}

// WithMinQuestions sets the backfill floor. Values below 1 keep the default.
func (s *Synthesizer) WithMinQuestions(n int) *Synthesizer {
	if n > 0 {
		s.minQuestions = n
	}
	return s
}

// Generate builds all candidate questions for c, tops them up from the
// detected formulas, orders them easy to hard and returns at most n with a
// balanced mix of question types.
func (s *Synthesizer) Generate(c Content, n int) []quiz.Question {
	var qs []quiz.Question
	qs = append(qs, s.formulaQuestions(c)...)
	qs = append(qs, s.equationQuestions(c)...)
	qs = append(qs, s.elementQuestions(c)...)
	qs = append(qs, bankQuestions(c, conceptBank)...)
	if len(c.Formulas) > 0 {
		qs = append(qs, s.structureQuestions(c)...)
	}
	qs = append(qs, s.nomenclatureQuestions(c)...)
	qs = append(qs, bankQuestions(c, pharmacyBank)...)

	floor := min(s.minQuestions, n)
	for len(qs) < floor && len(c.Formulas) > 0 {
		f := quiz.Choice(s.rand, c.Formulas)
		qs = append(qs, quiz.New(quiz.TypeShortAnswer,
			fmt.Sprintf("Write the chemical formula for %s.", CompoundName(f)),
			quiz.TextAnswer(f), quiz.DifficultyEasy))
	}

	valid := qs[:0]
	for _, q := range qs {
		if err := quiz.Validate(q); err != nil {
			s.log.Warn("dropping invalid question", "error", err)
			continue
		}
		valid = append(valid, q)
	}

	slices.SortStableFunc(valid, func(a, b quiz.Question) int {
		return a.Difficulty.Rank() - b.Difficulty.Rank()
	})
	return quiz.Diversify(valid, n, quiz.ByDifficultyDesc)
}

func (s *Synthesizer) formulaQuestions(c Content) []quiz.Question {
	var qs []quiz.Question

	names := make([]string, len(Compounds))
	for i, k := range Compounds {
		names[i] = k.Name
	}

	for _, k := range Compounds {
		if !slices.Contains(c.Formulas, k.Formula) && !slices.Contains(c.CompoundMentions, k) {
			continue
		}
		qs = append(qs, quiz.New(quiz.TypeShortAnswer,
			fmt.Sprintf("What is the chemical formula for %s?", k.Name),
			quiz.TextAnswer(k.Formula), quiz.DifficultyEasy))

		others := slices.DeleteFunc(slices.Clone(names), func(n string) bool { return n == k.Name })
		options := append([]string{k.Name}, quiz.Sample(s.rand, others, 3)...)
		quiz.ShuffleStrings(s.rand, options)
		qs = append(qs, quiz.NewMultipleChoice(
			fmt.Sprintf("What is the name of the compound with the formula %s?", k.Formula),
			k.Name, options, quiz.DifficultyEasy))
	}

	for _, f := range c.Formulas {
		comp, err := ParseFormula(f)
		if err != nil {
			s.log.Debug("skipping atom count question", "formula", f, "error", err)
			continue
		}
		if len(comp) < 2 {
			continue
		}
		symbol := quiz.Choice(s.rand, comp.Symbols())
		qs = append(qs, quiz.New(quiz.TypeShortAnswer,
			fmt.Sprintf("How many atoms of %s are in one molecule of %s?", ElementName(symbol), f),
			quiz.TextAnswer(strconv.Itoa(comp[symbol])), quiz.DifficultyMedium))
	}
	return qs
}

func (s *Synthesizer) equationQuestions(c Content) []quiz.Question {
	var qs []quiz.Question
	for _, line := range c.Equations {
		eq := equationSpan(line)
		if rt := ClassifyReaction(eq); rt != Unknown {
			answer := rt.Title()
			options := slices.Clone(reactionOptions)
			if !slices.Contains(options, answer) {
				options = append(options, answer)
			}
			qs = append(qs, quiz.NewMultipleChoice(
				fmt.Sprintf("What type of reaction is represented by the equation: %s?", eq),
				answer, options, quiz.DifficultyMedium))
		}

		if !hasLeadingCoefficient(eq) {
			balanced, err := Balance(eq)
			switch {
			case err != nil:
				s.log.Debug("equation not balanced", "equation", eq, "error", err)
			case balanced != eq:
				qs = append(qs, quiz.New(quiz.TypeShortAnswer,
					"Balance the following chemical equation: "+eq,
					quiz.TextAnswer(balanced), quiz.DifficultyHard))
			}
		}

		reactants, products, ok := strings.Cut(eq, Arrow)
		if !ok || strings.Contains(products, Arrow) {
			continue
		}
		qs = append(qs,
			quiz.New(quiz.TypeShortAnswer,
				fmt.Sprintf("In the equation %s, what are the reactants?", eq),
				quiz.TextAnswer(strings.TrimSpace(reactants)), quiz.DifficultyEasy),
			quiz.New(quiz.TypeShortAnswer,
				fmt.Sprintf("In the equation %s, what are the products?", eq),
				quiz.TextAnswer(strings.TrimSpace(products)), quiz.DifficultyEasy),
		)
	}
	return qs
}

func (s *Synthesizer) elementQuestions(c Content) []quiz.Question {
	var qs []quiz.Question
	for _, e := range c.ElementMentions {
		qs = append(qs, quiz.New(quiz.TypeShortAnswer,
			fmt.Sprintf("What is the chemical symbol for %s?", e.Name),
			quiz.TextAnswer(e.Symbol), quiz.DifficultyEasy))

		if v, ok := Valencies[e.Symbol]; ok {
			qs = append(qs, quiz.New(quiz.TypeShortAnswer,
				fmt.Sprintf("What is the valency of %s?", e.Name),
				quiz.TextAnswer(strconv.Itoa(v)), quiz.DifficultyMedium))
		}

		info, ok := Periodic[e.Symbol]
		if !ok {
			continue
		}
		g, p := info.Group, info.Period
		qs = append(qs,
			quiz.NewMultipleChoice(
				fmt.Sprintf("In which group of the periodic table is %s located?", e.Name),
				strconv.Itoa(g),
				[]string{strconv.Itoa(g), strconv.Itoa((g+2)%18 + 1), strconv.Itoa((g+5)%18 + 1), strconv.Itoa((g+8)%18 + 1)},
				quiz.DifficultyMedium),
			quiz.NewMultipleChoice(
				fmt.Sprintf("In which period of the periodic table is %s located?", e.Name),
				strconv.Itoa(p),
				[]string{strconv.Itoa(p), strconv.Itoa((p+1)%7 + 1), strconv.Itoa((p+2)%7 + 1), strconv.Itoa((p+3)%7 + 1)},
				quiz.DifficultyMedium),
			quiz.NewMultipleChoice(
				fmt.Sprintf("To which block of the periodic table does %s belong?", e.Name),
				info.Block, slices.Clone(blockOptions), quiz.DifficultyHard),
		)
	}
	return qs
}

// bankQuestions emits the canned questions of every concept type found in
// c, once per type.
func bankQuestions(c Content, bank map[ConceptType][]cannedQuestion) []quiz.Question {
	var qs []quiz.Question
	seen := make(map[ConceptType]bool)
	for _, m := range c.Concepts {
		entries, ok := bank[m.Type]
		if !ok || seen[m.Type] {
			continue
		}
		seen[m.Type] = true
		for _, e := range entries {
			qs = append(qs, e.build())
		}
	}
	return qs
}

func (s *Synthesizer) structureQuestions(c Content) []quiz.Question {
	var qs []quiz.Question
	for _, f := range c.Formulas {
		if geometry, ok := Geometries[f]; ok {
			options := slices.Clone(geometryOptions)
			if !slices.Contains(options, geometry) {
				options = append(options, geometry)
			}
			qs = append(qs, quiz.NewMultipleChoice(
				fmt.Sprintf("What is the molecular geometry of %s?", f),
				geometry, options, quiz.DifficultyHard))

			// Hybridization is only asked alongside a known geometry.
			if hybrid, ok := Hybridizations[f]; ok {
				qs = append(qs, quiz.NewMultipleChoice(
					fmt.Sprintf("What is the hybridization of the central atom in %s?", f),
					hybrid, slices.Clone(hybridOptions), quiz.DifficultyHard))
			}
		}
	}
	return qs
}

func (s *Synthesizer) nomenclatureQuestions(c Content) []quiz.Question {
	var qs []quiz.Question
	for _, f := range c.Formulas {
		name, ok := IUPACNames[f]
		if !ok {
			continue
		}
		qs = append(qs,
			quiz.New(quiz.TypeShortAnswer,
				fmt.Sprintf("What is the IUPAC name for the compound with formula %s?", f),
				quiz.TextAnswer(name), quiz.DifficultyMedium),
			quiz.New(quiz.TypeShortAnswer,
				fmt.Sprintf("Write the chemical formula for %s.", name),
				quiz.TextAnswer(f), quiz.DifficultyMedium),
		)
	}
	for _, f := range c.Formulas {
		if name, ok := SaltNames[f]; ok {
			qs = append(qs, quiz.New(quiz.TypeShortAnswer,
				fmt.Sprintf("What is the name of the ionic compound %s?", f),
				quiz.TextAnswer(name), quiz.DifficultyEasy))
		}
	}
	return qs
}
