package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

var ErrNotEnoughVerbs = errors.New("not enough verbs to build questions")

var neighbourOffsets = []int{-2, -1, 1, 2}

// QuestionGenerator builds multiple choice questions from the verb table.
type QuestionGenerator struct {
	verbs   []entities.Verb
	conj    Conjugator
	options *OptionGenerator
	rng     *rand.Rand
}

// NewQuestionGenerator creates a generator over all verbs of repo.
func NewQuestionGenerator(repo VerbRepository, conj Conjugator, rng *rand.Rand) (*QuestionGenerator, error) {
	verbs := repo.GetAll()
	if len(verbs) < 2 {
		return nil, fmt.Errorf("got %d verbs: %w", len(verbs), ErrNotEnoughVerbs)
	}

	return &QuestionGenerator{
		verbs:   verbs,
		conj:    conj,
		options: NewOptionGenerator(rng),
		rng:     rng,
	}, nil
}

// Random builds a question of a random style for a random verb and slot.
func (g *QuestionGenerator) Random() *entities.Question {
	verb := g.randomVerb()
	slot := g.randomSlot()
	pronoun := entities.PronounAt(g.rng.Intn(entities.PronounCount))

	switch g.randomStyle() {
	case entities.StyleIdentify:
		return g.Identify(verb)
	case entities.StyleTransform:
		return g.Transform(verb, pronoun, g.randomSlot(), slot)
	case entities.StyleBaseVerb:
		return g.BaseVerb(g.sampleVerbs(entities.OptionCount), pronoun, slot)
	default:
		return g.Generate(verb, pronoun, slot.Tense, slot.Mood)
	}
}

// Generate asks for the form of verb for the given pronoun, tense and mood.
func (g *QuestionGenerator) Generate(verb entities.Verb, pronoun entities.Pronoun, tense entities.Tense, mood entities.Mood) *entities.Question {
	slot := entities.NewSlot(tense, mood)
	forms := g.conj.Table(verb, slot)
	correct := forms[pronoun.Index]

	candidates := make([]string, 0, 3*entities.PronounCount)

	// same pronoun, other tense
	candidates = append(candidates, g.conj.Conjugate(verb, pronoun, otherTense(slot.Tense), entities.MoodNone))
	// similar pronoun
	candidates = append(candidates, forms[g.neighbour(pronoun.Index)])
	// same pronoun and slot, different verb
	other := g.otherVerb(verb)
	candidates = append(candidates, g.conj.Conjugate(other, pronoun, slot.Tense, slot.Mood))
	// the rest of the table
	candidates = append(candidates, g.otherMoods(verb, pronoun, slot)...)
	candidates = append(candidates, g.shuffledExcept(forms, pronoun.Index)...)

	options, correctIndex := g.options.GenerateOptions(correct, candidates)

	return &entities.Question{
		Style:   entities.StyleConjugate,
		Verb:    verb,
		Pronoun: pronoun,
		Tense:   slot.Tense,
		Mood:    slot.Mood,
		Prompt: fmt.Sprintf("Select the correct conjugation for pronoun: %s (%s)\nBase verb: %s",
			pronoun.Label, pronoun.Arabic, verb.Past),
		Meta:         slotMeta(slot),
		Options:      options,
		CorrectIndex: correctIndex,
		Hint:         patternHint(verb),
	}
}

// Identify shows a conjugated form and asks for its tense and mood. The
// pronoun is chosen among those whose four forms differ, so that only one
// label fits.
func (g *QuestionGenerator) Identify(verb entities.Verb) *entities.Question {
	pronoun := g.unambiguousPronoun(verb)
	slots := entities.Slots()
	slot := slots[g.rng.Intn(len(slots))]
	form := g.conj.Conjugate(verb, pronoun, slot.Tense, slot.Mood)

	candidates := make([]string, 0, len(slots))
	for _, s := range slots {
		if s != slot {
			candidates = append(candidates, s.Label())
		}
	}
	options, correctIndex := g.options.GenerateOptions(slot.Label(), candidates)

	return &entities.Question{
		Style:        entities.StyleIdentify,
		Verb:         verb,
		Pronoun:      pronoun,
		Tense:        slot.Tense,
		Mood:         slot.Mood,
		Prompt:       fmt.Sprintf("Which tense/mood is this conjugated form?\n\n%s", form),
		Meta:         fmt.Sprintf("Pronoun: %s (%s)  Base verb hidden", pronoun.Label, pronoun.Arabic),
		Options:      options,
		CorrectIndex: correctIndex,
		Hint:         "Past forms carry no prefix; in the present the final vowel marks the mood: ـُ indicative, ـَ subjunctive, ـْ jussive.",
	}
}

// Transform shows the form of verb in slot from and asks for the same pronoun in slot to.
func (g *QuestionGenerator) Transform(verb entities.Verb, pronoun entities.Pronoun, from, to entities.Slot) *entities.Question {
	from = entities.NewSlot(from.Tense, from.Mood)
	to = entities.NewSlot(to.Tense, to.Mood)

	shown := g.conj.Conjugate(verb, pronoun, from.Tense, from.Mood)
	forms := g.conj.Table(verb, to)
	correct := forms[pronoun.Index]

	candidates := make([]string, 0, 3*entities.PronounCount)
	candidates = append(candidates, forms[(pronoun.Index+1)%entities.PronounCount])
	candidates = append(candidates, g.conj.Conjugate(g.otherVerb(verb), pronoun, to.Tense, to.Mood))
	candidates = append(candidates, g.conj.Conjugate(verb, pronoun, otherTense(to.Tense), to.Mood))
	candidates = append(candidates, g.otherMoods(verb, pronoun, to)...)
	candidates = append(candidates, g.shuffledExcept(forms, pronoun.Index)...)

	options, correctIndex := g.options.GenerateOptions(correct, candidates)

	return &entities.Question{
		Style:   entities.StyleTransform,
		Verb:    verb,
		Pronoun: pronoun,
		Tense:   to.Tense,
		Mood:    to.Mood,
		Prompt: fmt.Sprintf("Given this conjugated form (A): %s\nIf the same base verb were conjugated for: Tense=%s Mood=%s Pronoun=%s, which would it be?",
			shown, to.Tense, to.Mood.Label(), pronoun.Label),
		Meta:         fmt.Sprintf("Base verb: %s (conjugation A shown)", verb.Past),
		Options:      options,
		CorrectIndex: correctIndex,
		Hint:         patternHint(verb),
	}
}

// BaseVerb shows a form of verbs[0] and asks which of verbs produced it.
func (g *QuestionGenerator) BaseVerb(verbs []entities.Verb, pronoun entities.Pronoun, slot entities.Slot) *entities.Question {
	slot = entities.NewSlot(slot.Tense, slot.Mood)
	target := verbs[0]
	form := g.conj.Conjugate(target, pronoun, slot.Tense, slot.Mood)

	candidates := make([]string, 0, len(verbs)-1)
	for _, v := range verbs[1:] {
		candidates = append(candidates, v.Past)
	}
	options, correctIndex := g.options.GenerateOptions(target.Past, candidates)

	return &entities.Question{
		Style:        entities.StyleBaseVerb,
		Verb:         target,
		Pronoun:      pronoun,
		Tense:        slot.Tense,
		Mood:         slot.Mood,
		Prompt:       fmt.Sprintf("Which base verb produced this conjugation?\n\n%s", form),
		Meta:         fmt.Sprintf("Pronoun: %s  Tense: %s", pronoun.Label, slot.Tense),
		Options:      options,
		CorrectIndex: correctIndex,
		Hint:         fmt.Sprintf("Meaning: %s", target.Meaning),
	}
}

func (g *QuestionGenerator) randomStyle() entities.QuestionStyle {
	styles := []entities.QuestionStyle{entities.StyleConjugate, entities.StyleIdentify, entities.StyleTransform}
	if len(g.verbs) >= entities.OptionCount {
		styles = append(styles, entities.StyleBaseVerb)
	}
	return styles[g.rng.Intn(len(styles))]
}

func (g *QuestionGenerator) randomVerb() entities.Verb {
	return g.verbs[g.rng.Intn(len(g.verbs))]
}

// randomSlot picks past or present with equal odds, then a mood for the present.
func (g *QuestionGenerator) randomSlot() entities.Slot {
	if g.rng.Intn(2) == 0 {
		return entities.NewSlot(entities.TensePast, entities.MoodNone)
	}
	return entities.NewSlot(entities.TensePresent, entities.Moods[g.rng.Intn(len(entities.Moods))])
}

func (g *QuestionGenerator) otherVerb(verb entities.Verb) entities.Verb {
	others := make([]entities.Verb, 0, len(g.verbs))
	for _, v := range g.verbs {
		if v.Past != verb.Past {
			others = append(others, v)
		}
	}
	if len(others) == 0 {
		return verb
	}
	return others[g.rng.Intn(len(others))]
}

// sampleVerbs returns n distinct verbs in random order, fewer if the table is smaller.
func (g *QuestionGenerator) sampleVerbs(n int) []entities.Verb {
	perm := g.rng.Perm(len(g.verbs))
	if n > len(perm) {
		n = len(perm)
	}
	out := make([]entities.Verb, 0, n)
	for _, i := range perm[:n] {
		out = append(out, g.verbs[i])
	}
	return out
}

func (g *QuestionGenerator) neighbour(index int) int {
	offset := neighbourOffsets[g.rng.Intn(len(neighbourOffsets))]
	return ((index+offset)%entities.PronounCount + entities.PronounCount) % entities.PronounCount
}

func (g *QuestionGenerator) otherMoods(verb entities.Verb, pronoun entities.Pronoun, slot entities.Slot) []string {
	if slot.Tense != entities.TensePresent {
		return nil
	}
	out := make([]string, 0, len(entities.Moods)-1)
	for _, m := range entities.Moods {
		if m != slot.Mood {
			out = append(out, g.conj.Conjugate(verb, pronoun, entities.TensePresent, m))
		}
	}
	return out
}

func (g *QuestionGenerator) shuffledExcept(forms []string, skip int) []string {
	out := make([]string, 0, len(forms))
	for i, f := range forms {
		if i != skip {
			out = append(out, f)
		}
	}
	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// unambiguousPronoun picks a pronoun whose form differs in all four tense/mood
// slots, so that exactly one slot label is correct.
func (g *QuestionGenerator) unambiguousPronoun(verb entities.Verb) entities.Pronoun {
	slots := entities.Slots()
	tables := make([][]string, len(slots))
	for i, s := range slots {
		tables[i] = g.conj.Table(verb, s)
	}

	var ok []entities.Pronoun
	for _, p := range entities.Pronouns() {
		seen := make(map[string]struct{}, len(slots))
		for _, t := range tables {
			seen[optionKey(t[p.Index])] = struct{}{}
		}
		if len(seen) == len(slots) {
			ok = append(ok, p)
		}
	}

	if len(ok) == 0 {
		return entities.PronounAt(0)
	}
	return ok[g.rng.Intn(len(ok))]
}

func otherTense(t entities.Tense) entities.Tense {
	if t == entities.TensePast {
		return entities.TensePresent
	}
	return entities.TensePast
}

func slotMeta(slot entities.Slot) string {
	return fmt.Sprintf("Tense: %s  Mood: %s", slot.Tense, slot.Mood.Label())
}

func patternHint(verb entities.Verb) string {
	return fmt.Sprintf("Pattern: %s (bab %s) · %s = %s", verb.Bab.Pattern, verb.Bab.Key, verb.Past, verb.Meaning)
}
