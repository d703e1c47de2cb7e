package entities

// QuestionStyle selects what a question asks the learner to recognise.
type QuestionStyle string

const (
	StyleConjugate QuestionStyle = "conjugate" // pick the form for a pronoun/tense/mood
	StyleIdentify  QuestionStyle = "identify"  // name the tense/mood of a shown form
	StyleTransform QuestionStyle = "transform" // re-conjugate a shown form into another slot
	StyleBaseVerb  QuestionStyle = "base_verb" // pick the verb that produced a shown form
)

// OptionCount is the number of choices offered by every question.
const OptionCount = 4

// Question is a single multiple choice question.
type Question struct {
	Style        QuestionStyle
	Verb         Verb
	Pronoun      Pronoun
	Tense        Tense
	Mood         Mood
	Prompt       string
	Meta         string
	Options      []string
	CorrectIndex int
	Hint         string
}

// CorrectAnswer returns the text of the correct option.
func (q *Question) CorrectAnswer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// ValidIndex reports whether i addresses one of the options.
func (q *Question) ValidIndex(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// IsCorrect reports whether option i is the correct one.
func (q *Question) IsCorrect(i int) bool {
	return q.ValidIndex(i) && i == q.CorrectIndex
}
