package entities

// PronounCount is the number of person/number/gender slots in a conjugation table.
const PronounCount = 14

// Pronoun is one of the fourteen grammatical persons, in conjugation table order.
type Pronoun struct {
	Index  int    // position in the conjugation table (0-13)
	Label  string // English description, e.g. "3rd masc sing"
	Arabic string // Arabic independent pronoun
}

var pronouns = [PronounCount]Pronoun{
	{Index: 0, Label: "3rd masc sing", Arabic: "هو"},
	{Index: 1, Label: "3rd masc dual", Arabic: "هما"},
	{Index: 2, Label: "3rd masc pl", Arabic: "هم"},
	{Index: 3, Label: "3rd fem sing", Arabic: "هي"},
	{Index: 4, Label: "3rd fem dual", Arabic: "هما"},
	{Index: 5, Label: "3rd fem pl", Arabic: "هنّ"},
	{Index: 6, Label: "2nd masc sing", Arabic: "أنتَ"},
	{Index: 7, Label: "2nd dual", Arabic: "أنتما"},
	{Index: 8, Label: "2nd masc pl", Arabic: "أنتم"},
	{Index: 9, Label: "2nd fem sing", Arabic: "أنتِ"},
	{Index: 10, Label: "2nd dual (alt)", Arabic: "أنتما"},
	{Index: 11, Label: "2nd fem pl", Arabic: "أنتنّ"},
	{Index: 12, Label: "1st sing", Arabic: "أنا"},
	{Index: 13, Label: "1st pl", Arabic: "نحن"},
}

// Pronouns returns the fourteen pronouns in table order.
func Pronouns() []Pronoun {
	out := make([]Pronoun, PronounCount)
	copy(out, pronouns[:])
	return out
}

// PronounAt returns the pronoun at index i, wrapping around the table.
func PronounAt(i int) Pronoun {
	i %= PronounCount
	if i < 0 {
		i += PronounCount
	}
	return pronouns[i]
}

// Tense is the verb tense of a conjugation slot.
type Tense string

const (
	TensePast    Tense = "past"
	TensePresent Tense = "present"
)

// Mood is the mood of a present tense conjugation slot.
type Mood string

const (
	MoodNone        Mood = ""
	MoodIndicative  Mood = "indicative"
	MoodSubjunctive Mood = "subjunctive"
	MoodJussive     Mood = "jussive"
)

// Moods lists the moods available in the present tense.
var Moods = []Mood{MoodIndicative, MoodSubjunctive, MoodJussive}

// Label returns the display label of the mood, including its Arabic case name.
func (m Mood) Label() string {
	switch m {
	case MoodIndicative:
		return "Indicative (مرفوع)"
	case MoodSubjunctive:
		return "Subjunctive (منصوب)"
	case MoodJussive:
		return "Jussive (مجزوم)"
	default:
		return "—"
	}
}

// Slot is a tense/mood combination of a conjugation table.
type Slot struct {
	Tense Tense
	Mood  Mood
}

// NormalizeMood drops the mood of past tense slots and defaults present tense to indicative.
func NormalizeMood(t Tense, m Mood) Mood {
	if t == TensePast {
		return MoodNone
	}
	if m == MoodNone {
		return MoodIndicative
	}
	return m
}

// NewSlot returns a normalised slot.
func NewSlot(t Tense, m Mood) Slot {
	return Slot{Tense: t, Mood: NormalizeMood(t, m)}
}

// Slots returns the four tense/mood slots: past and the three present moods.
func Slots() []Slot {
	return []Slot{
		{Tense: TensePast},
		{Tense: TensePresent, Mood: MoodIndicative},
		{Tense: TensePresent, Mood: MoodSubjunctive},
		{Tense: TensePresent, Mood: MoodJussive},
	}
}

// Label returns a human readable description such as "present - Jussive (مجزوم)".
func (s Slot) Label() string {
	if s.Tense == TensePast || s.Mood == MoodNone {
		return string(s.Tense)
	}
	return string(s.Tense) + " - " + s.Mood.Label()
}

// Key returns a compact identifier such as "present-jussive".
func (s Slot) Key() string {
	if s.Mood == MoodNone {
		return string(s.Tense)
	}
	return string(s.Tense) + "-" + string(s.Mood)
}
