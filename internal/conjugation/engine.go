package conjugation

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

const (
	yaa        = 'ي'
	taa        = 'ت'
	nuun       = 'ن'
	alifHamza  = 'أ'
	firstAlpha = 'ء' // hamza
	lastAlpha  = 'ي' // yaa
)

// weak letters and hamza carriers change the stem in ways the engine does not model.
var weakLetters = map[rune]struct{}{
	'ء': {},
	'آ': {},
	'أ': {},
	'ؤ': {},
	'إ': {},
	'ئ': {},
	'ا': {},
	'ة': {},
	'و': {},
	'ى': {},
	'ي': {},
}

// Suffixes of the past tense, in pronoun order.
var pastSuffixes = [entities.PronounCount]string{
	"َ",
	"َا",
	"ُوا",
	"َتْ",
	"َتَا",
	"ْنَ",
	"ْتَ",
	"ْتُمَا",
	"ْتُمْ",
	"ْتِ",
	"ْتُمَا",
	"ْتُنَّ",
	"ْتُ",
	"ْنَا",
}

// Prefix letters of the present tense, in pronoun order.
var presentPrefixes = [entities.PronounCount]rune{
	yaa, yaa, yaa, taa, taa, yaa, taa, taa, taa, taa, taa, taa, alifHamza, nuun,
}

// Endings of the present tense per mood, in pronoun order.
var presentEndings = map[entities.Mood][entities.PronounCount]string{
	entities.MoodIndicative: {
		"ُ", "َانِ", "ُونَ",
		"ُ", "َانِ", "ْنَ",
		"ُ", "َانِ", "ُونَ",
		"ِينَ", "َانِ", "ْنَ",
		"ُ", "ُ",
	},
	entities.MoodSubjunctive: {
		"َ", "َا", "ُوا",
		"َ", "َا", "ْنَ",
		"َ", "َا", "ُوا",
		"ِي", "َا", "ْنَ",
		"َ", "َ",
	},
	entities.MoodJussive: {
		"ْ", "َا", "ُوا",
		"ْ", "َا", "ْنَ",
		"ْ", "َا", "ُوا",
		"ِي", "َا", "ْنَ",
		"ْ", "ْ",
	},
}

// Engine conjugates sound triliteral Form I verbs by rule.
type Engine struct{}

// NewEngine returns a rule based conjugation engine.
func NewEngine() Engine {
	return Engine{}
}

// Conjugate implements Provider.
func (Engine) Conjugate(v entities.Verb, p entities.Pronoun, t entities.Tense, m entities.Mood) (string, error) {
	if err := checkRoot(v); err != nil {
		return "", err
	}
	if p.Index < 0 || p.Index >= entities.PronounCount {
		return "", fmt.Errorf("pronoun %d: %w", p.Index, ErrInvalidSlot)
	}

	f, a, l := v.Root[0], v.Root[1], v.Root[2]
	m = entities.NormalizeMood(t, m)

	var b strings.Builder
	switch t {
	case entities.TensePast:
		b.WriteRune(f)
		b.WriteRune(entities.Fatha)
		b.WriteRune(a)
		b.WriteRune(v.Bab.PastVowel)
		b.WriteRune(l)
		writeSuffix(&b, l, pastSuffixes[p.Index])

	case entities.TensePresent:
		endings, ok := presentEndings[m]
		if !ok {
			return "", fmt.Errorf("mood %q: %w", m, ErrInvalidSlot)
		}
		b.WriteRune(presentPrefixes[p.Index])
		b.WriteRune(entities.Fatha)
		b.WriteRune(f)
		b.WriteRune(entities.Sukun)
		b.WriteRune(a)
		b.WriteRune(v.Bab.PresentVowel)
		b.WriteRune(l)
		writeSuffix(&b, l, endings[p.Index])

	default:
		return "", fmt.Errorf("tense %q: %w", t, ErrInvalidSlot)
	}

	return norm.NFC.String(b.String()), nil
}

// writeSuffix appends suffix after the last radical, assimilating a suffix
// consonant identical to the radical into a shadda (سَكَتُّ, يَسْكُنَّ).
// The shadda is written first; Conjugate normalises the mark order.
func writeSuffix(b *strings.Builder, last rune, suffix string) {
	rs := []rune(suffix)
	if len(rs) >= 2 && rs[0] == entities.Sukun && rs[1] == last {
		b.WriteRune(entities.Shadda)
		b.WriteString(string(rs[2:]))
		return
	}
	b.WriteString(suffix)
}

func checkRoot(v entities.Verb) error {
	if !v.HasTriliteralRoot() {
		return fmt.Errorf("%q: expected three radicals: %w", v.RootString(), ErrUnsupportedRoot)
	}
	if v.Bab.PastVowel == 0 || v.Bab.PresentVowel == 0 {
		return fmt.Errorf("%q: missing bab: %w", v.RootString(), ErrUnsupportedRoot)
	}
	for _, r := range v.Root {
		if r < firstAlpha || r > lastAlpha {
			return fmt.Errorf("%q: non-Arabic radical %q: %w", v.RootString(), r, ErrUnsupportedRoot)
		}
		if _, weak := weakLetters[r]; weak {
			return fmt.Errorf("%q: weak or hamzated radical: %w", v.RootString(), ErrUnsupportedRoot)
		}
	}
	if v.Root[1] == v.Root[2] {
		return fmt.Errorf("%q: doubled root: %w", v.RootString(), ErrUnsupportedRoot)
	}
	return nil
}
