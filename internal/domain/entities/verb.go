// Package entities contains domain entities used across the application.
package entities

import "unicode/utf8"

// Short vowel marks (harakat) used when building vocalised forms.
const (
	Fatha  = '\u064E'
	Damma  = '\u064F'
	Kasra  = '\u0650'
	Sukun  = '\u0652'
	Shadda = '\u0651'
)

// IsHaraka reports whether r is one of the Arabic short vowel or tanwin marks.
func IsHaraka(r rune) bool {
	return (r >= '\u064B' && r <= '\u0652') || r == '\u0670'
}

// BabKey identifies one of the six classical patterns of Form I triliteral verbs.
type BabKey string

const (
	BabNasara BabKey = "nasara" // fa'ala / yaf'ulu
	BabDaraba BabKey = "daraba" // fa'ala / yaf'ilu
	BabFataha BabKey = "fataha" // fa'ala / yaf'alu
	BabSamia  BabKey = "samia"  // fa'ila / yaf'alu
	BabKaruma BabKey = "karuma" // fa'ula / yaf'ulu
	BabHasiba BabKey = "hasiba" // fa'ila / yaf'ilu
)

// Bab describes the vowel on the second radical in the past and present stems.
type Bab struct {
	Key          BabKey
	PastVowel    rune   // vowel on the second radical in the past tense
	PresentVowel rune   // vowel on the second radical in the present tense
	Pattern      string // vocalised model forms, e.g. "فَعَلَ يَفْعُلُ"
}

var babs = map[BabKey]Bab{
	BabNasara: {Key: BabNasara, PastVowel: Fatha, PresentVowel: Damma, Pattern: "فَعَلَ يَفْعُلُ"},
	BabDaraba: {Key: BabDaraba, PastVowel: Fatha, PresentVowel: Kasra, Pattern: "فَعَلَ يَفْعِلُ"},
	BabFataha: {Key: BabFataha, PastVowel: Fatha, PresentVowel: Fatha, Pattern: "فَعَلَ يَفْعَلُ"},
	BabSamia:  {Key: BabSamia, PastVowel: Kasra, PresentVowel: Fatha, Pattern: "فَعِلَ يَفْعَلُ"},
	BabKaruma: {Key: BabKaruma, PastVowel: Damma, PresentVowel: Damma, Pattern: "فَعُلَ يَفْعُلُ"},
	BabHasiba: {Key: BabHasiba, PastVowel: Kasra, PresentVowel: Kasra, Pattern: "فَعِلَ يَفْعِلُ"},
}

// LookupBab returns the bab registered under key.
func LookupBab(key BabKey) (Bab, bool) {
	b, ok := babs[key]
	return b, ok
}

// Verb is a sample Form I verb used to build questions.
type Verb struct {
	Past            string // past tense, third person masculine singular, with harakat
	Root            []rune // three root letters
	Bab             Bab
	Transliteration string
	Meaning         string
}

// HasTriliteralRoot reports whether the verb carries exactly three root letters.
func (v Verb) HasTriliteralRoot() bool {
	return len(v.Root) == 3
}

// RootString returns the root letters joined without vowels.
func (v Verb) RootString() string {
	buf := make([]byte, 0, len(v.Root)*utf8.UTFMax)
	for _, r := range v.Root {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}
