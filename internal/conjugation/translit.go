package conjugation

import (
	"strings"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

var consonants = map[rune]string{
	'ء': "'", 'أ': "'", 'إ': "'", 'ؤ': "'", 'ئ': "'", 'آ': "'aa",
	'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j", 'ح': "h", 'خ': "kh",
	'د': "d", 'ذ': "dh", 'ر': "r", 'ز': "z", 'س': "s", 'ش': "sh",
	'ص': "s", 'ض': "d", 'ط': "t", 'ظ': "z", 'ع': "'", 'غ': "gh",
	'ف': "f", 'ق': "q", 'ك': "k", 'ل': "l", 'م': "m", 'ن': "n",
	'ه': "h", 'و': "w", 'ي': "y", 'ة': "h", 'ى': "a",
}

// Transliterate renders a vocalised Arabic form in simple Latin letters,
// e.g. يَكْتُبُ -> yaktubu. Long vowels are doubled (كَتَبَا -> katabaa)
// and word-initial hamza is dropped (أَكْتُبُ -> aktubu). A shadda doubles
// its consonant whether it is written before or after the vowel.
func Transliterate(s string) string {
	var (
		b       strings.Builder
		prev    string // Latin text of the previous consonant, for shadda
		vowel   rune   // short vowel on the previous consonant
		atStart = true
	)

	for _, r := range shaddaFirst(s) {
		switch {
		case r == entities.Fatha:
			b.WriteByte('a')
			vowel = r
		case r == entities.Damma:
			b.WriteByte('u')
			vowel = r
		case r == entities.Kasra:
			b.WriteByte('i')
			vowel = r
		case r == entities.Sukun:
			vowel = r
		case r == entities.Shadda:
			b.WriteString(prev)
		case r == 'ا' && vowel == entities.Fatha:
			b.WriteByte('a')
			vowel = 0
		case r == 'ا':
			// silent alif after waw of the plural (كَتَبُوا)
			vowel = 0
		case r == 'و' && vowel == entities.Damma:
			b.WriteByte('u')
			vowel = 0
		case r == 'ي' && vowel == entities.Kasra:
			b.WriteByte('i')
			vowel = 0
		case r == ' ':
			b.WriteRune(r)
			atStart = true
			vowel = 0
			continue
		default:
			lat, ok := consonants[r]
			if !ok {
				b.WriteRune(r)
				vowel = 0
				break
			}
			if atStart && lat == "'" && r != 'ع' {
				lat = ""
			}
			b.WriteString(lat)
			prev = lat
			vowel = 0
		}
		atStart = false
	}

	return b.String()
}

// shaddaFirst moves every shadda in front of the short vowel preceding it,
// undoing the canonical order (vowel, shadda) of normalised text.
func shaddaFirst(s string) []rune {
	rs := []rune(s)
	for i := 1; i < len(rs); i++ {
		if rs[i] != entities.Shadda {
			continue
		}
		switch rs[i-1] {
		case entities.Fatha, entities.Damma, entities.Kasra:
			rs[i-1], rs[i] = rs[i], rs[i-1]
		}
	}
	return rs
}
