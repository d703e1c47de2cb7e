// Package textshape prepares Arabic text for toolkits that neither join letters
// nor apply the bidirectional algorithm.
package textshape

import (
	"strings"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

// Shaper turns logical-order text into text that displays correctly.
type Shaper interface {
	Shape(text string) string
}

// Identity leaves text untouched.
type Identity struct{}

// Shape returns text unchanged.
func (Identity) Shape(text string) string { return text }

// Options configures the Arabic shaper.
type Options struct {
	DeleteHarakat bool // drop short vowel marks before shaping
}

// Arabic joins letters into their contextual presentation forms and reorders
// every line into visual order.
type Arabic struct {
	opts Options
}

// NewArabic creates an Arabic shaper.
func NewArabic(opts Options) *Arabic {
	return &Arabic{opts: opts}
}

// New returns an Arabic shaper when enabled, Identity otherwise.
func New(enabled bool, opts Options) Shaper {
	if !enabled {
		return Identity{}
	}
	return NewArabic(opts)
}

// Shape reshapes and reorders text line by line.
func (a *Arabic) Shape(text string) string {
	if text == "" || !containsArabic(text) {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Reorder(a.Reshape(line))
	}
	return strings.Join(lines, "\n")
}

// Reshape replaces Arabic letters with their joined presentation forms.
func (a *Arabic) Reshape(text string) string {
	in := []rune(text)
	if a.opts.DeleteHarakat {
		in = stripHarakat(in)
	}

	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		r := in[i]
		forms, ok := letterForms[r]
		if !ok {
			out = append(out, r)
			continue
		}

		prevJoins := joinsForward(in, i)

		if r == lam {
			if j := nextLetter(in, i); j >= 0 {
				if lig, ok := lamAlef[in[j]]; ok {
					if prevJoins {
						out = append(out, lig[1])
					} else {
						out = append(out, lig[0])
					}
					// keep the marks between lam and alef, drop the alef itself
					out = append(out, in[i+1:j]...)
					i = j
					continue
				}
			}
		}

		nextJoins := false
		if j := nextLetter(in, i); j >= 0 {
			if nf, ok := letterForms[in[j]]; ok && nf.joinsPrev() {
				nextJoins = forms.joinsNext()
			}
		}
		if !forms.joinsPrev() {
			prevJoins = false
		}

		out = append(out, pickForm(forms, prevJoins, nextJoins))
	}

	return string(out)
}

func pickForm(f glyphForms, prevJoins, nextJoins bool) rune {
	switch {
	case prevJoins && nextJoins:
		return f[formMedial]
	case prevJoins:
		return f[formFinal]
	case nextJoins:
		return f[formInitial]
	default:
		return f[formIsolated]
	}
}

// joinsForward reports whether the letter before position i connects to it.
func joinsForward(in []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if entities.IsHaraka(in[j]) {
			continue
		}
		f, ok := letterForms[in[j]]
		return ok && f.joinsNext()
	}
	return false
}

// nextLetter returns the index of the next non-mark rune after i, or -1.
func nextLetter(in []rune, i int) int {
	for j := i + 1; j < len(in); j++ {
		if !entities.IsHaraka(in[j]) {
			return j
		}
	}
	return -1
}

func stripHarakat(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if !entities.IsHaraka(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsArabic(s string) bool {
	for _, r := range s {
		if (r >= 0x0600 && r <= 0x06FF) || (r >= 0xFB50 && r <= 0xFEFF) {
			return true
		}
	}
	return false
}
