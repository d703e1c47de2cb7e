package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

// ErrDuplicateDistractor is reported when a candidate option repeats an option already chosen.
var ErrDuplicateDistractor = errors.New("duplicate distractor")

// OptionGenerator builds multiple choice options: the correct answer plus
// distinct wrong ones, in random order.
type OptionGenerator struct {
	rng *rand.Rand
}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator(rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{
		rng: rng,
	}
}

// GenerateOptions creates 4 multiple choice options including the correct answer.
// Candidates are tried in order; duplicates of the correct answer or of an
// earlier pick are skipped. Missing options are filled with perturbed copies
// of the correct answer.
// Returns: options slice and the index of the correct answer (0-3).
func (g *OptionGenerator) GenerateOptions(correct string, candidates []string) ([]string, int) {
	set := newOptionSet(correct)

	for _, c := range candidates {
		if set.full() {
			break
		}
		_ = set.add(c)
	}

	for _, p := range perturbations(correct) {
		if set.full() {
			break
		}
		_ = set.add(p)
	}

	for n := 1; !set.full(); n++ {
		_ = set.add(fmt.Sprintf("%s (%d)", correct, n))
	}

	// Randomly place the correct answer.
	options := make([]string, entities.OptionCount)
	correctIndex := g.rng.Intn(entities.OptionCount)

	wrong := set.wrong()
	g.rng.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})

	wrongIdx := 0
	for i := 0; i < entities.OptionCount; i++ {
		if i == correctIndex {
			options[i] = correct
		} else {
			options[i] = wrong[wrongIdx]
			wrongIdx++
		}
	}

	return options, correctIndex
}

// optionSet keeps options unique after NFC normalisation.
type optionSet struct {
	options []string
	seen    map[string]struct{}
}

func newOptionSet(correct string) *optionSet {
	return &optionSet{
		options: []string{correct},
		seen:    map[string]struct{}{optionKey(correct): {}},
	}
}

func (s *optionSet) add(option string) error {
	if strings.TrimSpace(option) == "" {
		return fmt.Errorf("empty option: %w", ErrDuplicateDistractor)
	}
	key := optionKey(option)
	if _, dup := s.seen[key]; dup {
		return fmt.Errorf("%q: %w", option, ErrDuplicateDistractor)
	}
	s.seen[key] = struct{}{}
	s.options = append(s.options, option)
	return nil
}

func (s *optionSet) full() bool {
	return len(s.options) >= entities.OptionCount
}

func (s *optionSet) wrong() []string {
	out := make([]string, len(s.options)-1)
	copy(out, s.options[1:])
	return out
}

func optionKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

var harakat = []rune{entities.Fatha, entities.Damma, entities.Kasra, entities.Sukun}

// prefixSwaps pairs imperfect prefixes that are easily confused.
var prefixSwaps = map[rune]rune{
	'ي': 'ت',
	'ت': 'ي',
	'أ': 'ن',
	'ن': 'أ',
}

// perturbations returns structurally altered copies of form: the last vowel
// replaced, the first vowel replaced and the leading prefix swapped.
func perturbations(form string) []string {
	rs := []rune(form)
	var out []string

	last, first := -1, -1
	for i, r := range rs {
		if isVowelMark(r) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	for _, pos := range []int{last, first} {
		if pos < 0 {
			continue
		}
		for _, h := range harakat {
			if h == rs[pos] {
				continue
			}
			alt := append([]rune(nil), rs...)
			alt[pos] = h
			out = append(out, string(alt))
		}
	}

	if len(rs) > 0 {
		if swap, ok := prefixSwaps[rs[0]]; ok {
			alt := append([]rune(nil), rs...)
			alt[0] = swap
			out = append(out, string(alt))
		}
	}

	return out
}

func isVowelMark(r rune) bool {
	for _, h := range harakat {
		if r == h {
			return true
		}
	}
	return false
}
