package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

var (
	ErrVerbNotFound = errors.New("verb not found")
	ErrNoVerbs      = errors.New("verb table is empty")
)

//go:embed data/verbs.yaml
var defaultVerbs []byte

type verbRecord struct {
	Past            string `yaml:"past"`
	Root            string `yaml:"root"`
	Bab             string `yaml:"bab"`
	Transliteration string `yaml:"transliteration"`
	Meaning         string `yaml:"meaning"`
}

// VerbRepository provides access to the sample verbs.
// The table is immutable once loaded.
type VerbRepository struct {
	verbs []entities.Verb
}

// NewVerbRepository loads the built-in verb table.
func NewVerbRepository() (*VerbRepository, error) {
	return NewVerbRepositoryFromYAML(defaultVerbs)
}

// NewVerbRepositoryFromYAML loads a verb table from YAML data.
func NewVerbRepositoryFromYAML(data []byte) (*VerbRepository, error) {
	verbs, err := parseVerbs(data)
	if err != nil {
		return nil, err
	}

	return &VerbRepository{
		verbs: verbs,
	}, nil
}

// GetAll returns a copy of all verbs in table order.
func (r *VerbRepository) GetAll() []entities.Verb {
	out := make([]entities.Verb, len(r.verbs))
	copy(out, r.verbs)
	return out
}

// GetByTransliteration finds a verb by its Latin transliteration, ignoring case.
func (r *VerbRepository) GetByTransliteration(name string) (entities.Verb, error) {
	for _, v := range r.verbs {
		if strings.EqualFold(v.Transliteration, strings.TrimSpace(name)) {
			return v, nil
		}
	}

	return entities.Verb{}, fmt.Errorf("%q: %w", name, ErrVerbNotFound)
}

func parseVerbs(data []byte) ([]entities.Verb, error) {
	var wrapper struct {
		Verbs []verbRecord `yaml:"verbs"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verbs YAML: %w", err)
	}

	if len(wrapper.Verbs) == 0 {
		return nil, ErrNoVerbs
	}

	verbs := make([]entities.Verb, 0, len(wrapper.Verbs))
	for i, rec := range wrapper.Verbs {
		bab, ok := entities.LookupBab(entities.BabKey(rec.Bab))
		if !ok {
			return nil, fmt.Errorf("verb %d (%s): unknown bab %q", i+1, rec.Transliteration, rec.Bab)
		}

		if utf8.RuneCountInString(rec.Root) != 3 {
			return nil, fmt.Errorf("verb %d (%s): expected 3 root letters, got %q", i+1, rec.Transliteration, rec.Root)
		}

		verbs = append(verbs, entities.Verb{
			Past:            rec.Past,
			Root:            []rune(rec.Root),
			Bab:             bab,
			Transliteration: rec.Transliteration,
			Meaning:         rec.Meaning,
		})
	}

	return verbs, nil
}
