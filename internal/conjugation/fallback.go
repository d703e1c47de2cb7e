package conjugation

import (
	"fmt"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

// Fallback manufactures placeholder forms so the quiz keeps working offline.
// The forms are distinct per verb and slot but are not real Arabic.
type Fallback struct{}

// Conjugate returns "<past>[<slot>:<n>]", where n is the 1-based pronoun number.
func (Fallback) Conjugate(v entities.Verb, p entities.Pronoun, t entities.Tense, m entities.Mood) (string, error) {
	slot := entities.NewSlot(t, m)
	base := v.Past
	if base == "" {
		base = v.RootString()
	}
	return fmt.Sprintf("%s[%s:%d]", base, slot.Key(), p.Index+1), nil
}
