package cli

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/config"
	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/repository"
)

func TestTableCommand(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"table", "kataba"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "كَتَبَ (kataba)")
	assert.Contains(t, text, "present-indicative")
	assert.Contains(t, text, "يَكْتُبُ yaktubu")
	assert.Contains(t, text, "كَتَبْنَا katabnaa")
}

func TestTableCommandUnknownVerb(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"table", "qala"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, repository.ErrVerbNotFound)
}

func TestNewControllerWiring(t *testing.T) {
	repo, err := repository.NewVerbRepository()
	require.NoError(t, err)

	for _, engine := range []string{config.EngineSarf, config.EngineFallback} {
		t.Run(engine, func(t *testing.T) {
			cfg := &config.Config{
				Quiz:        config.Quiz{TestLength: 3, ScoringEnabled: true},
				UI:          config.UI{FontSize: 16, MinFontSize: 10, MaxFontSize: 32},
				Conjugation: config.Conjugation{Engine: engine},
			}

			c, err := newController(cfg, repo, zap.NewNop(), rand.New(rand.NewSource(1)))
			require.NoError(t, err)

			c.Start(true, 0)
			for i := 0; i < 3; i++ {
				require.Equal(t, entities.StatePresenting, c.State())
				c.Answer(c.Current().CorrectIndex)
				c.Next()
			}

			assert.Equal(t, entities.StateReview, c.State())
			assert.Equal(t, entities.Score{Correct: 3, Total: 3}, c.Score())
			best, ok := c.BestResult()
			require.True(t, ok)
			assert.Equal(t, 3, best.Correct)
		})
	}
}
