package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/repository"
)

func TestNewVerbRepositoryLoadsBuiltInTable(t *testing.T) {
	repo, err := repository.NewVerbRepository()
	require.NoError(t, err)

	verbs := repo.GetAll()
	require.Len(t, verbs, 9)
	for _, v := range verbs {
		assert.True(t, v.HasTriliteralRoot(), v.Transliteration)
		assert.NotEmpty(t, v.Past)
		assert.NotEmpty(t, v.Meaning)
	}
}

func TestGetByTransliteration(t *testing.T) {
	repo, err := repository.NewVerbRepository()
	require.NoError(t, err)

	v, err := repo.GetByTransliteration(" Kataba ")
	require.NoError(t, err)
	assert.Equal(t, "كتب", v.RootString())
	assert.Equal(t, entities.BabNasara, v.Bab.Key)

	_, err = repo.GetByTransliteration("qala")
	assert.ErrorIs(t, err, repository.ErrVerbNotFound)
}

func TestGetAllReturnsCopy(t *testing.T) {
	repo, err := repository.NewVerbRepository()
	require.NoError(t, err)

	verbs := repo.GetAll()
	verbs[0].Past = "changed"
	assert.NotEqual(t, "changed", repo.GetAll()[0].Past)
}

func TestNewVerbRepositoryFromYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{name: "empty table", data: "verbs: []\n", is: repository.ErrNoVerbs},
		{name: "broken yaml", data: "verbs: [\n"},
		{name: "unknown bab", data: "verbs:\n  - past: كَتَبَ\n    root: كتب\n    bab: fa'ala\n"},
		{name: "short root", data: "verbs:\n  - past: كَتَبَ\n    root: كت\n    bab: nasara\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.NewVerbRepositoryFromYAML([]byte(tt.data))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
