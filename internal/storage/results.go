package storage

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

// ResultStore provides in-memory storage for finished test results by session ID.
type ResultStore struct {
	mu      sync.RWMutex
	results map[uuid.UUID]entities.TestResult
}

// NewResultStore creates a new ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[uuid.UUID]entities.TestResult),
	}
}

// Store saves the result of a test, replacing an earlier one with the same session ID.
func (s *ResultStore) Store(result entities.TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.SessionID] = result
}

// All returns every stored result, oldest first.
func (s *ResultStore) All() []entities.TestResult {
	s.mu.RLock()
	out := make([]entities.TestResult, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.Before(out[j].CompletedAt)
	})
	return out
}

// Best returns the best result so far, false when no test has finished.
func (s *ResultStore) Best() (entities.TestResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best  entities.TestResult
		found bool
	)
	for _, r := range s.results {
		if !found || r.Better(best) {
			best, found = r, true
		}
	}
	return best, found
}
