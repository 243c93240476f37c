package server

import (
	"sync"
	"time"

	"github.com/goliatone/go-surveyslider/pkg/trial"
)

type trialEntry struct {
	id      string
	survey  string
	ctrl    *trial.Controller
	surface *trial.BufferSurface

	// mu serializes submissions; pending holds a submitted result the sink
	// has not accepted yet.
	mu      sync.Mutex
	pending *TrialRecord
}

// trialStore keeps open trials and remembers completed ids for retention so
// late requests get 410 instead of 404.
type trialStore struct {
	mu        sync.RWMutex
	trials    map[string]*trialEntry
	completed map[string]time.Time
	retention time.Duration
}

func newTrialStore(retention time.Duration) *trialStore {
	return &trialStore{
		trials:    make(map[string]*trialEntry),
		completed: make(map[string]time.Time),
		retention: retention,
	}
}

func (s *trialStore) put(entry *trialEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trials[entry.id] = entry
}

func (s *trialStore) get(id string) (*trialEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.trials[id]
	return entry, ok
}

// complete drops the trial and remembers its id until the retention window
// passes. Expired ids are swept on every completion.
func (s *trialStore) complete(id string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trials, id)
	s.completed[id] = now
	s.sweep(now)
}

func (s *trialStore) gone(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.completed[id]
	return ok
}

func (s *trialStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trials)
}

// sweep must be called with mu held.
func (s *trialStore) sweep(now time.Time) {
	for id, at := range s.completed {
		if now.Sub(at) >= s.retention {
			delete(s.completed, id)
		}
	}
}
