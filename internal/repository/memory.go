package repo

import (
	"context"
	"sync"

	"gridduel/internal/domain/match"
)

// MemoryStore keeps the archive in process. It is used when no database
// is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	events    []match.Event
	snapshots map[string]match.StateSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]match.StateSnapshot)}
}

func (s *MemoryStore) SaveSnapshot(ctx context.Context, snap match.StateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snap.MatchID] = snap
	return nil
}

func (s *MemoryStore) AppendEvent(ctx context.Context, e match.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *MemoryStore) Events(matchID string) []match.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []match.Event
	for _, e := range s.events {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}
	return out
}

func (s *MemoryStore) Snapshot(matchID string) (match.StateSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[matchID]
	return snap, ok
}
