package game

import (
	"sync"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

// Seats assigns sides to connections: the first caller gets A, the second B,
// anyone else is turned away until a seat is released.
type Seats struct {
	mu    sync.Mutex
	taken map[match.Side]bool
}

func NewSeats() *Seats {
	return &Seats{taken: make(map[match.Side]bool, 2)}
}

func (s *Seats) Acquire() (match.Side, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, side := range []match.Side{match.SideA, match.SideB} {
		if !s.taken[side] {
			s.taken[side] = true
			return side, nil
		}
	}
	return "", errs.ErrGameFull
}

func (s *Seats) Release(side match.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.taken, side)
}

func (s *Seats) Taken() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.taken)
}
