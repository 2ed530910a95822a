package match

import (
	"strings"

	errs "gridduel/internal/errors"
)

type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// MaxUnits is the roster size each side must place before the match starts.
const MaxUnits = 5

func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case SideA:
		return SideA, nil
	case SideB:
		return SideB, nil
	}
	return "", errs.ErrUnknownSide
}

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// HomeRow is the only row a side may place units on.
func (s Side) HomeRow() int {
	if s == SideB {
		return Size - 1
	}
	return 0
}

func (s Side) index() int {
	if s == SideB {
		return 1
	}
	return 0
}

// SideState is one participant's roster and flags.
type SideState struct {
	Units   []Unit
	Ready   bool
	HasTurn bool

	// placed counts accepted placements and drives unit naming,
	// so names stay unique after captures shrink the roster.
	placed int
}

func (s *SideState) Find(name string) (*Unit, bool) {
	for i := range s.Units {
		if s.Units[i].Name == name {
			return &s.Units[i], true
		}
	}
	return nil, false
}

func (s *SideState) UnitAt(pos Position) (*Unit, bool) {
	for i := range s.Units {
		if s.Units[i].Position == pos {
			return &s.Units[i], true
		}
	}
	return nil, false
}

// Remove drops the named unit from the roster and reports whether it was present.
func (s *SideState) Remove(name string) bool {
	for i := range s.Units {
		if s.Units[i].Name == name {
			s.Units = append(s.Units[:i], s.Units[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds a unit and returns its generated name.
func (s *SideState) Append(kind Kind, pos Position) Unit {
	s.placed++
	u := Unit{Name: UnitName(kind, s.placed), Kind: kind, Position: pos}
	s.Units = append(s.Units, u)
	return u
}

func (s *SideState) Placed() int {
	return s.placed
}

func (s SideState) clone() SideState {
	c := s
	if s.Units != nil {
		c.Units = make([]Unit, len(s.Units))
		copy(c.Units, s.Units)
	}
	return c
}
