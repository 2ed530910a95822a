package match

import (
	"strconv"
	"strings"

	errs "gridduel/internal/errors"
)

// Kind is the movement class of a unit.
type Kind string

const (
	Scout    Kind = "Scout"    // one step orthogonal
	Ranger   Kind = "Ranger"   // two steps orthogonal
	Diagonal Kind = "Diagonal" // two step diagonal hop
)

var kindAliases = map[string]Kind{
	"scout":    Scout,
	"ranger":   Ranger,
	"diagonal": Diagonal,
	"pawn":     Scout,
	"hero1":    Ranger,
	"hero2":    Diagonal,
	"p":        Scout,
	"h1":       Ranger,
	"h2":       Diagonal,
}

// ParseKind accepts the canonical kind names as well as the legacy
// Pawn/Hero1/Hero2 labels and the P1..P5/H1/H2 client shorthands.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	if len(key) == 2 && key[0] == 'p' && key[1] >= '1' && key[1] <= '5' {
		return Scout, nil
	}
	return "", errs.ErrInvalidKind
}

func (k Kind) Valid() bool {
	return k == Scout || k == Ranger || k == Diagonal
}

// UnitName builds the roster name for the n-th placement of a side.
func UnitName(kind Kind, n int) string {
	return string(kind) + strconv.Itoa(n)
}

type Position struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Unit is a placed piece. The embedded Position must always match the
// board cell holding the unit.
type Unit struct {
	Name     string `json:"name" bson:"name"`
	Kind     Kind   `json:"type" bson:"kind"`
	Position `bson:",inline"`
}

// Direction is a move command relative to the board, not to the side:
// Forward always decreases the row.
type Direction string

const (
	Forward      Direction = "F"
	Backward     Direction = "B"
	Left         Direction = "L"
	Right        Direction = "R"
	ForwardLeft  Direction = "FL"
	ForwardRight Direction = "FR"
	BackLeft     Direction = "BL"
	BackRight    Direction = "BR"
)

func ParseDirection(s string) Direction {
	return Direction(strings.ToUpper(strings.TrimSpace(s)))
}
