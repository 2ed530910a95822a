package match

import (
	"fmt"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

type offset struct {
	row, col int
}

// straight returns n unit steps along (dr, dc), in traversal order.
func straight(dr, dc, n int) []offset {
	path := make([]offset, 0, n)
	for i := 1; i <= n; i++ {
		path = append(path, offset{row: i * dr, col: i * dc})
	}
	return path
}

// moveTable lists, per kind and direction, the offsets from the origin of
// every cell the move traverses. The last offset is the destination.
// Forward decreases the row for both sides.
var moveTable = map[match.Kind]map[match.Direction][]offset{
	match.Scout: {
		match.Forward:  straight(-1, 0, 1),
		match.Backward: straight(1, 0, 1),
		match.Left:     straight(0, -1, 1),
		match.Right:    straight(0, 1, 1),
	},
	match.Ranger: {
		match.Forward:  straight(-1, 0, 2),
		match.Backward: straight(1, 0, 2),
		match.Left:     straight(0, -1, 2),
		match.Right:    straight(0, 1, 2),
	},
	match.Diagonal: {
		match.ForwardLeft:  straight(-1, -1, 2),
		match.ForwardRight: straight(-1, 1, 2),
		match.BackLeft:     straight(1, -1, 2),
		match.BackRight:    straight(1, 1, 2),
	},
}

// tracePath resolves the absolute cells a unit of kind traverses when moving
// from origin in dir. Bounds are not checked here.
func tracePath(kind match.Kind, dir match.Direction, origin match.Position) ([]match.Position, error) {
	offsets, ok := moveTable[kind][dir]
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot move %q", errs.ErrInvalidDirection, kind, dir)
	}
	path := make([]match.Position, len(offsets))
	for i, o := range offsets {
		path[i] = origin.Add(o.row, o.col)
	}
	return path, nil
}

// Directions returns the directions accepted for kind.
func Directions(kind match.Kind) []match.Direction {
	order := []match.Direction{
		match.Forward, match.Backward, match.Left, match.Right,
		match.ForwardLeft, match.ForwardRight, match.BackLeft, match.BackRight,
	}
	var out []match.Direction
	for _, d := range order {
		if _, ok := moveTable[kind][d]; ok {
			out = append(out, d)
		}
	}
	return out
}
