package match

import (
	"fmt"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

type MoveOutcome struct {
	Unit      match.Unit
	Direction match.Direction
	From      match.Position
	To        match.Position
	Path      []match.Position
	Captured  []match.Unit
}

// ApplyMove validates the whole path of a move before committing anything.
// Opposing units anywhere on the path are captured, including the one on
// the destination which the mover replaces. On success the turn passes to
// the opponent.
func ApplyMove(m *match.Match, side match.Side, unitName string, dir match.Direction) (MoveOutcome, error) {
	st := m.Side(side)
	unit, ok := st.Find(unitName)
	if !ok {
		return MoveOutcome{}, fmt.Errorf("%w: %s for side %s", errs.ErrUnitNotFound, unitName, side)
	}

	path, err := tracePath(unit.Kind, dir, unit.Position)
	if err != nil {
		return MoveOutcome{}, err
	}

	for _, p := range path {
		if !match.InBounds(p) {
			return MoveOutcome{}, fmt.Errorf("%w: (%d, %d)", errs.ErrInvalidDestination, p.Row, p.Col)
		}
	}

	opp := m.Side(side.Opponent())
	var captured []match.Unit
	for _, p := range path {
		cell := m.Board.CellAt(p)
		if cell.Empty() {
			continue
		}
		if cell.OwnedBy(side) {
			return MoveOutcome{}, fmt.Errorf("%w: %s at (%d, %d)", errs.ErrBlocked, cell.Unit, p.Row, p.Col)
		}
		if victim, ok := opp.Find(cell.Unit); ok {
			captured = append(captured, *victim)
		}
	}

	// commit
	for _, c := range captured {
		opp.Remove(c.Name)
		m.Board.Clear(c.Position)
	}

	from := unit.Position
	to := path[len(path)-1]
	m.Board.Clear(from)
	m.Board.Place(to, side, unit.Name)
	unit.Position = to

	st.HasTurn = false
	opp.HasTurn = true

	return MoveOutcome{
		Unit:      *unit,
		Direction: dir,
		From:      from,
		To:        to,
		Path:      path,
		Captured:  captured,
	}, nil
}
