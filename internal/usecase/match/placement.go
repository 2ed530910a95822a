package match

import (
	"fmt"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

type PlacementResult struct {
	Unit   match.Unit
	Roster []match.Unit
	Ready  bool
	// Started is true only for the placement that moved the match
	// from setup to active.
	Started bool
}

// PlaceUnit validates and applies one setup placement. Checks run in a fixed
// order and the first failure wins; a failed placement mutates nothing.
func PlaceUnit(m *match.Match, side match.Side, kind match.Kind, row, col int) (PlacementResult, error) {
	if !kind.Valid() {
		return PlacementResult{}, fmt.Errorf("%w: %q", errs.ErrInvalidKind, kind)
	}

	pos := match.Position{Row: row, Col: col}
	if !match.InBounds(pos) {
		return PlacementResult{}, fmt.Errorf("%w: (%d, %d)", errs.ErrOutOfBounds, row, col)
	}

	st := m.Side(side)
	if len(st.Units) >= match.MaxUnits {
		return PlacementResult{}, errs.ErrRosterFull
	}

	if row != side.HomeRow() {
		return PlacementResult{}, fmt.Errorf("%w: side %s places on row %d", errs.ErrWrongHomeRow, side, side.HomeRow())
	}

	if !m.Board.CellAt(pos).Empty() {
		return PlacementResult{}, fmt.Errorf("%w: (%d, %d)", errs.ErrCellOccupied, row, col)
	}

	unit := st.Append(kind, pos)
	m.Board.Place(pos, side, unit.Name)
	if len(st.Units) == match.MaxUnits {
		st.Ready = true
	}

	result := PlacementResult{
		Unit:   unit,
		Roster: append([]match.Unit(nil), st.Units...),
		Ready:  st.Ready,
	}

	if m.Phase == match.PhaseSetup && m.Side(match.SideA).Ready && m.Side(match.SideB).Ready {
		m.Phase = match.PhaseActive
		m.Side(match.SideA).HasTurn = true
		m.Side(match.SideB).HasTurn = false
		result.Started = true
	}

	return result, nil
}
