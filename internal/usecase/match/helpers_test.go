package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridduel/internal/domain/match"
)

// activeMatch returns a match already in the active phase with side A to move.
func activeMatch() *match.Match {
	m := match.New("test-match")
	m.Phase = match.PhaseActive
	m.Side(match.SideA).Ready = true
	m.Side(match.SideB).Ready = true
	m.Side(match.SideA).HasTurn = true
	return m
}

func put(m *match.Match, side match.Side, kind match.Kind, row, col int) match.Unit {
	u := m.Side(side).Append(kind, match.Position{Row: row, Col: col})
	m.Board.Place(u.Position, side, u.Name)
	return u
}

func requireConsistent(t *testing.T, m *match.Match) {
	t.Helper()
	require.Empty(t, m.CheckInvariants())
}
