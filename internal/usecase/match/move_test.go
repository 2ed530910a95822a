package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

func pos(row, col int) match.Position {
	return match.Position{Row: row, Col: col}
}

func TestApplyMove_ScoutCapturesOnDestination(t *testing.T) {
	m := activeMatch()
	scout := put(m, match.SideA, match.Scout, 0, 0)
	victim := put(m, match.SideB, match.Scout, 1, 0)

	out, err := ApplyMove(m, match.SideA, scout.Name, match.Backward)
	require.NoError(t, err)

	assert.Equal(t, pos(0, 0), out.From)
	assert.Equal(t, pos(1, 0), out.To)
	assert.Equal(t, []match.Position{pos(1, 0)}, out.Path)
	require.Len(t, out.Captured, 1)
	assert.Equal(t, victim.Name, out.Captured[0].Name)

	_, found := m.Side(match.SideB).Find(victim.Name)
	assert.False(t, found)
	assert.Equal(t, match.Cell{Side: match.SideA, Unit: scout.Name}, m.Board.CellAt(pos(1, 0)))
	assert.True(t, m.Board.CellAt(pos(0, 0)).Empty())

	moved, _ := m.Side(match.SideA).Find(scout.Name)
	assert.Equal(t, pos(1, 0), moved.Position)

	assert.False(t, m.Side(match.SideA).HasTurn)
	assert.True(t, m.Side(match.SideB).HasTurn)
	requireConsistent(t, m)
}

func TestApplyMove_ForwardDecreasesRowForBothSides(t *testing.T) {
	m := activeMatch()
	a := put(m, match.SideA, match.Scout, 2, 1)
	b := put(m, match.SideB, match.Scout, 3, 3)

	out, err := ApplyMove(m, match.SideA, a.Name, match.Forward)
	require.NoError(t, err)
	assert.Equal(t, pos(1, 1), out.To)

	out, err = ApplyMove(m, match.SideB, b.Name, match.Forward)
	require.NoError(t, err)
	assert.Equal(t, pos(2, 3), out.To)
	requireConsistent(t, m)
}

func TestApplyMove_RangerCapturesMidPath(t *testing.T) {
	m := activeMatch()
	ranger := put(m, match.SideA, match.Ranger, 2, 2)
	victim := put(m, match.SideB, match.Scout, 2, 3)

	out, err := ApplyMove(m, match.SideA, ranger.Name, match.Right)
	require.NoError(t, err)

	assert.Equal(t, []match.Position{pos(2, 3), pos(2, 4)}, out.Path)
	assert.Equal(t, pos(2, 4), out.To)
	require.Len(t, out.Captured, 1)
	assert.Equal(t, victim.Name, out.Captured[0].Name)
	assert.True(t, m.Board.CellAt(pos(2, 3)).Empty())
	assert.Equal(t, match.Cell{Side: match.SideA, Unit: ranger.Name}, m.Board.CellAt(pos(2, 4)))
	assert.Empty(t, m.Side(match.SideB).Units)
	requireConsistent(t, m)
}

func TestApplyMove_RangerCapturesWholePath(t *testing.T) {
	m := activeMatch()
	ranger := put(m, match.SideA, match.Ranger, 4, 2)
	put(m, match.SideB, match.Scout, 3, 2)
	put(m, match.SideB, match.Diagonal, 2, 2)
	survivor := put(m, match.SideB, match.Scout, 0, 0)

	out, err := ApplyMove(m, match.SideA, ranger.Name, match.Forward)
	require.NoError(t, err)

	assert.Len(t, out.Captured, 2)
	require.Len(t, m.Side(match.SideB).Units, 1)
	assert.Equal(t, survivor.Name, m.Side(match.SideB).Units[0].Name)
	assert.Equal(t, pos(2, 2), out.To)
	requireConsistent(t, m)
}

func TestApplyMove_DiagonalHop(t *testing.T) {
	m := activeMatch()
	diag := put(m, match.SideA, match.Diagonal, 2, 2)
	victim := put(m, match.SideB, match.Ranger, 1, 3)

	out, err := ApplyMove(m, match.SideA, diag.Name, match.ForwardRight)
	require.NoError(t, err)

	assert.Equal(t, []match.Position{pos(1, 3), pos(0, 4)}, out.Path)
	require.Len(t, out.Captured, 1)
	assert.Equal(t, victim.Name, out.Captured[0].Name)
	assert.Equal(t, match.Cell{Side: match.SideA, Unit: diag.Name}, m.Board.CellAt(pos(0, 4)))
	assert.True(t, m.Board.CellAt(pos(1, 3)).Empty())
	assert.True(t, m.Board.CellAt(pos(2, 2)).Empty())
	requireConsistent(t, m)
}

func TestApplyMove_DiagonalDirections(t *testing.T) {
	tests := []struct {
		dir  match.Direction
		mid  match.Position
		dest match.Position
	}{
		{match.ForwardLeft, pos(1, 1), pos(0, 0)},
		{match.ForwardRight, pos(1, 3), pos(0, 4)},
		{match.BackLeft, pos(3, 1), pos(4, 0)},
		{match.BackRight, pos(3, 3), pos(4, 4)},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			m := activeMatch()
			d := put(m, match.SideA, match.Diagonal, 2, 2)
			out, err := ApplyMove(m, match.SideA, d.Name, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, []match.Position{tt.mid, tt.dest}, out.Path)
		})
	}
}

func TestApplyMove_RejectionsDoNotMutate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *match.Match) string
		dir   match.Direction
		want  error
	}{
		{
			name: "unknown unit",
			setup: func(m *match.Match) string {
				put(m, match.SideA, match.Scout, 2, 2)
				return "Scout9"
			},
			dir:  match.Forward,
			want: errs.ErrUnitNotFound,
		},
		{
			name: "opponent unit name",
			setup: func(m *match.Match) string {
				return put(m, match.SideB, match.Scout, 2, 2).Name
			},
			dir:  match.Forward,
			want: errs.ErrUnitNotFound,
		},
		{
			name: "scout cannot move diagonally",
			setup: func(m *match.Match) string {
				return put(m, match.SideA, match.Scout, 2, 2).Name
			},
			dir:  match.ForwardLeft,
			want: errs.ErrInvalidDirection,
		},
		{
			name: "diagonal cannot move straight",
			setup: func(m *match.Match) string {
				return put(m, match.SideA, match.Diagonal, 2, 2).Name
			},
			dir:  match.Forward,
			want: errs.ErrInvalidDirection,
		},
		{
			name: "unknown direction",
			setup: func(m *match.Match) string {
				return put(m, match.SideA, match.Ranger, 2, 2).Name
			},
			dir:  match.Direction("X"),
			want: errs.ErrInvalidDirection,
		},
		{
			name: "scout off the top edge",
			setup: func(m *match.Match) string {
				return put(m, match.SideA, match.Scout, 0, 0).Name
			},
			dir:  match.Forward,
			want: errs.ErrInvalidDestination,
		},
		{
			name: "ranger past the right edge",
			setup: func(m *match.Match) string {
				return put(m, match.SideA, match.Ranger, 2, 3).Name
			},
			dir:  match.Right,
			want: errs.ErrInvalidDestination,
		},
		{
			name: "diagonal past the corner",
			setup: func(m *match.Match) string {
				return put(m, match.SideA, match.Diagonal, 1, 1).Name
			},
			dir:  match.ForwardLeft,
			want: errs.ErrInvalidDestination,
		},
		{
			name: "own unit on destination",
			setup: func(m *match.Match) string {
				put(m, match.SideA, match.Scout, 1, 2)
				return put(m, match.SideA, match.Scout, 2, 2).Name
			},
			dir:  match.Forward,
			want: errs.ErrBlocked,
		},
		{
			name: "own unit mid path",
			setup: func(m *match.Match) string {
				put(m, match.SideA, match.Scout, 2, 3)
				return put(m, match.SideA, match.Ranger, 2, 2).Name
			},
			dir:  match.Right,
			want: errs.ErrBlocked,
		},
		{
			name: "opponent then own unit keeps opponent alive",
			setup: func(m *match.Match) string {
				put(m, match.SideB, match.Scout, 2, 3)
				put(m, match.SideA, match.Scout, 2, 4)
				return put(m, match.SideA, match.Ranger, 2, 2).Name
			},
			dir:  match.Right,
			want: errs.ErrBlocked,
		},
		{
			name: "diagonal intermediate own unit",
			setup: func(m *match.Match) string {
				put(m, match.SideA, match.Scout, 3, 1)
				put(m, match.SideB, match.Scout, 4, 0)
				return put(m, match.SideA, match.Diagonal, 2, 2).Name
			},
			dir:  match.BackLeft,
			want: errs.ErrBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := activeMatch()
			name := tt.setup(m)
			before := m.Clone()

			_, err := ApplyMove(m, match.SideA, name, tt.dir)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, m, "rejected move must not mutate state")
			assert.Equal(t, before.Snapshot(), m.Snapshot())
		})
	}
}

func TestDirections(t *testing.T) {
	assert.Equal(t, []match.Direction{match.Forward, match.Backward, match.Left, match.Right}, Directions(match.Scout))
	assert.Equal(t, []match.Direction{match.Forward, match.Backward, match.Left, match.Right}, Directions(match.Ranger))
	assert.Equal(t, []match.Direction{match.ForwardLeft, match.ForwardRight, match.BackLeft, match.BackRight}, Directions(match.Diagonal))
	assert.Empty(t, Directions(match.Kind("Wizard")))
}
