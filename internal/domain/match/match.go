package match

type Phase string

const (
	PhaseSetup  Phase = "setup"
	PhaseActive Phase = "active"
	// PhaseFinished is reserved; no win condition moves a match into it.
	PhaseFinished Phase = "finished"
)

// Match is the single authoritative game aggregate.
type Match struct {
	ID    string
	Board Board
	Phase Phase

	sides [2]SideState
}

func New(id string) *Match {
	return &Match{
		ID:    id,
		Phase: PhaseSetup,
	}
}

// Side returns the mutable state of s. s must be valid.
func (m *Match) Side(s Side) *SideState {
	return &m.sides[s.index()]
}

// Turn returns the side holding the turn, or "" outside the active phase.
func (m *Match) Turn() Side {
	if m.Phase != PhaseActive {
		return ""
	}
	for _, s := range []Side{SideA, SideB} {
		if m.Side(s).HasTurn {
			return s
		}
	}
	return ""
}

func (m *Match) Clone() *Match {
	c := *m
	for i := range m.sides {
		c.sides[i] = m.sides[i].clone()
	}
	return &c
}

// CheckInvariants verifies that rosters and board agree cell for cell.
// It returns a description of the first mismatch, or "" when consistent.
func (m *Match) CheckInvariants() string {
	units := 0
	for _, s := range []Side{SideA, SideB} {
		st := m.Side(s)
		if len(st.Units) > MaxUnits {
			return "roster " + string(s) + " exceeds max units"
		}
		for _, u := range st.Units {
			units++
			cell := m.Board.CellAt(u.Position)
			if !InBounds(u.Position) || cell.Side != s || cell.Unit != u.Name {
				return "unit " + string(s) + "-" + u.Name + " does not match its board cell"
			}
		}
	}
	if units != m.Board.Occupied() {
		return "board holds cells with no roster unit"
	}
	if m.Phase == PhaseActive && m.Side(SideA).HasTurn == m.Side(SideB).HasTurn {
		return "exactly one side must hold the turn"
	}
	return ""
}
