package match

type CellView struct {
	Player Side   `json:"player" bson:"player"`
	Unit   string `json:"character" bson:"character"`
}

type PlayerView struct {
	Characters []Unit `json:"characters" bson:"characters"`
	Turn       bool   `json:"turn" bson:"turn"`
	Ready      bool   `json:"ready" bson:"ready"`
}

// StateSnapshot is the full public state sent to both participants after
// every accepted command.
type StateSnapshot struct {
	MatchID string                `json:"matchId" bson:"match_id"`
	Phase   Phase                 `json:"phase" bson:"phase"`
	Turn    Side                  `json:"turn,omitempty" bson:"turn,omitempty"`
	Board   [Size][Size]*CellView `json:"board" bson:"board"`
	Players map[Side]PlayerView   `json:"players" bson:"players"`
}

func (m *Match) Snapshot() StateSnapshot {
	snap := StateSnapshot{
		MatchID: m.ID,
		Phase:   m.Phase,
		Turn:    m.Turn(),
		Players: make(map[Side]PlayerView, 2),
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := m.Board.cells[r][c]
			if cell.Empty() {
				continue
			}
			snap.Board[r][c] = &CellView{Player: cell.Side, Unit: cell.Unit}
		}
	}
	for _, s := range []Side{SideA, SideB} {
		st := m.Side(s)
		units := make([]Unit, len(st.Units))
		copy(units, st.Units)
		snap.Players[s] = PlayerView{
			Characters: units,
			Turn:       st.HasTurn,
			Ready:      st.Ready,
		}
	}
	return snap
}
