package match

// Size is the width and height of the board.
const Size = 5

// Cell is either empty (zero value) or occupied by a side's unit.
type Cell struct {
	Side Side
	Unit string
}

func (c Cell) Empty() bool {
	return c.Side == ""
}

func (c Cell) OwnedBy(s Side) bool {
	return c.Side == s
}

// Board is a pure accessor over the grid. Callers validate before mutating.
type Board struct {
	cells [Size][Size]Cell
}

func InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

func (b *Board) IsInBounds(row, col int) bool {
	return InBounds(Position{Row: row, Col: col})
}

// CellAt returns the cell at pos; an out of bounds position reads as empty.
func (b *Board) CellAt(pos Position) Cell {
	if !InBounds(pos) {
		return Cell{}
	}
	return b.cells[pos.Row][pos.Col]
}

func (b *Board) Place(pos Position, side Side, unit string) {
	b.cells[pos.Row][pos.Col] = Cell{Side: side, Unit: unit}
}

func (b *Board) Clear(pos Position) {
	b.cells[pos.Row][pos.Col] = Cell{}
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for r := range b.cells {
		for c := range b.cells[r] {
			if !b.cells[r][c].Empty() {
				n++
			}
		}
	}
	return n
}
