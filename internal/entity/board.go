package entity

const BoardSize = 5

const (
	CellEmpty = ""
	CellShip  = "S"
	CellHit   = "H"
	CellMiss  = "M"
)

// Board is one player's 5x5 grid. It is a value type so snapshots and
// equality checks in tests come for free.
type Board [BoardSize][BoardSize]string

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that *Board) ShipCellsLeft() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == CellShip {
				count++
			}
		}
	}

	return count
}

// Masked returns a copy with ship cells hidden, for showing a board to the
// opponent.
func (that *Board) Masked() Board {
	masked := *that
	for x, row := range masked {
		for y, cell := range row {
			if cell == CellShip {
				masked[x][y] = CellEmpty
			}
		}
	}

	return masked
}
