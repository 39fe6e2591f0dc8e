package battleship

import (
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

// Fleet configuration: two ships of two cells each. Positions are submitted
// ship by ship, so each consecutive group of ShipLength cells is one ship.
const (
	ShipCount  = 2
	ShipLength = 2
)

func InBounds(x, y int) bool {
	return x >= 0 && x < entity.BoardSize && y >= 0 && y < entity.BoardSize
}

// CanFireAt reports whether the cell has not been resolved yet.
func CanFireAt(board *entity.Board, x, y int) bool {
	cell := board[x][y]
	return cell != entity.CellHit && cell != entity.CellMiss
}

// IsShipShape checks that the positions form shipCount disjoint straight
// ships of shipLength cells each.
func IsShipShape(cells []entity.Position, shipCount, shipLength int) bool {
	if len(cells) != shipCount*shipLength {
		return false
	}

	seen := make(map[entity.Position]struct{}, len(cells))
	for _, cell := range cells {
		if _, dup := seen[cell]; dup {
			return false
		}
		seen[cell] = struct{}{}
	}

	for ship := 0; ship < shipCount; ship++ {
		if !isStraightRun(cells[ship*shipLength : (ship+1)*shipLength]) {
			return false
		}
	}

	return true
}

// isStraightRun - consecutive cells adjacent, all on one row or one column.
func isStraightRun(ship []entity.Position) bool {
	sameRow, sameCol := true, true

	for i := 1; i < len(ship); i++ {
		dx := abs(ship[i].X - ship[i-1].X)
		dy := abs(ship[i].Y - ship[i-1].Y)
		if dx+dy != 1 {
			return false
		}

		sameRow = sameRow && ship[i].X == ship[0].X
		sameCol = sameCol && ship[i].Y == ship[0].Y
	}

	return sameRow || sameCol
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
