package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_ShipCellsLeft(t *testing.T) {
	board := Board{}
	assert.Zero(t, board.ShipCellsLeft())

	board[0][0] = CellShip
	board[2][3] = CellShip
	board[4][4] = CellHit
	assert.Equal(t, 2, board.ShipCellsLeft())
}

func TestBoard_Masked(t *testing.T) {
	// Given: a board with every cell kind present
	board := Board{}
	board[0][0] = CellShip
	board[1][1] = CellHit
	board[2][2] = CellMiss

	masked := board.Masked()

	// Then: ships are hidden, hits and misses stay visible
	assert.Equal(t, CellEmpty, masked[0][0])
	assert.Equal(t, CellHit, masked[1][1])
	assert.Equal(t, CellMiss, masked[2][2])

	// Then: the original board is untouched
	assert.Equal(t, CellShip, board[0][0])
}

func TestMatch_ExplicitIdentity(t *testing.T) {
	match := NewMatch("room1", "p1", "p2")

	assert.True(t, match.IsParticipant("p1"))
	assert.True(t, match.IsParticipant("p2"))
	assert.False(t, match.IsParticipant("p3"))

	assert.Equal(t, "p2", match.OpponentOf("p1"))
	assert.Equal(t, "p1", match.OpponentOf("p2"))

	assert.Same(t, &match.Board1, match.BoardOf("p1"))
	assert.Same(t, &match.Board2, match.BoardOf("p2"))
	assert.Same(t, &match.Board2, match.OpponentBoardOf("p1"))
	assert.Same(t, &match.Board1, match.OpponentBoardOf("p2"))

	assert.Equal(t, "p1", match.Turn, "player 1 moves first by convention")
	assert.Equal(t, MatchStatusPlacement, match.Status)
}
