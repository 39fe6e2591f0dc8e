package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(4, 4))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, -1))
	assert.False(t, InBounds(5, 0))
	assert.False(t, InBounds(0, 5))
}

func TestIsShipShape(t *testing.T) {
	t.Run("Two straight ships are accepted", func(t *testing.T) {
		// Given: a vertical ship and a horizontal ship
		cells := []entity.Position{
			{X: 0, Y: 0}, {X: 0, Y: 1},
			{X: 2, Y: 2}, {X: 3, Y: 2},
		}

		// Then: the fleet is accepted
		require.True(t, IsShipShape(cells, ShipCount, ShipLength))
	})

	t.Run("Wrong cell count is rejected", func(t *testing.T) {
		cells := []entity.Position{
			{X: 0, Y: 0}, {X: 0, Y: 1},
			{X: 2, Y: 2},
		}

		require.False(t, IsShipShape(cells, ShipCount, ShipLength))
	})

	t.Run("Duplicate cell is rejected", func(t *testing.T) {
		// Given: the second ship reuses a cell of the first
		cells := []entity.Position{
			{X: 0, Y: 0}, {X: 0, Y: 1},
			{X: 0, Y: 1}, {X: 0, Y: 2},
		}

		require.False(t, IsShipShape(cells, ShipCount, ShipLength))
	})

	t.Run("Diagonal ship is rejected", func(t *testing.T) {
		cells := []entity.Position{
			{X: 0, Y: 0}, {X: 1, Y: 1},
			{X: 3, Y: 3}, {X: 3, Y: 4},
		}

		require.False(t, IsShipShape(cells, ShipCount, ShipLength))
	})

	t.Run("Gap between ship cells is rejected", func(t *testing.T) {
		cells := []entity.Position{
			{X: 0, Y: 0}, {X: 0, Y: 2},
			{X: 3, Y: 3}, {X: 3, Y: 4},
		}

		require.False(t, IsShipShape(cells, ShipCount, ShipLength))
	})
}

func TestCanFireAt(t *testing.T) {
	board := entity.Board{}
	board[1][1] = entity.CellShip
	board[2][2] = entity.CellHit
	board[3][3] = entity.CellMiss

	assert.True(t, CanFireAt(&board, 0, 0), "empty cell can be fired at")
	assert.True(t, CanFireAt(&board, 1, 1), "ship cell can be fired at")
	assert.False(t, CanFireAt(&board, 2, 2), "hit cell cannot be fired at twice")
	assert.False(t, CanFireAt(&board, 3, 3), "miss cell cannot be fired at twice")
}
