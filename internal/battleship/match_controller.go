package battleship

import (
	"fmt"
	"time"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

const (
	EventShipsPlaced = "ships-placed"
	EventGameReady   = "game-ready"
	EventMoveUpdate  = "move-update"
	EventGameOver    = "game-over"
)

// Event is the notification a match operation produces for broadcast to the
// room. Which fields are meaningful depends on Type.
type Event struct {
	Type   string
	UserID string
	Turn   string
	Hit    bool
	X, Y   int
	Winner string
}

// PlaceShips records playerID's fleet. The board is only mutated after every
// check has passed. Returns ships-placed and, once both players have placed,
// game-ready with the starting turn.
func PlaceShips(match *entity.Match, playerID string, cells []entity.Position) ([]Event, error) {
	if match.IsFinished() {
		return nil, apperror.ErrMatchFinished
	}

	if match.HasPlaced(playerID) {
		return nil, apperror.ErrAlreadyPlaced
	}

	if !IsShipShape(cells, ShipCount, ShipLength) {
		return nil, apperror.ErrBadShipShape
	}

	board := match.BoardOf(playerID)
	for _, cell := range cells {
		if !InBounds(cell.X, cell.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, cell.X, cell.Y)
		}

		if board[cell.X][cell.Y] != entity.CellEmpty {
			return nil, fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, cell.X, cell.Y)
		}
	}

	for _, cell := range cells {
		board[cell.X][cell.Y] = entity.CellShip
	}
	match.MarkPlaced(playerID)

	events := []Event{{Type: EventShipsPlaced, UserID: playerID}}

	if match.BothPlaced() {
		match.Status = entity.MatchStatusOngoing
		match.Turn = match.Player1ID
		events = append(events, Event{Type: EventGameReady, Turn: match.Turn})
	}

	return events, nil
}

// Fire resolves a shot at the opponent's board. A cell that was already
// resolved is rejected without touching the board.
func Fire(match *entity.Match, playerID string, x, y int) (Event, error) {
	if match.IsFinished() {
		return Event{}, apperror.ErrMatchFinished
	}

	if !match.IsOngoing() {
		return Event{}, apperror.ErrMatchNotStarted
	}

	if match.Turn != playerID {
		return Event{}, apperror.ErrNotYourTurn
	}

	if !InBounds(x, y) {
		return Event{}, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, x, y)
	}

	board := match.OpponentBoardOf(playerID)
	if !CanFireAt(board, x, y) {
		return Event{}, fmt.Errorf("%w: (%d,%d)", apperror.ErrAlreadyFired, x, y)
	}

	hit := board[x][y] == entity.CellShip
	if hit {
		board[x][y] = entity.CellHit
	} else {
		board[x][y] = entity.CellMiss
	}

	if board.ShipCellsLeft() == 0 {
		match.Winner = playerID
		match.Status = entity.MatchStatusFinished
		match.Turn = ""
		match.FinishedAt = time.Now()

		return Event{Type: EventGameOver, Winner: playerID}, nil
	}

	match.Turn = match.OpponentOf(playerID)

	return Event{Type: EventMoveUpdate, UserID: playerID, Hit: hit, X: x, Y: y, Turn: match.Turn}, nil
}
