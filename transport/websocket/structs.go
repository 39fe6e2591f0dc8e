package websocket

import (
	"encoding/json"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

// Message is the wire envelope in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound actions.
const (
	actionJoinGame   = "join-game"
	actionPlaceShips = "place-ships"
	actionFire       = "fire"
	actionGameState  = "game-state"
)

// Outbound actions.
const (
	actionJoined      = "joined"
	actionShipsPlaced = "ships-placed"
	actionGameReady   = "game-ready"
	actionMoveUpdate  = "move-update"
	actionGameOver    = "game-over"
	actionState       = "state"
	actionError       = "error"
)

type joinGamePayload struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

type placeShipsPayload struct {
	RoomID    string            `json:"roomId"`
	UserID    string            `json:"userId"`
	Positions []entity.Position `json:"positions"`
}

type firePayload struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type gameStatePayload struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

type joinedPayload struct {
	RoomID string `json:"roomId"`
	YourID string `json:"yourId"`
}

type shipsPlacedPayload struct {
	UserID string `json:"userId"`
}

type gameReadyPayload struct {
	Turn string `json:"turn"`
}

type moveUpdatePayload struct {
	Hit  bool   `json:"hit"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Turn string `json:"turn"`
}

type gameOverPayload struct {
	Winner string `json:"winner"`
}

type errorPayload struct {
	Message string `json:"message"`
}
