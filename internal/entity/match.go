package entity

import "time"

const (
	MatchStatusPlacement = "awaiting_placement"
	MatchStatusOngoing   = "ongoing"
	MatchStatusFinished  = "finished"
)

// Match is the live state of one room's game. Player identifiers are stored
// explicitly; which board belongs to whom is never derived from ordering.
type Match struct {
	RoomID string `json:"room_id"`

	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`

	Board1 Board `json:"board1"`
	Board2 Board `json:"board2"`

	Placed1 bool `json:"placed1"`
	Placed2 bool `json:"placed2"`

	Turn   string `json:"turn,omitempty"`
	Winner string `json:"winner,omitempty"`
	Status string `json:"status"`

	FinishedAt time.Time `json:"finished_at,omitempty"`
}

func NewMatch(roomID, player1ID, player2ID string) *Match {
	return &Match{
		RoomID:    roomID,
		Player1ID: player1ID,
		Player2ID: player2ID,
		Turn:      player1ID,
		Status:    MatchStatusPlacement,
	}
}

func (that *Match) IsAwaitingPlacement() bool {
	return that.Status == MatchStatusPlacement
}

func (that *Match) IsOngoing() bool {
	return that.Status == MatchStatusOngoing
}

func (that *Match) IsFinished() bool {
	return that.Status == MatchStatusFinished
}

func (that *Match) IsParticipant(playerID string) bool {
	return playerID == that.Player1ID || playerID == that.Player2ID
}

func (that *Match) OpponentOf(playerID string) string {
	if playerID == that.Player1ID {
		return that.Player2ID
	}

	return that.Player1ID
}

// BoardOf returns the board owned by playerID.
func (that *Match) BoardOf(playerID string) *Board {
	if playerID == that.Player1ID {
		return &that.Board1
	}

	return &that.Board2
}

// OpponentBoardOf returns the board playerID is shooting at.
func (that *Match) OpponentBoardOf(playerID string) *Board {
	if playerID == that.Player1ID {
		return &that.Board2
	}

	return &that.Board1
}

func (that *Match) HasPlaced(playerID string) bool {
	if playerID == that.Player1ID {
		return that.Placed1
	}

	return that.Placed2
}

func (that *Match) MarkPlaced(playerID string) {
	if playerID == that.Player1ID {
		that.Placed1 = true
		return
	}

	that.Placed2 = true
}

func (that *Match) BothPlaced() bool {
	return that.Placed1 && that.Placed2
}
