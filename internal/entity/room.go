package entity

const (
	RoomStatusWaiting = "waiting"
	RoomStatusFull    = "full"
)

type Room struct {
	ID        string `json:"id"`
	Player1ID string `json:"player1_id,omitempty"`
	Player2ID string `json:"player2_id,omitempty"`
	Status    string `json:"status"`
}

func NewRoom(id string) *Room {
	return &Room{
		ID:     id,
		Status: RoomStatusWaiting,
	}
}

func (that *Room) IsFull() bool {
	return that.Status == RoomStatusFull
}
