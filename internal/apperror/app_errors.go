package apperror

import "errors"

// Rule violations coming from client input. Answered with an error event,
// state stays untouched.
var (
	ErrOutOfBounds   = errors.New("coordinates are out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied by a ship")
	ErrBadShipShape  = errors.New("positions do not form the required fleet")
	ErrAlreadyPlaced = errors.New("ships are already placed")
	ErrAlreadyFired  = errors.New("cell was already fired at")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrNotInMatch    = errors.New("player is not part of this match")
	ErrUserExists    = errors.New("username is already taken")
)

// Operations that are legal in general but not in the current phase.
var (
	ErrMatchNotStarted = errors.New("match is not started")
	ErrMatchFinished   = errors.New("match is already finished")
	ErrRoomNotFull     = errors.New("room is not full")
	ErrRoomFull        = errors.New("room is full")
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrMatchNotFound = errors.New("match not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ErrCollaboratorUnavailable wraps timeouts and transport failures of the
// room/user collaborators.
var ErrCollaboratorUnavailable = errors.New("collaborator is unavailable")

func IsValidation(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrBadShipShape) ||
		errors.Is(err, ErrAlreadyPlaced) ||
		errors.Is(err, ErrAlreadyFired) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrNotInMatch) ||
		errors.Is(err, ErrUserExists)
}

func IsState(err error) bool {
	return errors.Is(err, ErrMatchNotStarted) ||
		errors.Is(err, ErrMatchFinished) ||
		errors.Is(err, ErrRoomNotFull) ||
		errors.Is(err, ErrRoomFull)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrMatchNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
