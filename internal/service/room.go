package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

const (
	PositionPlayer1 = "player1"
	PositionPlayer2 = "player2"
)

type RoomService interface {
	CreateRoom(ctx context.Context) (*entity.Room, error)
	JoinRoom(ctx context.Context, roomID, userID string) (*entity.Room, string, error)
	GetRoom(ctx context.Context, roomID string) (*entity.Room, error)
}

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
}

type userValidator interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type roomService struct {
	roomRepo roomRepo
	users    userValidator

	collaboratorTimeout time.Duration
}

func NewRoomService(roomRepo roomRepo, users userValidator, collaboratorTimeout time.Duration) RoomService {
	return &roomService{
		roomRepo:            roomRepo,
		users:               users,
		collaboratorTimeout: collaboratorTimeout,
	}
}

func (that *roomService) CreateRoom(ctx context.Context) (*entity.Room, error) {
	room := entity.NewRoom(uuid.NewString())

	if err := that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}

// JoinRoom seats the user in the first free slot. The second seat flips the
// room to full.
func (that *roomService) JoinRoom(ctx context.Context, roomID, userID string) (*entity.Room, string, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get room by id: %w", err)
	}

	if err = that.validateUser(ctx, userID); err != nil {
		return nil, "", err
	}

	if room.Player1ID == userID {
		return room, PositionPlayer1, nil
	}

	if room.Player2ID == userID {
		return room, PositionPlayer2, nil
	}

	if room.IsFull() {
		return nil, "", apperror.ErrRoomFull
	}

	position := PositionPlayer1
	if room.Player1ID == "" {
		room.Player1ID = userID
	} else {
		room.Player2ID = userID
		room.Status = entity.RoomStatusFull
		position = PositionPlayer2
	}

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, "", fmt.Errorf("failed to update room: %w", err)
	}

	return room, position, nil
}

func (that *roomService) GetRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return room, nil
}

// validateUser is a remote collaborator call, so it runs under its own
// deadline and degrades to ErrCollaboratorUnavailable instead of an
// internal failure.
func (that *roomService) validateUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, that.collaboratorTimeout)
	defer cancel()

	_, err := that.users.GetByID(ctx, userID)
	if errors.Is(err, apperror.ErrUserNotFound) {
		return apperror.ErrUserNotFound
	}

	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	return nil
}
