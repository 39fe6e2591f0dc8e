package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/battleship"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/session"
)

type roomService interface {
	GetRoom(ctx context.Context, roomID string) (*entity.Room, error)
}

type sessionStore interface {
	CreateIfAbsent(roomID, player1ID, player2ID string) (*session.Session, bool)
	Get(roomID string) (*session.Session, error)
}

// MatchSnapshot is the resync view for one player: own board in full, the
// opponent's board masked to hits and misses.
type MatchSnapshot struct {
	RoomID        string       `json:"room_id"`
	YourBoard     entity.Board `json:"your_board"`
	OpponentBoard entity.Board `json:"opponent_board"`
	Turn          string       `json:"turn,omitempty"`
	Status        string       `json:"status"`
	Winner        string       `json:"winner,omitempty"`
}

// MatchUseCase routes protocol operations onto room sessions. Every mutation
// is preceded by the same two checks: the room has a live match, and the
// acting user is one of its two participants.
type MatchUseCase struct {
	logger *slog.Logger

	rooms    roomService
	sessions sessionStore

	collaboratorTimeout time.Duration
}

func NewMatchUseCase(logger *slog.Logger, rooms roomService, sessions sessionStore, collaboratorTimeout time.Duration) *MatchUseCase {
	return &MatchUseCase{
		logger:              logger.With("component", "match-usecase"),
		rooms:               rooms,
		sessions:            sessions,
		collaboratorTimeout: collaboratorTimeout,
	}
}

// StartMatch creates the match for a full room. Safe to call more than once;
// only the first call creates anything.
func (that *MatchUseCase) StartMatch(ctx context.Context, roomID string) (entity.Match, error) {
	room, err := that.getRoom(ctx, roomID)
	if err != nil {
		return entity.Match{}, err
	}

	if !room.IsFull() {
		return entity.Match{}, apperror.ErrRoomNotFull
	}

	sess, created := that.sessions.CreateIfAbsent(roomID, room.Player1ID, room.Player2ID)
	if created {
		that.logger.Info("match started", "roomID", roomID)
	}

	return sess.Snapshot(), nil
}

// JoinMatch checks that userID may subscribe to the room's events.
func (that *MatchUseCase) JoinMatch(_ context.Context, roomID, userID string) error {
	sess, err := that.sessions.Get(roomID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	return sess.Do(func(match *entity.Match) error {
		if !match.IsParticipant(userID) {
			return apperror.ErrNotInMatch
		}

		return nil
	})
}

func (that *MatchUseCase) PlaceShips(_ context.Context, roomID, userID string, positions []entity.Position) ([]battleship.Event, error) {
	sess, err := that.sessions.Get(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var events []battleship.Event

	err = sess.Do(func(match *entity.Match) error {
		if !match.IsParticipant(userID) {
			return apperror.ErrNotInMatch
		}

		events, err = battleship.PlaceShips(match, userID, positions)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place ships: %w", err)
	}

	return events, nil
}

func (that *MatchUseCase) Fire(_ context.Context, roomID, userID string, x, y int) (battleship.Event, error) {
	sess, err := that.sessions.Get(roomID)
	if err != nil {
		return battleship.Event{}, fmt.Errorf("failed to get session: %w", err)
	}

	var event battleship.Event

	err = sess.Do(func(match *entity.Match) error {
		if !match.IsParticipant(userID) {
			return apperror.ErrNotInMatch
		}

		event, err = battleship.Fire(match, userID, x, y)
		return err
	})
	if err != nil {
		return battleship.Event{}, fmt.Errorf("failed to fire: %w", err)
	}

	if event.Type == battleship.EventGameOver {
		that.logger.Info("match finished", "roomID", roomID, "winner", event.Winner)
	}

	return event, nil
}

// State serves reconnecting clients that missed broadcasts.
func (that *MatchUseCase) State(_ context.Context, roomID, userID string) (MatchSnapshot, error) {
	sess, err := that.sessions.Get(roomID)
	if err != nil {
		return MatchSnapshot{}, fmt.Errorf("failed to get session: %w", err)
	}

	var snapshot MatchSnapshot

	err = sess.Do(func(match *entity.Match) error {
		if !match.IsParticipant(userID) {
			return apperror.ErrNotInMatch
		}

		snapshot = MatchSnapshot{
			RoomID:        match.RoomID,
			YourBoard:     *match.BoardOf(userID),
			OpponentBoard: match.OpponentBoardOf(userID).Masked(),
			Turn:          match.Turn,
			Status:        match.Status,
			Winner:        match.Winner,
		}

		return nil
	})
	if err != nil {
		return MatchSnapshot{}, err
	}

	return snapshot, nil
}

// getRoom calls the room collaborator under a deadline so a slow lookup
// cannot wedge match start.
func (that *MatchUseCase) getRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, that.collaboratorTimeout)
	defer cancel()

	room, err := that.rooms.GetRoom(ctx, roomID)
	if errors.Is(err, apperror.ErrRoomNotFound) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	return room, nil
}
