package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

var errStorageDown = errors.New("storage down")

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*entity.Room)}
}

func (that *fakeRoomRepo) CreateOrUpdate(_ context.Context, room *entity.Room) error {
	copied := *room
	that.rooms[room.ID] = &copied
	return nil
}

func (that *fakeRoomRepo) GetByID(_ context.Context, id string) (*entity.Room, error) {
	room, ok := that.rooms[id]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	copied := *room
	return &copied, nil
}

type fakeUserValidator struct {
	users map[string]*entity.User
	err   error
}

func (that *fakeUserValidator) GetByID(_ context.Context, id string) (*entity.User, error) {
	if that.err != nil {
		return nil, that.err
	}

	user, ok := that.users[id]
	if !ok {
		return nil, apperror.ErrUserNotFound
	}

	return user, nil
}

func newTestRoomService(users *fakeUserValidator) (RoomService, *fakeRoomRepo) {
	repo := newFakeRoomRepo()
	return NewRoomService(repo, users, time.Second), repo
}

func knownUsers(ids ...string) *fakeUserValidator {
	users := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		users[id] = &entity.User{ID: id}
	}

	return &fakeUserValidator{users: users}
}

func TestRoomService_CreateRoom(t *testing.T) {
	ctx := context.Background()

	serviceInstance, repo := newTestRoomService(knownUsers())

	room, err := serviceInstance.CreateRoom(ctx)

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, entity.RoomStatusWaiting, room.Status)
	assert.Contains(t, repo.rooms, room.ID)
}

func TestRoomService_JoinRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("Seats two players and flips the room to full", func(t *testing.T) {
		serviceInstance, _ := newTestRoomService(knownUsers("u1", "u2"))

		room, err := serviceInstance.CreateRoom(ctx)
		require.NoError(t, err)

		// When: the first player joins
		joined, position, err := serviceInstance.JoinRoom(ctx, room.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, PositionPlayer1, position)
		assert.Equal(t, entity.RoomStatusWaiting, joined.Status)

		// When: the second player joins
		joined, position, err = serviceInstance.JoinRoom(ctx, room.ID, "u2")
		require.NoError(t, err)
		assert.Equal(t, PositionPlayer2, position)
		assert.True(t, joined.IsFull())
		assert.Equal(t, "u1", joined.Player1ID)
		assert.Equal(t, "u2", joined.Player2ID)
	})

	t.Run("Rejoining returns the existing seat", func(t *testing.T) {
		serviceInstance, _ := newTestRoomService(knownUsers("u1"))

		room, err := serviceInstance.CreateRoom(ctx)
		require.NoError(t, err)

		_, _, err = serviceInstance.JoinRoom(ctx, room.ID, "u1")
		require.NoError(t, err)

		_, position, err := serviceInstance.JoinRoom(ctx, room.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, PositionPlayer1, position)
	})

	t.Run("Third player is rejected", func(t *testing.T) {
		serviceInstance, _ := newTestRoomService(knownUsers("u1", "u2", "u3"))

		room, err := serviceInstance.CreateRoom(ctx)
		require.NoError(t, err)

		_, _, err = serviceInstance.JoinRoom(ctx, room.ID, "u1")
		require.NoError(t, err)
		_, _, err = serviceInstance.JoinRoom(ctx, room.ID, "u2")
		require.NoError(t, err)

		_, _, err = serviceInstance.JoinRoom(ctx, room.ID, "u3")
		require.ErrorIs(t, err, apperror.ErrRoomFull)
	})

	t.Run("Unknown user is rejected", func(t *testing.T) {
		serviceInstance, _ := newTestRoomService(knownUsers())

		room, err := serviceInstance.CreateRoom(ctx)
		require.NoError(t, err)

		_, _, err = serviceInstance.JoinRoom(ctx, room.ID, "ghost")
		require.ErrorIs(t, err, apperror.ErrUserNotFound)
	})

	t.Run("User collaborator failure maps to unavailable", func(t *testing.T) {
		serviceInstance, _ := newTestRoomService(&fakeUserValidator{err: errStorageDown})

		room, err := serviceInstance.CreateRoom(ctx)
		require.NoError(t, err)

		_, _, err = serviceInstance.JoinRoom(ctx, room.ID, "u1")
		require.ErrorIs(t, err, apperror.ErrCollaboratorUnavailable)
	})

	t.Run("Unknown room is rejected", func(t *testing.T) {
		serviceInstance, _ := newTestRoomService(knownUsers("u1"))

		_, _, err := serviceInstance.JoinRoom(ctx, "missing", "u1")
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})
}
