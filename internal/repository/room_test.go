package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/testing/suite"
)

func TestRoomRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	// Given: a waiting room
	room := entity.NewRoom("123")

	// When: CreateOrUpdate is called
	err := roomRepo.CreateOrUpdate(ctx, room)

	// Then: no error should be returned, and the room is stored
	require.NoError(t, err)
}

func TestRoomRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a full room
		room := &entity.Room{
			ID:        "123",
			Player1ID: "u1",
			Player2ID: "u2",
			Status:    entity.RoomStatusFull,
		}

		err := roomRepo.CreateOrUpdate(ctx, room)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedRoom, err := roomRepo.GetByID(ctx, room.ID)

		// Then: the retrieved room should match the saved room
		require.NoError(t, err)
		require.Equal(t, room, retrievedRoom)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedRoom, err := roomRepo.GetByID(ctx, "9999999")

		// Then: an ErrRoomNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Empty(t, retrievedRoom.ID)
	})
}

func TestRoomRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	room := entity.NewRoom("123")

	err := roomRepo.CreateOrUpdate(ctx, room)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = roomRepo.DeleteByID(ctx, room.ID)
	require.NoError(t, err)

	_, err = roomRepo.GetByID(ctx, room.ID)
	require.ErrorIs(t, err, apperror.ErrRoomNotFound)
}
