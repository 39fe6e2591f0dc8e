package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/testing/suite"
)

func TestUserRepository_Create(t *testing.T) {
	t.Run("Create_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		userRepo := NewUserRepository(st.Storage)

		// Given: a new user
		user := &entity.User{
			ID:       "u1",
			Username: "alice",
			Status:   entity.UserStatusOnline,
		}

		// When: Create is called
		err := userRepo.Create(ctx, user)

		// Then: no error should be returned
		require.NoError(t, err)
	})

	t.Run("Create_DuplicateUsername", func(t *testing.T) {
		ctx, st := suite.New(t)

		userRepo := NewUserRepository(st.Storage)

		err := userRepo.Create(ctx, &entity.User{ID: "u1", Username: "alice"})
		require.NoError(t, err)

		// When: another user claims the same username
		err = userRepo.Create(ctx, &entity.User{ID: "u2", Username: "alice"})

		// Then: an ErrUserExists error should be returned
		require.ErrorIs(t, err, apperror.ErrUserExists)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		userRepo := NewUserRepository(st.Storage)

		user := &entity.User{ID: "u1", Username: "alice", Status: entity.UserStatusOnline}

		err := userRepo.Create(ctx, user)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedUser, err := userRepo.GetByID(ctx, user.ID)

		// Then: the retrieved user should match the saved user
		require.NoError(t, err)
		assert.Equal(t, user, retrievedUser)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		userRepo := NewUserRepository(st.Storage)

		_, err := userRepo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("GetByUsername_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		userRepo := NewUserRepository(st.Storage)

		user := &entity.User{ID: "u1", Username: "alice"}

		err := userRepo.Create(ctx, user)
		require.NoError(t, err)

		// When: GetByUsername is called with the claimed name
		retrievedUser, err := userRepo.GetByUsername(ctx, "alice")

		// Then: the same user comes back
		require.NoError(t, err)
		assert.Equal(t, user.ID, retrievedUser.ID)
	})

	t.Run("GetByUsername_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		userRepo := NewUserRepository(st.Storage)

		_, err := userRepo.GetByUsername(ctx, "nobody")

		require.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}
