package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

type dbUser struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) UserRepository {
	return &dbUser{
		client: client,
	}
}

// Create stores the user and claims the username atomically; a taken
// username fails with ErrUserExists.
func (that *dbUser) Create(ctx context.Context, user *entity.User) error {
	usernameKey := "username:" + user.Username

	claimed, err := that.client.SetNX(ctx, usernameKey, user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim username: %w", err)
	}

	if !claimed {
		return apperror.ErrUserExists
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	userKey := "user:" + user.ID
	err = that.client.Set(ctx, userKey, userJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set user: %w", err)
	}

	return nil
}

func (that *dbUser) GetByID(ctx context.Context, id string) (*entity.User, error) {
	userKey := "user:" + id

	response, err := that.client.Get(ctx, userKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.User{}, apperror.ErrUserNotFound
	}

	if err != nil {
		return &entity.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	var existingUser entity.User
	if err = json.Unmarshal([]byte(response), &existingUser); err != nil {
		return &entity.User{}, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &existingUser, nil
}

func (that *dbUser) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	usernameKey := "username:" + username

	id, err := that.client.Get(ctx, usernameKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.User{}, apperror.ErrUserNotFound
	}

	if err != nil {
		return &entity.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return that.GetByID(ctx, id)
}
