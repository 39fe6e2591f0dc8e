package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

type UserService interface {
	Register(ctx context.Context, username string) (*entity.User, error)
	Login(ctx context.Context, username string) (*entity.User, string, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type userRepo interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

type authService interface {
	GenerateToken(userID, username string) (string, error)
}

type userService struct {
	userRepo userRepo
	auth     authService
}

func NewUserService(userRepo userRepo, auth authService) UserService {
	return &userService{
		userRepo: userRepo,
		auth:     auth,
	}
}

func (that *userService) Register(ctx context.Context, username string) (*entity.User, error) {
	user := &entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Status:   entity.UserStatusOnline,
	}

	if err := that.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return user, nil
}

func (that *userService) Login(ctx context.Context, username string) (*entity.User, string, error) {
	user, err := that.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user by username: %w", err)
	}

	token, err := that.auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("could not generate token: %w", err)
	}

	return user, token, nil
}

func (that *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := that.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return user, nil
}
