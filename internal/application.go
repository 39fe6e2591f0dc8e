package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/config"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/repository"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/repository/storage"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/service"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/session"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/usecase"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/transport/rest"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const janitorInterval = time.Minute

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	roomRepo := repository.NewRoomRepository(redisStorage.Connection)
	userRepo := repository.NewUserRepository(redisStorage.Connection)

	authService := service.NewAuthService(conf.JWTSecretKey)
	userService := service.NewUserService(userRepo, authService)
	roomService := service.NewRoomService(roomRepo, userService, conf.CollaboratorTimeout)

	sessionStore := session.NewMemoryStore(logger, conf.FinishedMatchTTL)
	go sessionStore.RunJanitor(ctx, janitorInterval)

	matchUseCase := usecase.NewMatchUseCase(logger, roomService, sessionStore, conf.CollaboratorTimeout)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handlers := rest.NewHandlers(logger, userService, roomService, matchUseCase)
		if httpErr := rest.Start(conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, matchUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
