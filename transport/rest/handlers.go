package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

type userService interface {
	Register(ctx context.Context, username string) (*entity.User, error)
	Login(ctx context.Context, username string) (*entity.User, string, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type roomService interface {
	CreateRoom(ctx context.Context) (*entity.Room, error)
	JoinRoom(ctx context.Context, roomID, userID string) (*entity.Room, string, error)
	GetRoom(ctx context.Context, roomID string) (*entity.Room, error)
}

type matchUseCase interface {
	StartMatch(ctx context.Context, roomID string) (entity.Match, error)
}

type Handlers struct {
	logger *slog.Logger

	users   userService
	rooms   roomService
	matches matchUseCase
}

func NewHandlers(logger *slog.Logger, users userService, rooms roomService, matches matchUseCase) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		users:   users,
		rooms:   rooms,
		matches: matches,
	}
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		that.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username required"})
		return
	}

	user, err := that.users.Register(r.Context(), req.Username)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, map[string]string{
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (that *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		that.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username required"})
		return
	}

	user, token, err := that.users.Login(r.Context(), req.Username)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]string{
		"userId":   user.ID,
		"username": user.Username,
		"token":    token,
	})
}

func (that *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := that.users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, user)
}

func (that *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := that.rooms.CreateRoom(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, map[string]string{"roomId": room.ID})
}

func (that *Handlers) JoinRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		that.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId required"})
		return
	}

	room, position, err := that.rooms.JoinRoom(r.Context(), r.PathValue("id"), req.UserID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]string{
		"roomId":       room.ID,
		"status":       room.Status,
		"yourPosition": position,
	})
}

func (that *Handlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := that.rooms.GetRoom(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, room)
}

func (that *Handlers) StartMatch(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.StartMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Game started",
		"roomId":  match.RoomID,
	})
}

// writeError maps the error taxonomy to status classes: not-found 404,
// validation and state 400, collaborator failures 502.
func (that *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case apperror.IsNotFound(err):
		status = http.StatusNotFound
	case apperror.IsValidation(err) || apperror.IsState(err):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrCollaboratorUnavailable):
		status = http.StatusBadGateway
	default:
		that.logger.Error("unexpected error", "error", err)
	}

	that.writeJSON(w, status, map[string]string{"error": rootCause(err)})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func rootCause(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
