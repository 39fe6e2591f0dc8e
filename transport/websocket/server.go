package websocket

import (
	"bufio"
	"context"
	"crypto/sha1" //nolint: gosec // mandated by the websocket handshake
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/battleship"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/usecase"
)

const websocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

type uMatch interface {
	JoinMatch(ctx context.Context, roomID, userID string) error
	PlaceShips(ctx context.Context, roomID, userID string, positions []entity.Position) ([]battleship.Event, error)
	Fire(ctx context.Context, roomID, userID string, x, y int) (battleship.Event, error)
	State(ctx context.Context, roomID, userID string) (usecase.MatchSnapshot, error)
}

// client is one upgraded connection. Writes are serialized so concurrent
// broadcasts do not interleave frames.
type client struct {
	mu    sync.Mutex
	bufrw *bufio.ReadWriter
}

type Server struct {
	logger *slog.Logger
	uMatch uMatch

	handlers map[string]func(ctx context.Context, message *Message, conn *client) error

	roomsMutex sync.RWMutex
	rooms      map[string]map[*client]struct{}
}

func New(logger *slog.Logger, uMatch uMatch) *Server {
	server := &Server{
		logger: logger,
		uMatch: uMatch,

		handlers: make(map[string]func(context.Context, *Message, *client) error),
		rooms:    make(map[string]map[*client]struct{}),
	}

	server.handlers[actionJoinGame] = server.handleJoinGame
	server.handlers[actionPlaceShips] = server.handlePlaceShips
	server.handlers[actionFire] = server.handleFire
	server.handlers[actionGameState] = server.handleGameState

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", generateAcceptKey(key))
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking")
		return
	}

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established")

	c := &client{bufrw: bufrw}
	defer that.unsubscribeAll(c)

	if err = that.handleMessages(ctx, c); err != nil && !errors.Is(err, io.EOF) {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		reqBody, err := readFrame(conn.bufrw)
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = that.sendError(conn, "unknown action: "+message.Action); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) subscribe(roomID string, conn *client) {
	that.roomsMutex.Lock()
	defer that.roomsMutex.Unlock()

	subscribers, ok := that.rooms[roomID]
	if !ok {
		subscribers = make(map[*client]struct{})
		that.rooms[roomID] = subscribers
	}

	subscribers[conn] = struct{}{}
}

func (that *Server) unsubscribeAll(conn *client) {
	that.roomsMutex.Lock()
	defer that.roomsMutex.Unlock()

	for roomID, subscribers := range that.rooms {
		delete(subscribers, conn)
		if len(subscribers) == 0 {
			delete(that.rooms, roomID)
		}
	}
}

// broadcast sends one message to every connection subscribed to the room.
func (that *Server) broadcast(roomID, action string, payload any) {
	log := that.logger.With("method", "broadcast", "roomID", roomID)

	that.roomsMutex.RLock()
	subscribers := make([]*client, 0, len(that.rooms[roomID]))
	for conn := range that.rooms[roomID] {
		subscribers = append(subscribers, conn)
	}
	that.roomsMutex.RUnlock()

	for _, conn := range subscribers {
		if err := that.sendMessage(conn, action, payload); err != nil {
			log.Error("failed to send broadcast", "error", err)
		}
	}
}

func (that *Server) sendMessage(conn *client, action string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{
		Action:  action,
		Payload: payloadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()

	if err = writeFrame(conn.bufrw, frame{isFin: true, opCode: opText, payload: responseBytes}); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *client, errorMsg string) error {
	if err := that.sendMessage(conn, actionError, errorPayload{Message: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

func generateAcceptKey(key string) string {
	hash := sha1.Sum([]byte(key + websocketGUID)) //nolint: gosec // mandated by the websocket handshake
	return base64.StdEncoding.EncodeToString(hash[:])
}
