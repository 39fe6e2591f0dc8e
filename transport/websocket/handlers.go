package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/battleship"
)

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *client) error {
	log := that.logger.With("method", "handleJoinGame")

	var payloadReq joinGamePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := that.uMatch.JoinMatch(ctx, payloadReq.RoomID, payloadReq.UserID); err != nil {
		log.Error("failed to join match", "roomID", payloadReq.RoomID, "error", err)
		return that.sendError(conn, reason(err))
	}

	that.subscribe(payloadReq.RoomID, conn)

	log.Info("player joined game", "roomID", payloadReq.RoomID, "userID", payloadReq.UserID)

	return that.sendMessage(conn, actionJoined, joinedPayload{
		RoomID: payloadReq.RoomID,
		YourID: payloadReq.UserID,
	})
}

func (that *Server) handlePlaceShips(ctx context.Context, msg *Message, conn *client) error {
	log := that.logger.With("method", "handlePlaceShips")

	var payloadReq placeShipsPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	events, err := that.uMatch.PlaceShips(ctx, payloadReq.RoomID, payloadReq.UserID, payloadReq.Positions)
	if err != nil {
		log.Error("failed to place ships", "roomID", payloadReq.RoomID, "error", err)
		return that.sendError(conn, reason(err))
	}

	log.Info("player placed ships", "roomID", payloadReq.RoomID, "userID", payloadReq.UserID)

	for _, event := range events {
		that.broadcastEvent(payloadReq.RoomID, event)
	}

	return nil
}

func (that *Server) handleFire(ctx context.Context, msg *Message, conn *client) error {
	log := that.logger.With("method", "handleFire")

	var payloadReq firePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	event, err := that.uMatch.Fire(ctx, payloadReq.RoomID, payloadReq.UserID, payloadReq.X, payloadReq.Y)
	if err != nil {
		log.Error("failed to fire", "roomID", payloadReq.RoomID, "error", err)
		return that.sendError(conn, reason(err))
	}

	that.broadcastEvent(payloadReq.RoomID, event)

	return nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, conn *client) error {
	log := that.logger.With("method", "handleGameState")

	var payloadReq gameStatePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	snapshot, err := that.uMatch.State(ctx, payloadReq.RoomID, payloadReq.UserID)
	if err != nil {
		log.Error("failed to get state", "roomID", payloadReq.RoomID, "error", err)
		return that.sendError(conn, reason(err))
	}

	return that.sendMessage(conn, actionState, snapshot)
}

func (that *Server) broadcastEvent(roomID string, event battleship.Event) {
	switch event.Type {
	case battleship.EventShipsPlaced:
		that.broadcast(roomID, actionShipsPlaced, shipsPlacedPayload{UserID: event.UserID})
	case battleship.EventGameReady:
		that.broadcast(roomID, actionGameReady, gameReadyPayload{Turn: event.Turn})
	case battleship.EventMoveUpdate:
		that.broadcast(roomID, actionMoveUpdate, moveUpdatePayload{Hit: event.Hit, X: event.X, Y: event.Y, Turn: event.Turn})
	case battleship.EventGameOver:
		that.broadcast(roomID, actionGameOver, gameOverPayload{Winner: event.Winner})
	default:
		that.logger.Error("unknown event type", "type", event.Type)
	}
}
