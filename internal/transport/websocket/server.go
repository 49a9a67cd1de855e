package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type gameEngine interface {
	PlaceMark(row, column int) entity.Outcome
	NewGame()
	State() entity.GameState
	Observe(fn func(state entity.GameState))
}

const maxMessageSize = 4096

var errQueueClosed = errors.New("client send queue is closed or full")

type handlerFunc func(ctx context.Context, c *client, message *Message) error

// Server upgrades HTTP requests and feeds client actions into the engine.
type Server struct {
	logger *slog.Logger
	engine gameEngine
	hub    *Hub

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, engine gameEngine, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		engine: engine,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionState] = server.handleState

	return server
}

// ServeHTTP - upgrades the connection to WebSocket and serves it until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)

	c := newClient(uuid.NewString(), conn)
	go c.writeLoop(log)

	// the snapshot is queued before any event that follows it
	queued := false
	that.engine.Observe(func(state entity.GameState) {
		that.hub.register(c)
		queued = c.enqueue(stateMessage(&state))
	})
	defer that.hub.unregister(c)

	if !queued {
		log.Error("failed to queue initial state", "client", c.id)
		return
	}

	log.Info("WebSocket connection established", "client", c.id)

	if err = that.handleMessages(req.Context(), c); err != nil {
		log.Info("WebSocket connection closed", "client", c.id, "reason", err)
	}
}

// handleMessages - processes messages from the client in the order they arrive.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages", "client", c.id)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(c, "", fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err))
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			that.sendError(c, message.Action, apperror.ErrUnknownAction)
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			that.sendError(c, message.Action, err)
		}
	}
}

func (that *Server) sendError(c *client, action string, err error) {
	message, marshalErr := newMessage(actionError, ErrorPayload{Action: action, Error: err.Error()})
	if marshalErr != nil {
		that.logger.Error("failed to marshal error", "error", errors.Join(err, marshalErr))
		return
	}

	if !c.enqueue(message) {
		that.logger.Error("failed to queue error", "client", c.id, "error", errQueueClosed)
	}
}
