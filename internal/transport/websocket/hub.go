package websocket

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	writeTimeout = 5 * time.Second

	// a full game is at most eleven events, so only a stalled client fills this
	sendQueueSize = 32
)

// client owns one connection. Messages are queued by enqueue and written by writeLoop,
// so a slow peer never holds up the engine.
type client struct {
	id   string
	conn *websocket.Conn

	outbox   chan Message
	done     chan struct{}
	stopOnce sync.Once
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{
		id:     id,
		conn:   conn,
		outbox: make(chan Message, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// enqueue never blocks. It returns false when the client is stopped or its queue is full.
func (that *client) enqueue(message Message) bool {
	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.outbox <- message:
		return true
	default:
		return false
	}
}

func (that *client) writeLoop(logger *slog.Logger) {
	for {
		select {
		case <-that.done:
			return
		case message := <-that.outbox:
			if err := that.write(message); err != nil {
				logger.Error("failed to write message", "client", that.id, "error", err)
				that.stop()
				return
			}
		}
	}
}

func (that *client) write(message Message) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// stop ends writeLoop and closes the connection, which also ends the read loop.
func (that *client) stop() {
	that.stopOnce.Do(func() {
		close(that.done)
		if that.conn != nil {
			_ = that.conn.Close()
		}
	})
}

// Hub keeps the connected clients and broadcasts every engine notification to them.
type Hub struct {
	*tictactoe.EventPresenter

	logger *slog.Logger

	clientsMutex sync.RWMutex
	clients      map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	hub := &Hub{
		logger:  logger.With("component", "websocket-hub"),
		clients: make(map[string]*client),
	}
	hub.EventPresenter = tictactoe.NewEventPresenter(hub.broadcastEvent)

	return hub
}

func (that *Hub) Len() int {
	that.clientsMutex.RLock()
	defer that.clientsMutex.RUnlock()

	return len(that.clients)
}

// Close drops every client connection.
func (that *Hub) Close() {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for id, c := range that.clients {
		c.stop()
		delete(that.clients, id)
	}
}

func (that *Hub) register(c *client) {
	that.clientsMutex.Lock()
	that.clients[c.id] = c
	that.clientsMutex.Unlock()

	that.logger.Info("client registered", "client", c.id)
}

func (that *Hub) unregister(c *client) {
	that.clientsMutex.Lock()
	_, ok := that.clients[c.id]
	delete(that.clients, c.id)
	that.clientsMutex.Unlock()

	c.stop()

	if ok {
		that.logger.Info("client unregistered", "client", c.id)
	}
}

func (that *Hub) broadcastEvent(event tictactoe.Event) {
	message, err := newMessage(event.Type, event)
	if err != nil {
		that.logger.Error("failed to marshal event", "event", event.Type, "error", err)
		return
	}

	that.broadcast(message)
}

func (that *Hub) broadcast(message Message) {
	log := that.logger.With("method", "broadcast", "action", message.Action)

	that.clientsMutex.RLock()
	clients := make([]*client, 0, len(that.clients))
	for _, c := range that.clients {
		clients = append(clients, c)
	}
	that.clientsMutex.RUnlock()

	for _, c := range clients {
		if !c.enqueue(message) {
			log.Warn("client is gone or not keeping up, dropping it", "client", c.id)
			that.unregister(c)
		}
	}
}
