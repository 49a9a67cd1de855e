package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type testServer struct {
	engine *tictactoe.GameEngine
	hub    *Hub
	url    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger)
	engine := tictactoe.NewGameEngine(logger, hub)

	srv := httptest.NewServer(New(logger, engine, hub))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return &testServer{
		engine: engine,
		hub:    hub,
		url:    "ws" + strings.TrimPrefix(srv.URL, "http"),
	}
}

// dial connects a client and consumes the initial state message.
func (that *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(that.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	message := readMessage(t, conn)
	require.Equal(t, actionState, message.Action)

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	return message
}

func sendTurn(t *testing.T, conn *websocket.Conn, row, column int) {
	t.Helper()

	payload, err := json.Marshal(TurnPayload{Row: &row, Column: &column})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: actionTurn, Payload: payload}))
}

func decodeEvent(t *testing.T, message Message) tictactoe.Event {
	t.Helper()

	var event tictactoe.Event
	require.NoError(t, json.Unmarshal(message.Payload, &event))

	return event
}

func decodeError(t *testing.T, message Message) ErrorPayload {
	t.Helper()

	require.Equal(t, actionError, message.Action)

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return payload
}

func TestServer_Connect(t *testing.T) {
	// Given: a running server with one mark already placed
	ts := newTestServer(t)
	ts.engine.PlaceMark(1, 1)

	// When: a client connects
	conn, _, err := websocket.DefaultDialer.Dial(ts.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// Then: the first message is the current board
	message := readMessage(t, conn)
	require.Equal(t, actionState, message.Action)

	var payload StatePayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))
	require.NotNil(t, payload.Game)
	assert.Equal(t, entity.MarkPlayerOne, payload.Game.Board.Cell(1, 1))
	assert.Equal(t, entity.PlayerTwo, payload.Game.CurrentPlayer)
	assert.Empty(t, payload.Hint)

	require.Eventually(t, func() bool { return ts.hub.Len() == 1 }, time.Second, 10*time.Millisecond)
}

func TestServer_Turn(t *testing.T) {
	t.Run("Mark is broadcast to every client", func(t *testing.T) {
		// Given: two connected clients
		ts := newTestServer(t)
		first := ts.dial(t)
		second := ts.dial(t)

		// When: the first client marks (0, 2)
		sendTurn(t, first, 0, 2)

		// Then: both receive the same cell:marked event
		for _, conn := range []*websocket.Conn{first, second} {
			message := readMessage(t, conn)
			require.Equal(t, tictactoe.EventCellMarked, message.Action)

			event := decodeEvent(t, message)
			assert.Equal(t, 0, *event.Row)
			assert.Equal(t, 2, *event.Column)
			assert.Equal(t, entity.MarkPlayerOne, *event.Mark)
			assert.Equal(t, entity.ColorNavy, event.Style.Foreground)
		}
	})

	t.Run("Out of range cell is reported to the sender only", func(t *testing.T) {
		// Given: two connected clients
		ts := newTestServer(t)
		first := ts.dial(t)
		second := ts.dial(t)

		// When: the first client sends an invalid cell and then a valid one
		sendTurn(t, first, 3, 0)
		sendTurn(t, first, 2, 2)

		// Then: the sender gets an error before the broadcast
		payload := decodeError(t, readMessage(t, first))
		assert.Equal(t, actionTurn, payload.Action)
		assert.Contains(t, payload.Error, apperror.ErrInvalidCell.Error())
		assert.Equal(t, tictactoe.EventCellMarked, readMessage(t, first).Action)

		// And: the other client only sees the valid mark
		assert.Equal(t, tictactoe.EventCellMarked, readMessage(t, second).Action)
		assert.Equal(t, 1, ts.engine.State().Moves)
	})

	t.Run("Missing coordinates are an invalid payload", func(t *testing.T) {
		// Given: a connected client
		ts := newTestServer(t)
		conn := ts.dial(t)

		// When: a turn without a column is sent
		require.NoError(t, conn.WriteJSON(Message{Action: actionTurn, Payload: json.RawMessage(`{"row":1}`)}))

		// Then: an invalid payload error is returned
		payload := decodeError(t, readMessage(t, conn))
		assert.Contains(t, payload.Error, apperror.ErrInvalidPayload.Error())
		assert.Zero(t, ts.engine.State().Moves)
	})

	t.Run("Win is broadcast with a hint and the next click resets", func(t *testing.T) {
		// Given: a connected client
		ts := newTestServer(t)
		conn := ts.dial(t)

		// When: the top-row scenario is played
		for _, cell := range [][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}, {0, 2}} {
			sendTurn(t, conn, cell[0], cell[1])
			require.Equal(t, tictactoe.EventCellMarked, readMessage(t, conn).Action)
		}

		// Then: player one's win is announced
		message := readMessage(t, conn)
		require.Equal(t, tictactoe.EventGameWon, message.Action)

		event := decodeEvent(t, message)
		assert.Equal(t, entity.PlayerOne, event.Winner)
		assert.Equal(t, entity.Line{0, 1, 2}, *event.Line)
		assert.Equal(t, tictactoe.NewGameHint, event.Hint)

		// When: any cell is clicked afterwards
		sendTurn(t, conn, 2, 2)

		// Then: the board is reset
		assert.Equal(t, tictactoe.EventGameReset, readMessage(t, conn).Action)
		assert.Equal(t, entity.NewGameState(), ts.engine.State())
	})
}

func TestServer_NewGame(t *testing.T) {
	// Given: a client and a board with one mark
	ts := newTestServer(t)
	conn := ts.dial(t)
	sendTurn(t, conn, 1, 1)
	require.Equal(t, tictactoe.EventCellMarked, readMessage(t, conn).Action)

	// When: a new game is requested
	require.NoError(t, conn.WriteJSON(Message{Action: actionNewGame}))

	// Then: the reset is broadcast and the board is empty
	message := readMessage(t, conn)
	require.Equal(t, tictactoe.EventGameReset, message.Action)
	assert.Equal(t, entity.DefaultStyle, *decodeEvent(t, message).Style)
	assert.Equal(t, entity.Board{}, ts.engine.State().Board)
}

func TestServer_State(t *testing.T) {
	// Given: a drawn game
	ts := newTestServer(t)
	conn := ts.dial(t)
	for _, cell := range [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}} {
		ts.engine.PlaceMark(cell[0], cell[1])
	}

	// Drain the broadcasts: nine marks and the draw
	for i := 0; i < 9; i++ {
		require.Equal(t, tictactoe.EventCellMarked, readMessage(t, conn).Action)
	}
	require.Equal(t, tictactoe.EventGameDraw, readMessage(t, conn).Action)

	// When: the client asks for the state
	require.NoError(t, conn.WriteJSON(Message{Action: actionState}))

	// Then: it receives the finished board with the new game hint
	message := readMessage(t, conn)
	require.Equal(t, actionState, message.Action)

	var payload StatePayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))
	assert.Equal(t, entity.PhaseDraw, payload.Game.Phase)
	assert.Equal(t, tictactoe.NewGameHint, payload.Hint)
}

func TestServer_UnknownAction(t *testing.T) {
	// Given: a connected client
	ts := newTestServer(t)
	conn := ts.dial(t)

	// When: an unknown action is sent
	require.NoError(t, conn.WriteJSON(Message{Action: "game:undo"}))

	// Then: the client is told the action is unknown
	payload := decodeError(t, readMessage(t, conn))
	assert.Equal(t, "game:undo", payload.Action)
	assert.Equal(t, apperror.ErrUnknownAction.Error(), payload.Error)
}

func TestServer_InvalidJSON(t *testing.T) {
	// Given: a connected client
	ts := newTestServer(t)
	conn := ts.dial(t)

	// When: garbage is sent
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	// Then: an invalid payload error comes back and the connection stays usable
	payload := decodeError(t, readMessage(t, conn))
	assert.Contains(t, payload.Error, apperror.ErrInvalidPayload.Error())

	sendTurn(t, conn, 0, 0)
	assert.Equal(t, tictactoe.EventCellMarked, readMessage(t, conn).Action)
}

func TestServer_Disconnect(t *testing.T) {
	// Given: a connected client
	ts := newTestServer(t)
	conn := ts.dial(t)
	require.Eventually(t, func() bool { return ts.hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	// When: the client disconnects
	require.NoError(t, conn.Close())

	// Then: the hub forgets it and the engine keeps working
	require.Eventually(t, func() bool { return ts.hub.Len() == 0 }, 5*time.Second, 10*time.Millisecond)
	ts.engine.PlaceMark(0, 0)
	assert.Equal(t, 1, ts.engine.State().Moves)
}
