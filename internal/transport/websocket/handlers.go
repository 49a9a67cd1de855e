package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

// handleTurn - validates the cell and places a mark. The result reaches clients through the hub.
func (that *Server) handleTurn(_ context.Context, _ *client, message *Message) error {
	var payload TurnPayload

	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	if payload.Row == nil || payload.Column == nil {
		return fmt.Errorf("%w: row and column are required", apperror.ErrInvalidPayload)
	}

	row, column := *payload.Row, *payload.Column
	if !entity.InRange(row, column) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, column)
	}

	that.engine.PlaceMark(row, column)

	return nil
}

func (that *Server) handleNewGame(_ context.Context, _ *client, _ *Message) error {
	that.engine.NewGame()

	return nil
}

func (that *Server) handleState(_ context.Context, c *client, _ *Message) error {
	state := that.engine.State()

	if !c.enqueue(stateMessage(&state)) {
		return fmt.Errorf("failed to send state: %w", errQueueClosed)
	}

	return nil
}

func stateMessage(state *entity.GameState) Message {
	payload := StatePayload{Game: state}
	if state.IsFinished() {
		payload.Hint = tictactoe.NewGameHint
	}

	// a GameState always encodes
	message, _ := newMessage(actionState, payload)

	return message
}
