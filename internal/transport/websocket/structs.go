package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	actionTurn    = "game:turn"
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Row    *int `json:"row"`
	Column *int `json:"column"`
}

type StatePayload struct {
	Game *entity.GameState `json:"game"`
	Hint string            `json:"hint,omitempty"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}

func newMessage(action string, payload any) (Message, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Action: action, Payload: payloadJSON}, nil
}
