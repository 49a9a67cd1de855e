package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the symbol occupying a board cell.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkPlayerOne
	MarkPlayerTwo
)

const (
	SymbolEmpty     = ""
	SymbolPlayerOne = "X"
	SymbolPlayerTwo = "O"
)

func (that Mark) String() string {
	switch that {
	case MarkPlayerOne:
		return SymbolPlayerOne
	case MarkPlayerTwo:
		return SymbolPlayerTwo
	default:
		return SymbolEmpty
	}
}

func (that Mark) IsEmpty() bool {
	return that == MarkEmpty
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case SymbolEmpty:
		*that = MarkEmpty
	case SymbolPlayerOne:
		*that = MarkPlayerOne
	case SymbolPlayerTwo:
		*that = MarkPlayerTwo
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}

// Player identifies who is entitled to place the next mark.
type Player int

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

func (that Player) Mark() Mark {
	if that == PlayerTwo {
		return MarkPlayerTwo
	}
	return MarkPlayerOne
}

func (that Player) Other() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return ""
	}
}

// MarshalText encodes a player as its mark symbol and anything else as "".
func (that Player) MarshalText() ([]byte, error) {
	switch that {
	case PlayerOne, PlayerTwo:
		return []byte(that.Mark().String()), nil
	default:
		return []byte(SymbolEmpty), nil
	}
}

func (that *Player) UnmarshalText(text []byte) error {
	var mark Mark
	if err := mark.UnmarshalText(text); err != nil {
		return err
	}

	if mark.IsEmpty() {
		*that = 0
		return nil
	}

	player, ok := PlayerOf(mark)
	if !ok {
		return fmt.Errorf("%w: %q is not a player mark", ErrUnknownMark, text)
	}

	*that = player

	return nil
}

// PlayerOf returns the owner of a non-empty mark.
func PlayerOf(mark Mark) (Player, bool) {
	switch mark {
	case MarkPlayerOne:
		return PlayerOne, true
	case MarkPlayerTwo:
		return PlayerTwo, true
	default:
		return 0, false
	}
}
