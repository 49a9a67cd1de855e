package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

const (
	EventCellMarked = "cell:marked"
	EventGameReset  = "game:reset"
	EventGameWon    = "game:won"
	EventGameDraw   = "game:draw"
)

// NewGameHint is shown once a game has ended.
const NewGameHint = "Press any square to start a new game"

// Event is a presenter notification in a form that can be sent over the wire.
type Event struct {
	Type   string        `json:"type"`
	Row    *int          `json:"row,omitempty"`
	Column *int          `json:"column,omitempty"`
	Mark   *entity.Mark  `json:"mark,omitempty"`
	Style  *entity.Style `json:"style,omitempty"`
	Winner entity.Player `json:"winner,omitempty"`
	Line   *entity.Line  `json:"line,omitempty"`
	Hint   string        `json:"hint,omitempty"`
}

func (that Event) IsTerminal() bool {
	return that.Type == EventGameWon || that.Type == EventGameDraw
}

// EventPresenter turns notifications into events and passes them to sink.
type EventPresenter struct {
	sink func(Event)
}

func NewEventPresenter(sink func(Event)) *EventPresenter {
	return &EventPresenter{sink: sink}
}

func (that *EventPresenter) OnCellMarked(row, column int, mark entity.Mark, style entity.Style) {
	that.sink(Event{
		Type:   EventCellMarked,
		Row:    &row,
		Column: &column,
		Mark:   &mark,
		Style:  &style,
	})
}

func (that *EventPresenter) OnGameReset() {
	style := entity.DefaultStyle
	that.sink(Event{Type: EventGameReset, Style: &style})
}

func (that *EventPresenter) OnGameWon(winner entity.Player, line entity.Line) {
	style := entity.WinStyle
	that.sink(Event{
		Type:   EventGameWon,
		Winner: winner,
		Line:   &line,
		Style:  &style,
		Hint:   NewGameHint,
	})
}

func (that *EventPresenter) OnGameDraw() {
	style := entity.DrawStyle
	that.sink(Event{Type: EventGameDraw, Style: &style, Hint: NewGameHint})
}
