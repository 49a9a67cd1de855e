package tictactoe

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// GameEngine owns a single game and reports every change to its presenter.
// Calls are serialized; presenters run under the engine lock and must not
// call back into the engine.
type GameEngine struct {
	logger    *slog.Logger
	presenter Presenter

	mu    sync.Mutex
	state entity.GameState
}

func NewGameEngine(logger *slog.Logger, presenter Presenter) *GameEngine {
	if presenter == nil {
		presenter = nopPresenter{}
	}

	return &GameEngine{
		logger:    logger.With("component", "engine"),
		presenter: presenter,
		state:     entity.NewGameState(),
	}
}

// NewGame resets the board and gives the first turn to player one.
func (that *GameEngine) NewGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset()
}

// PlaceMark marks (row, column) for the current player. A finished game is
// restarted instead, and an occupied cell is ignored. Coordinates outside the
// board panic.
func (that *GameEngine) PlaceMark(row, column int) entity.Outcome {
	if !entity.InRange(row, column) {
		panic(fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, column))
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "PlaceMark", "row", row, "column", column)

	if that.state.IsFinished() {
		log.Debug("game already finished, starting a new one")
		that.reset()
		return that.state.Outcome()
	}

	index := entity.Index(row, column)
	if !that.state.Board[index].IsEmpty() {
		log.Debug("cell already marked, ignoring")
		return that.state.Outcome()
	}

	mark := that.state.CurrentPlayer.Mark()
	that.state.Board[index] = mark
	that.state.Moves++
	that.presenter.OnCellMarked(row, column, mark, entity.StyleFor(mark))

	that.state.CurrentPlayer = that.state.CurrentPlayer.Other()

	that.updateGameState()

	log.Debug("mark placed", "mark", mark.String(), "phase", that.state.Phase)

	return that.state.Outcome()
}

// State returns a copy of the current game state.
func (that *GameEngine) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

// Observe runs fn with the current state while holding the engine lock, so no
// notification can interleave with it. fn must not call back into the engine.
func (that *GameEngine) Observe(fn func(state entity.GameState)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	fn(that.snapshot())
}

func (that *GameEngine) snapshot() entity.GameState {
	state := that.state
	if state.WinningLine != nil {
		line := *state.WinningLine
		state.WinningLine = &line
	}

	return state
}

func (that *GameEngine) reset() {
	that.state = entity.NewGameState()
	that.presenter.OnGameReset()

	that.logger.Info("new game started")
}

// updateGameState - checks the board after a placement and reports a terminal outcome.
// A full board ends in a draw before any line is looked at.
func (that *GameEngine) updateGameState() {
	if that.state.Board.IsFull() {
		that.state.Phase = entity.PhaseDraw
		that.presenter.OnGameDraw()

		that.logger.Info("game ended in a draw", "moves", that.state.Moves)
		return
	}

	if mark, line, ok := that.state.Board.Winner(); ok {
		winner, _ := entity.PlayerOf(mark)

		that.state.Phase = entity.PhaseWon
		that.state.Winner = winner
		that.state.WinningLine = &line
		that.presenter.OnGameWon(winner, line)

		that.logger.Info("game won", "winner", winner.String(), "line", line, "moves", that.state.Moves)
	}
}
