package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Presenter receives every visible change of the game.
type Presenter interface {
	OnCellMarked(row, column int, mark entity.Mark, style entity.Style)
	OnGameReset()
	OnGameWon(winner entity.Player, line entity.Line)
	OnGameDraw()
}

type nopPresenter struct{}

func (nopPresenter) OnCellMarked(int, int, entity.Mark, entity.Style) {}
func (nopPresenter) OnGameReset()                                     {}
func (nopPresenter) OnGameWon(entity.Player, entity.Line)             {}
func (nopPresenter) OnGameDraw()                                      {}

// Presenters fans each notification out in order.
type Presenters []Presenter

func (that Presenters) OnCellMarked(row, column int, mark entity.Mark, style entity.Style) {
	for _, presenter := range that {
		presenter.OnCellMarked(row, column, mark, style)
	}
}

func (that Presenters) OnGameReset() {
	for _, presenter := range that {
		presenter.OnGameReset()
	}
}

func (that Presenters) OnGameWon(winner entity.Player, line entity.Line) {
	for _, presenter := range that {
		presenter.OnGameWon(winner, line)
	}
}

func (that Presenters) OnGameDraw() {
	for _, presenter := range that {
		presenter.OnGameDraw()
	}
}

// LogPresenter writes notifications to a structured logger.
type LogPresenter struct {
	logger *slog.Logger
}

func NewLogPresenter(logger *slog.Logger) *LogPresenter {
	return &LogPresenter{
		logger: logger.With("component", "presenter"),
	}
}

func (that *LogPresenter) OnCellMarked(row, column int, mark entity.Mark, style entity.Style) {
	that.logger.Info("cell marked", "row", row, "column", column, "mark", mark.String(), "foreground", style.Foreground)
}

func (that *LogPresenter) OnGameReset() {
	that.logger.Info("board cleared")
}

func (that *LogPresenter) OnGameWon(winner entity.Player, line entity.Line) {
	that.logger.Info(winner.String()+" wins", "line", line)
}

func (that *LogPresenter) OnGameDraw() {
	that.logger.Info("board full, no winner")
}
