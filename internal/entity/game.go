package entity

// Phase is the lifecycle stage of a game.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseDraw       Phase = "draw"
)

type GameState struct {
	Board         Board  `json:"board"`
	CurrentPlayer Player `json:"current_player"`
	Phase         Phase  `json:"phase"`
	Winner        Player `json:"winner,omitempty"`
	WinningLine   *Line  `json:"winning_line,omitempty"`
	Moves         int    `json:"moves"`
}

// NewGameState returns the start state: empty board, player one to move.
func NewGameState() GameState {
	return GameState{
		CurrentPlayer: PlayerOne,
		Phase:         PhaseInProgress,
	}
}

func (that *GameState) IsInProgress() bool {
	return that.Phase == PhaseInProgress
}

func (that *GameState) IsWon() bool {
	return that.Phase == PhaseWon
}

func (that *GameState) IsDraw() bool {
	return that.Phase == PhaseDraw
}

func (that *GameState) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

// Outcome is the terminal-or-not result of a placement.
type Outcome struct {
	Phase  Phase  `json:"phase"`
	Winner Player `json:"winner,omitempty"`
	Line   *Line  `json:"line,omitempty"`
}

func (that *GameState) Outcome() Outcome {
	outcome := Outcome{Phase: that.Phase, Winner: that.Winner}
	if that.WinningLine != nil {
		line := *that.WinningLine
		outcome.Line = &line
	}
	return outcome
}
