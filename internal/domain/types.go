package domain

import "fmt"

// Cell is the content of one board square. Player1 and Player2 double as
// the identifiers of the two sides.
type Cell int

const (
	Empty   Cell = 0
	Player1 Cell = 1
	Player2 Cell = 2
	// Available only marks a legal destination for the UI. It is never an
	// occupied square.
	Available Cell = 3
)

const (
	Rows    = 8
	Columns = 8
)

// the computer always plays the second side in AI modes
const ComputerPlayer = Player2

func (c Cell) IsPlayer() bool {
	return c == Player1 || c == Player2
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case Available:
		return "available"
	default:
		return fmt.Sprintf("cell(%d)", int(c))
	}
}

// Opponent returns the other side. Anything that is not a player maps to Empty.
func Opponent(p Cell) Cell {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// to represent the game status
type GameStatus string

const (
	StatusNotStarted GameStatus = "not_started"
	StatusInProgress GameStatus = "in_progress"
	StatusFinished   GameStatus = "finished"
)

type GameMode string

const (
	ModeNone      GameMode = "none"
	ModeEasyAI    GameMode = "easy_ai"
	ModeHardAI    GameMode = "hard_ai"
	ModeTwoPlayer GameMode = "two_player"
)

func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeEasyAI, ModeHardAI, ModeTwoPlayer:
		return GameMode(s), nil
	default:
		return ModeNone, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// IsAgainstComputer reports whether Player2 is played by the engine.
func (m GameMode) IsAgainstComputer() bool {
	return m == ModeEasyAI || m == ModeHardAI
}

type Outcome string

const (
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
	OutcomeDraw    Outcome = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove            Error = "illegal move"
	ErrInvalidCoordinate      Error = "invalid coordinate"
	ErrInvalidStateTransition Error = "invalid state transition"
	ErrInvalidMode            Error = "invalid game mode"
	ErrGameNotFinished        Error = "game is not finished"
	ErrNotHumanTurn           Error = "waiting for the computer to move"
	ErrGameNotFound           Error = "game not found"
)
