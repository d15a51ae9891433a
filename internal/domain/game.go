package domain

import "fmt"

// GameState is replaced, never patched: every transition returns a new value
// and Board is an array, so old and new states share no storage.
type GameState struct {
	Board         Board      `json:"board"`
	CurrentPlayer Cell       `json:"currentPlayer"`
	Score         Score      `json:"score"`
	Status        GameStatus `json:"status"`
	Mode          GameMode   `json:"mode"`
	MoveCount     int        `json:"moveCount"`
	LastMove      *Position  `json:"lastMove,omitempty"`
}

type Summary struct {
	Player1Score int     `json:"player1Score"`
	Player2Score int     `json:"player2Score"`
	Winner       Outcome `json:"winner"`
}

func NewGameState() GameState {
	return GameState{
		Board:         NewBoard(),
		CurrentPlayer: Empty,
		Status:        StatusNotStarted,
		Mode:          ModeNone,
	}
}

func StartGame(mode GameMode) (GameState, error) {
	if _, err := ParseGameMode(string(mode)); err != nil {
		return NewGameState(), err
	}

	board := InitialBoard()
	return GameState{
		Board:         board,
		CurrentPlayer: Player1,
		Score:         CalculateScore(board),
		Status:        StatusInProgress,
		Mode:          mode,
	}, nil
}

// ApplyMove places CurrentPlayer on pos. On any error the returned state is
// the unchanged input.
func ApplyMove(state GameState, pos Position) (GameState, error) {
	if state.Status != StatusInProgress {
		return state, fmt.Errorf("%w: cannot move while game is %s", ErrInvalidStateTransition, state.Status)
	}

	board, _, err := PlaceMove(state.Board, pos, state.CurrentPlayer)
	if err != nil {
		return state, err
	}

	last := pos
	next := GameState{
		Board:         board,
		CurrentPlayer: Opponent(state.CurrentPlayer),
		Score:         CalculateScore(board),
		Status:        StatusInProgress,
		Mode:          state.Mode,
		MoveCount:     state.MoveCount + 1,
		LastMove:      &last,
	}
	return CheckTerminal(next), nil
}

// IsTerminal ends the game when the board is full or when either side,
// not only the side to move, has no legal move left.
func IsTerminal(state GameState) bool {
	switch state.Status {
	case StatusFinished:
		return true
	case StatusNotStarted:
		return false
	}
	return isTerminalBoard(state.Board)
}

func isTerminalBoard(board Board) bool {
	if !board.HasEmpty() {
		return true
	}
	return len(LegalMoves(board, Player1)) == 0 || len(LegalMoves(board, Player2)) == 0
}

// CheckTerminal is the per-tick check the driver runs before any pending
// computer move.
func CheckTerminal(state GameState) GameState {
	if state.Status == StatusInProgress && isTerminalBoard(state.Board) {
		state.Status = StatusFinished
	}
	return state
}

func FinalSummary(state GameState) (Summary, error) {
	if !IsTerminal(state) {
		return Summary{}, ErrGameNotFinished
	}

	score := CalculateScore(state.Board)
	summary := Summary{
		Player1Score: score.Player1,
		Player2Score: score.Player2,
	}
	switch {
	case score.Player1 > score.Player2:
		summary.Winner = OutcomePlayer1
	case score.Player2 > score.Player1:
		summary.Winner = OutcomePlayer2
	default:
		summary.Winner = OutcomeDraw
	}
	return summary, nil
}

func IsComputerTurn(state GameState) bool {
	return state.Status == StatusInProgress && state.Mode.IsAgainstComputer() && state.CurrentPlayer == ComputerPlayer
}

// WithHints is the view shown to a human: legal destinations are marked
// Available. On the computer's turn, or once finished, the markers are cleared.
func WithHints(state GameState) GameState {
	if state.Status == StatusInProgress && !IsComputerTurn(state) {
		state.Board = MarkAvailable(state.Board, state.CurrentPlayer)
	} else {
		state.Board = state.Board.ClearAvailable()
	}
	return state
}
