package bot

import (
	"fmt"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

// CalculateBestMove selects the best move based on difficulty. ok is false
// when the bot has nothing worth playing; that is a stalemate, not an error.
func CalculateBestMove(board domain.Board, botPlayer domain.Cell, difficulty Difficulty) (domain.Move, bool) {
	switch difficulty {
	case DifficultyHard:
		return CalculateBestMoveHard(board, botPlayer)
	default:
		return CalculateBestMoveEasy(board, botPlayer)
	}
}

// ChooseAIMove picks a move for the side to move in state.
func ChooseAIMove(state domain.GameState, difficulty Difficulty) (domain.Move, bool, error) {
	if state.Status != domain.StatusInProgress {
		return domain.Move{}, false, fmt.Errorf("%w: no computer move while game is %s", domain.ErrInvalidStateTransition, state.Status)
	}
	move, ok := CalculateBestMove(state.Board, state.CurrentPlayer, difficulty)
	return move, ok, nil
}

func getOpponent(p domain.Cell) domain.Cell {
	return domain.Opponent(p)
}
