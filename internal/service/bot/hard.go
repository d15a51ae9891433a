package bot

import "github.com/iamasit07/reversi/backend/internal/domain"

// CalculateBestMoveHard implements hard difficulty using a two-ply net score:
// each candidate's own score minus the best score the opponent can answer with.
// The answer is picked greedily and not searched any further.
func CalculateBestMoveHard(board domain.Board, botPlayer domain.Cell) (domain.Move, bool) {
	move, _, ok := bestMove(board, botPlayer, DifficultyHard.Depth())
	return move, ok
}
