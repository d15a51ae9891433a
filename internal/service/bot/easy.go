package bot

import "github.com/iamasit07/reversi/backend/internal/domain"

// CalculateBestMoveEasy implements easy difficulty bot
// Strategy: one-ply greedy. Take the candidate with the highest move score,
// the earliest one in row-major order on ties.
func CalculateBestMoveEasy(board domain.Board, botPlayer domain.Cell) (domain.Move, bool) {
	move, _, ok := bestMove(board, botPlayer, DifficultyEasy.Depth())
	return move, ok
}
