package bot

import (
	"log"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

// moves scoring below this are ignored at the root
const MIN_MOVE_SCORE = 1.0

// candidateMoves are the legal moves worth considering, in generation order.
func candidateMoves(board domain.Board, player domain.Cell) []domain.Move {
	moves := domain.LegalMoves(board, player)
	candidates := moves[:0]
	for _, m := range moves {
		if m.Score >= MIN_MOVE_SCORE {
			candidates = append(candidates, m)
		}
	}
	return candidates
}

// bestMove runs the lookahead from the root. depth 1 is plain greedy, depth 2
// subtracts the opponent's best immediate reply.
func bestMove(board domain.Board, player domain.Cell, depth int) (domain.Move, float64, bool) {
	return pickBest(board, player, candidateMoves(board, player), depth)
}

// pickBest is a left fold that only replaces the running best on a strictly
// greater value, so the first maximal move wins every tie.
func pickBest(board domain.Board, player domain.Cell, moves []domain.Move, depth int) (domain.Move, float64, bool) {
	if len(moves) == 0 {
		return domain.Move{}, 0, false
	}

	best := moves[0]
	bestValue := evaluateMove(board, player, best, depth)
	for _, m := range moves[1:] {
		value := evaluateMove(board, player, m, depth)
		if bestValue < value {
			best = m
			bestValue = value
		}
	}
	return best, bestValue, true
}

// evaluateMove scores a move looking depth plies ahead. Opponent replies are
// taken unfiltered, and a position where the opponent cannot reply counts as
// a reply worth 0.
func evaluateMove(board domain.Board, player domain.Cell, move domain.Move, depth int) float64 {
	if depth <= 1 {
		return move.Score
	}

	next, _, err := domain.PlaceMove(board, move.Position, player)
	if err != nil {
		// only reachable if move did not come from LegalMoves(board, player)
		log.Printf("[BOT] Skipping unplayable move %s: %v", move.Position, err)
		return move.Score
	}

	opponent := getOpponent(player)
	_, reply, ok := pickBest(next, opponent, domain.LegalMoves(next, opponent), depth-1)
	if !ok {
		reply = 0
	}
	return move.Score - reply
}
