package domain

import "fmt"

// Move is a legal placement together with the squares it flips.
type Move struct {
	Position
	Captures []Position `json:"captures"`
	Score    float64    `json:"score"`
}

// CapturedCells walks each direction from pos over opponent squares and keeps
// the run only when it ends on one of player's own squares.
func CapturedCells(board Board, pos Position, player Cell) ([]Position, error) {
	if err := checkBounds(pos); err != nil {
		return nil, err
	}
	if !player.IsPlayer() {
		return nil, nil
	}
	return capturedCells(&board, pos, player), nil
}

func capturedCells(board *Board, pos Position, player Cell) []Position {
	opponent := Opponent(player)
	var captured []Position

	for _, dir := range Directions {
		r, c := pos.Row+dir.Row, pos.Col+dir.Col
		run := 0
		for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == opponent {
			run++
			r += dir.Row
			c += dir.Col
		}
		if run == 0 || !InBounds(Position{r, c}) || board[r][c] != player {
			continue
		}
		for i := 1; i <= run; i++ {
			captured = append(captured, Position{pos.Row + dir.Row*i, pos.Col + dir.Col*i})
		}
	}

	return captured
}

// IsLegal treats an Available marker on the target like Empty.
func IsLegal(board Board, pos Position, player Cell) (bool, error) {
	if err := checkBounds(pos); err != nil {
		return false, err
	}
	board = board.ClearAvailable()
	if board[pos.Row][pos.Col] != Empty || !player.IsPlayer() {
		return false, nil
	}
	return len(capturedCells(&board, pos, player)) > 0, nil
}

// LegalMoves scans row by row, then column by column. That order is the
// tie-break order used by the bots.
func LegalMoves(board Board, player Cell) []Move {
	if !player.IsPlayer() {
		return nil
	}
	board = board.ClearAvailable()

	var moves []Move
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] != Empty {
				continue
			}
			pos := Position{row, col}
			captures := capturedCells(&board, pos, player)
			if len(captures) == 0 {
				continue
			}
			moves = append(moves, Move{
				Position: pos,
				Captures: captures,
				Score:    moveScore(pos, captures),
			})
		}
	}
	return moves
}

// MarkAvailable flags every legal destination for player. Legality is computed
// on a clean copy and the markers are written into that copy afterwards, so a
// stale marker can never affect another square's result.
func MarkAvailable(board Board, player Cell) Board {
	marked := board.ClearAvailable()
	for _, move := range LegalMoves(marked, player) {
		marked[move.Row][move.Col] = Available
	}
	return marked
}

// PlaceMove puts player on pos and flips the captured squares. The input board
// is left untouched.
func PlaceMove(board Board, pos Position, player Cell) (Board, []Position, error) {
	legal, err := IsLegal(board, pos, player)
	if err != nil {
		return board, nil, err
	}
	if !legal {
		return board, nil, fmt.Errorf("%w: %s for %s", ErrIllegalMove, pos, player)
	}

	next := board.ClearAvailable()
	captures := capturedCells(&next, pos, player)
	next[pos.Row][pos.Col] = player
	for _, c := range captures {
		next[c.Row][c.Col] = player
	}
	return next, captures, nil
}
