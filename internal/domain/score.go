package domain

const (
	cornerBonus = 0.8
	edgeBonus   = 0.4
)

type Score struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

func (s Score) For(player Cell) int {
	switch player {
	case Player1:
		return s.Player1
	case Player2:
		return s.Player2
	default:
		return 0
	}
}

// Weight is 2 for an edge square and 1 otherwise. Corners get no extra
// weight here, only in MoveScore.
func Weight(pos Position) (int, error) {
	if err := checkBounds(pos); err != nil {
		return 0, err
	}
	return weight(pos), nil
}

func weight(pos Position) int {
	if isEdge(pos) {
		return 2
	}
	return 1
}

// CalculateScore sums the weights of every owned square in one pass.
func CalculateScore(board Board) Score {
	var score Score
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			switch board[row][col] {
			case Player1:
				score.Player1 += weight(Position{row, col})
			case Player2:
				score.Player2 += weight(Position{row, col})
			}
		}
	}
	return score
}

// MoveScore is the desirability of landing on pos and flipping captures.
func MoveScore(pos Position, captures []Position) (float64, error) {
	if err := checkBounds(pos); err != nil {
		return 0, err
	}
	for _, c := range captures {
		if err := checkBounds(c); err != nil {
			return 0, err
		}
	}
	return moveScore(pos, captures), nil
}

func moveScore(pos Position, captures []Position) float64 {
	total := 0.0
	for _, c := range captures {
		total += float64(weight(c))
	}
	switch {
	case isCorner(pos):
		total += cornerBonus
	case isEdge(pos):
		total += edgeBonus
	}
	return total
}
