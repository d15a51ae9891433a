package domain

import "fmt"

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a value type, so assigning it copies every square.
type Board [Rows][Columns]Cell

// the 8 unit vectors: horizontal, vertical and both diagonals
var Directions = [8]Position{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
}

func NewBoard() Board {
	return Board{}
}

// InitialBoard returns the four-piece starting position.
func InitialBoard() Board {
	board := NewBoard()
	board[Rows/2][Columns/2] = Player1
	board[Rows/2-1][Columns/2-1] = Player1
	board[Rows/2][Columns/2-1] = Player2
	board[Rows/2-1][Columns/2] = Player2
	return board
}

func InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Rows && pos.Col >= 0 && pos.Col < Columns
}

func checkBounds(pos Position) error {
	if !InBounds(pos) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, pos)
	}
	return nil
}

func IsEdge(pos Position) (bool, error) {
	if err := checkBounds(pos); err != nil {
		return false, err
	}
	return isEdge(pos), nil
}

func IsCorner(pos Position) (bool, error) {
	if err := checkBounds(pos); err != nil {
		return false, err
	}
	return isCorner(pos), nil
}

func isEdge(pos Position) bool {
	return pos.Row == 0 || pos.Row == Rows-1 || pos.Col == 0 || pos.Col == Columns-1
}

func isCorner(pos Position) bool {
	return (pos.Row == 0 || pos.Row == Rows-1) && (pos.Col == 0 || pos.Col == Columns-1)
}

// At returns the cell at pos.
func (b Board) At(pos Position) (Cell, error) {
	if err := checkBounds(pos); err != nil {
		return Empty, err
	}
	return b[pos.Row][pos.Col], nil
}

func (b Board) Count(cell Cell) int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// HasEmpty treats Available squares as empty.
func (b Board) HasEmpty() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == Empty || b[row][col] == Available {
				return true
			}
		}
	}
	return false
}

// ClearAvailable returns a copy with every Available marker turned back into Empty.
func (b Board) ClearAvailable() Board {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == Available {
				b[row][col] = Empty
			}
		}
	}
	return b
}

// Ints flattens the board for JSON and database storage.
func (b Board) Ints() [][]int {
	out := make([][]int, Rows)
	for row := range out {
		out[row] = make([]int, Columns)
		for col := range out[row] {
			out[row][col] = int(b[row][col])
		}
	}
	return out
}
