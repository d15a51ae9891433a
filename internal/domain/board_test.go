package domain

import (
	"errors"
	"testing"
)

// parseBoard reads rows of '.', 'X' (Player1), 'O' (Player2) and '*' (Available).
func parseBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	if len(rows) != Rows {
		t.Fatalf("expected %d rows, got %d", Rows, len(rows))
	}
	var b Board
	for r, line := range rows {
		if len(line) != Columns {
			t.Fatalf("row %d: expected %d columns, got %d", r, Columns, len(line))
		}
		for c, ch := range line {
			switch ch {
			case '.':
				b[r][c] = Empty
			case 'X':
				b[r][c] = Player1
			case 'O':
				b[r][c] = Player2
			case '*':
				b[r][c] = Available
			default:
				t.Fatalf("unexpected cell %q at (%d,%d)", ch, r, c)
			}
		}
	}
	return b
}

func TestInitialBoard(t *testing.T) {
	b := InitialBoard()

	if got := b.Count(Player1); got != 2 {
		t.Fatalf("expected 2 player1 cells, got %d", got)
	}
	if got := b.Count(Player2); got != 2 {
		t.Fatalf("expected 2 player2 cells, got %d", got)
	}
	if got := b.Count(Empty); got != Rows*Columns-4 {
		t.Fatalf("expected %d empty cells, got %d", Rows*Columns-4, got)
	}

	want := map[Position]Cell{
		{3, 3}: Player1,
		{4, 4}: Player1,
		{3, 4}: Player2,
		{4, 3}: Player2,
	}
	for pos, cell := range want {
		if got, _ := b.At(pos); got != cell {
			t.Errorf("cell %s: expected %s, got %s", pos, cell, got)
		}
	}
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		pos    Position
		edge   bool
		corner bool
	}{
		{Position{0, 0}, true, true},
		{Position{0, 7}, true, true},
		{Position{7, 0}, true, true},
		{Position{7, 7}, true, true},
		{Position{0, 3}, true, false},
		{Position{5, 7}, true, false},
		{Position{7, 1}, true, false},
		{Position{1, 1}, false, false},
		{Position{3, 4}, false, false},
		{Position{6, 6}, false, false},
	}

	for _, tt := range tests {
		if !InBounds(tt.pos) {
			t.Fatalf("%s should be in bounds", tt.pos)
		}
		edge, err := IsEdge(tt.pos)
		if err != nil || edge != tt.edge {
			t.Errorf("IsEdge(%s) = %v, %v; want %v", tt.pos, edge, err, tt.edge)
		}
		corner, err := IsCorner(tt.pos)
		if err != nil || corner != tt.corner {
			t.Errorf("IsCorner(%s) = %v, %v; want %v", tt.pos, corner, err, tt.corner)
		}
	}
}

func TestGeometryRejectsOutOfBounds(t *testing.T) {
	outside := []Position{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-3, 12}}

	for _, pos := range outside {
		if InBounds(pos) {
			t.Errorf("%s should be out of bounds", pos)
		}
		if _, err := IsEdge(pos); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("IsEdge(%s): expected ErrInvalidCoordinate, got %v", pos, err)
		}
		if _, err := IsCorner(pos); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("IsCorner(%s): expected ErrInvalidCoordinate, got %v", pos, err)
		}
		if _, err := Weight(pos); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("Weight(%s): expected ErrInvalidCoordinate, got %v", pos, err)
		}
		if _, err := CapturedCells(InitialBoard(), pos, Player1); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("CapturedCells(%s): expected ErrInvalidCoordinate, got %v", pos, err)
		}
		if _, err := IsLegal(InitialBoard(), pos, Player1); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("IsLegal(%s): expected ErrInvalidCoordinate, got %v", pos, err)
		}
	}
}

func TestBoardCopiesDoNotAlias(t *testing.T) {
	original := InitialBoard()
	copied := original
	copied[0][0] = Player2

	if original[0][0] != Empty {
		t.Fatalf("writing to a copy changed the original board")
	}
}

func TestClearAvailable(t *testing.T) {
	b := parseBoard(t,
		"*.......",
		"........",
		"...*....",
		"...XO...",
		"...OX...",
		"........",
		"........",
		".......*",
	)

	cleared := b.ClearAvailable()
	if cleared.Count(Available) != 0 {
		t.Fatalf("expected no available markers, got %d", cleared.Count(Available))
	}
	if b.Count(Available) != 3 {
		t.Fatalf("ClearAvailable must not modify the receiver")
	}
	if cleared.Count(Player1) != 2 || cleared.Count(Player2) != 2 {
		t.Fatalf("ClearAvailable changed occupied cells")
	}
}
