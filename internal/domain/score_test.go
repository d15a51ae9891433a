package domain

import (
	"math"
	"testing"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		pos  Position
		want int
	}{
		{Position{0, 0}, 2},
		{Position{0, 4}, 2},
		{Position{4, 7}, 2},
		{Position{7, 7}, 2},
		{Position{1, 1}, 1},
		{Position{3, 4}, 1},
		{Position{6, 6}, 1},
	}
	for _, tt := range tests {
		got, err := Weight(tt.pos)
		if err != nil || got != tt.want {
			t.Errorf("Weight(%s) = %d, %v; want %d", tt.pos, got, err, tt.want)
		}
	}
}

func TestCalculateScore(t *testing.T) {
	if got := CalculateScore(InitialBoard()); got != (Score{Player1: 2, Player2: 2}) {
		t.Fatalf("initial score: expected 2:2, got %d:%d", got.Player1, got.Player2)
	}

	b := parseBoard(t,
		"X......O",
		"........",
		"...X....",
		"...XO...",
		"...OX..*",
		"........",
		"........",
		"O......X",
	)
	// corners count as plain edges; the Available marker counts for nobody
	got := CalculateScore(b)
	if got.Player1 != 2+2+1+1+1 || got.Player2 != 2+2+1+1 {
		t.Fatalf("expected 7:6, got %d:%d", got.Player1, got.Player2)
	}
	if got.For(Player1) != got.Player1 || got.For(Player2) != got.Player2 || got.For(Empty) != 0 {
		t.Fatalf("Score.For returned inconsistent values")
	}
}

func TestMoveScore(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		captures []Position
		want     float64
	}{
		{"interior single", Position{2, 4}, []Position{{3, 4}}, 1},
		{"edge landing", Position{0, 4}, []Position{{1, 4}}, 1.4},
		{"corner landing", Position{0, 0}, []Position{{1, 1}}, 1.8},
		{"edge captures", Position{0, 3}, []Position{{0, 2}, {0, 1}}, 4.4},
		{"corner with edge run", Position{7, 7}, []Position{{7, 6}, {7, 5}, {6, 6}}, 2 + 2 + 1 + 0.8},
	}
	for _, tt := range tests {
		got, err := MoveScore(tt.pos, tt.captures)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
