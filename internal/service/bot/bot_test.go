package bot

import (
	"errors"
	"math"
	"testing"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

func boardFrom(t *testing.T, rows ...string) domain.Board {
	t.Helper()
	var b domain.Board
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'X':
				b[r][c] = domain.Player1
			case 'O':
				b[r][c] = domain.Player2
			case '.':
			default:
				t.Fatalf("unexpected cell %q at (%d,%d)", ch, r, c)
			}
		}
	}
	return b
}

// Midgame position, player2 to move. Candidates with (own score, net score):
// (3,7) 4.4/-3.0, (4,6) 2/-5.4, (7,1) 3.4/-2.4.
func lookaheadBoard(t *testing.T) domain.Board {
	return boardFrom(t,
		"XXXXXO..",
		"XXOOOOOO",
		"XXXXXOXX",
		"XXOXXOX.",
		"XXOOXO.O",
		"OOXOXOO.",
		"OOXXOOOO",
		"..XOOO..",
	)
}

func TestEasyPicksHighestScore(t *testing.T) {
	move, ok := CalculateBestMoveEasy(lookaheadBoard(t), domain.Player2)
	if !ok {
		t.Fatalf("expected a move")
	}
	if move.Position != (domain.Position{Row: 3, Col: 7}) {
		t.Fatalf("expected (3,7), got %s", move.Position)
	}
	if math.Abs(move.Score-4.4) > 1e-9 {
		t.Fatalf("expected score 4.4, got %v", move.Score)
	}
}

func TestHardPrefersNetScore(t *testing.T) {
	board := lookaheadBoard(t)

	move, value, ok := bestMove(board, domain.Player2, DifficultyHard.Depth())
	if !ok {
		t.Fatalf("expected a move")
	}
	if move.Position != (domain.Position{Row: 7, Col: 1}) {
		t.Fatalf("expected (7,1), got %s", move.Position)
	}
	if math.Abs(value-(-2.4)) > 1e-9 {
		t.Fatalf("expected net value -2.4, got %v", value)
	}

	hard, _ := CalculateBestMove(board, domain.Player2, DifficultyHard)
	easy, _ := CalculateBestMove(board, domain.Player2, DifficultyEasy)
	if hard.Position == easy.Position {
		t.Fatalf("hard and easy should disagree on this position")
	}
}

func TestTiesGoToFirstMove(t *testing.T) {
	// all four opening moves score 1
	for _, d := range []Difficulty{DifficultyEasy, DifficultyHard} {
		move, ok := CalculateBestMove(domain.InitialBoard(), domain.Player1, d)
		if !ok || move.Position != (domain.Position{Row: 2, Col: 4}) {
			t.Fatalf("%s: expected (2,4), got %s (ok=%v)", d, move.Position, ok)
		}
		move, ok = CalculateBestMove(domain.InitialBoard(), domain.Player2, d)
		if !ok || move.Position != (domain.Position{Row: 2, Col: 3}) {
			t.Fatalf("%s: expected (2,3) for player2, got %s (ok=%v)", d, move.Position, ok)
		}
	}
}

func TestNoReplyCountsAsZero(t *testing.T) {
	// after player1 takes (0,3) there is nothing left for player2
	board := boardFrom(t,
		"XOO.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	move, value, ok := bestMove(board, domain.Player1, DifficultyHard.Depth())
	if !ok || move.Position != (domain.Position{Row: 0, Col: 3}) {
		t.Fatalf("expected (0,3), got %s (ok=%v)", move.Position, ok)
	}
	if math.Abs(value-move.Score) > 1e-9 {
		t.Fatalf("expected net value to equal own score %v, got %v", move.Score, value)
	}
}

func TestNoMoveAvailable(t *testing.T) {
	board := boardFrom(t,
		"XOO.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	for _, d := range []Difficulty{DifficultyEasy, DifficultyHard} {
		if _, ok := CalculateBestMove(board, domain.Player2, d); ok {
			t.Fatalf("%s: player2 has no legal move and should report none", d)
		}
	}
	if _, ok := CalculateBestMove(domain.NewBoard(), domain.Player1, DifficultyHard); ok {
		t.Fatalf("an empty board has no moves")
	}
}

func TestChooseAIMove(t *testing.T) {
	state, err := domain.StartGame(domain.ModeHardAI)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	state, err = domain.ApplyMove(state, domain.Position{Row: 2, Col: 4})
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	move, ok, err := ChooseAIMove(state, DifficultyHard)
	if err != nil || !ok {
		t.Fatalf("expected a move, got ok=%v err=%v", ok, err)
	}
	if legal, _ := domain.IsLegal(state.Board, move.Position, domain.Player2); !legal {
		t.Fatalf("chosen move %s is not legal", move.Position)
	}

	if _, _, err := ChooseAIMove(domain.NewGameState(), DifficultyEasy); !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
	state.Status = domain.StatusFinished
	if _, _, err := ChooseAIMove(state, DifficultyEasy); !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"hard":   DifficultyHard,
		"easy":   DifficultyEasy,
		"":       DifficultyEasy,
		"medium": DifficultyEasy,
	}
	for in, want := range tests {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDifficultyForMode(t *testing.T) {
	if d, ok := DifficultyForMode(domain.ModeEasyAI); !ok || d != DifficultyEasy {
		t.Fatalf("easy_ai: got %s, %v", d, ok)
	}
	if d, ok := DifficultyForMode(domain.ModeHardAI); !ok || d != DifficultyHard {
		t.Fatalf("hard_ai: got %s, %v", d, ok)
	}
	if _, ok := DifficultyForMode(domain.ModeTwoPlayer); ok {
		t.Fatalf("two_player has no computer side")
	}
}

func playOut(t *testing.T, p1, p2 Difficulty) ([]domain.Position, domain.GameState) {
	t.Helper()
	state, err := domain.StartGame(domain.ModeTwoPlayer)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	var record []domain.Position
	for state.Status == domain.StatusInProgress {
		d := p1
		if state.CurrentPlayer == domain.Player2 {
			d = p2
		}
		move, ok, err := ChooseAIMove(state, d)
		if err != nil {
			t.Fatalf("ChooseAIMove: %v", err)
		}
		if !ok {
			break
		}
		record = append(record, move.Position)
		if state, err = domain.ApplyMove(state, move.Position); err != nil {
			t.Fatalf("ApplyMove(%s): %v", move.Position, err)
		}
	}
	return record, state
}

func TestSelfPlayIsDeterministic(t *testing.T) {
	first, final := playOut(t, DifficultyEasy, DifficultyHard)
	second, again := playOut(t, DifficultyEasy, DifficultyHard)

	if len(first) != len(second) {
		t.Fatalf("games differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("move %d differs: %s vs %s", i, first[i], second[i])
		}
	}
	if final.Board != again.Board || final.Score != again.Score {
		t.Fatalf("final states differ")
	}
	if final.Status != domain.StatusFinished {
		t.Fatalf("expected the game to finish, got %s", final.Status)
	}
}
