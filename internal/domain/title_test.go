package domain

import "testing"

func TestTitleText(t *testing.T) {
	started, _ := StartGame(ModeEasyAI)

	tests := []struct {
		name  string
		state GameState
		want  string
	}{
		{"not started", NewGameState(), "Warming up the CPU..."},
		{"in progress", started, "Player 1 is making a move\nCurrent score is 2 : 2"},
		{"player2 wins", GameState{Status: StatusFinished, Score: Score{Player1: 10, Player2: 30}}, "Player 2 wins!\nFinal Score is 10 : 30"},
		{"player1 wins", GameState{Status: StatusFinished, Score: Score{Player1: 31, Player2: 30}}, "Player 1 wins!\nFinal Score is 31 : 30"},
		{"draw", GameState{Status: StatusFinished, Score: Score{Player1: 20, Player2: 20}}, "It's a Draw!\nFinal Score is 20 : 20"},
	}
	for _, tt := range tests {
		if got := TitleText(tt.state); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
