package domain

import "fmt"

func playerName(p Cell) string {
	if p == Player2 {
		return "Player 2"
	}
	return "Player 1"
}

// TitleText is the status line shown above the board.
func TitleText(state GameState) string {
	switch state.Status {
	case StatusInProgress:
		return fmt.Sprintf("%s is making a move\nCurrent score is %d : %d",
			playerName(state.CurrentPlayer), state.Score.Player1, state.Score.Player2)
	case StatusFinished:
		top := "It's a Draw!"
		switch {
		case state.Score.Player1 > state.Score.Player2:
			top = playerName(Player1) + " wins!"
		case state.Score.Player2 > state.Score.Player1:
			top = playerName(Player2) + " wins!"
		}
		return fmt.Sprintf("%s\nFinal Score is %d : %d", top, state.Score.Player1, state.Score.Player2)
	default:
		return "Warming up the CPU..."
	}
}
