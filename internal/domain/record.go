package domain

import "time"

// GameRecord is a finished game as stored in the history table.
type GameRecord struct {
	GameID          string    `json:"gameId"`
	Mode            GameMode  `json:"mode"`
	Player1Score    int       `json:"player1Score"`
	Player2Score    int       `json:"player2Score"`
	Winner          Outcome   `json:"winner"`
	TotalMoves      int       `json:"totalMoves"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
	FinishedAt      time.Time `json:"finishedAt"`
	Board           [][]int   `json:"board,omitempty"`
}

// NewGameRecord builds the history row for a finished game.
func NewGameRecord(gameID string, state GameState, summary Summary, createdAt, finishedAt time.Time) GameRecord {
	return GameRecord{
		GameID:          gameID,
		Mode:            state.Mode,
		Player1Score:    summary.Player1Score,
		Player2Score:    summary.Player2Score,
		Winner:          summary.Winner,
		TotalMoves:      state.MoveCount,
		DurationSeconds: int(finishedAt.Sub(createdAt).Seconds()),
		CreatedAt:       createdAt,
		FinishedAt:      finishedAt,
		Board:           state.Board.ClearAvailable().Ints(),
	}
}
