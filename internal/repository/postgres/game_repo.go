package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// SaveGame stores a finished game (UPSERT, so a retried save is harmless)
func (r *GameRepo) SaveGame(ctx context.Context, record domain.GameRecord) error {
	boardJSON, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %v", err)
	}

	query := `
	INSERT INTO game (game_id, mode, player1_score, player2_score, winner, total_moves, duration_seconds, created_at, finished_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (game_id) DO UPDATE SET
		player1_score = EXCLUDED.player1_score,
		player2_score = EXCLUDED.player2_score,
		winner = EXCLUDED.winner,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		finished_at = EXCLUDED.finished_at,
		board_state = EXCLUDED.board_state;
	`

	_, err = r.DB.ExecContext(ctx, query,
		record.GameID, string(record.Mode), record.Player1Score, record.Player2Score, string(record.Winner),
		record.TotalMoves, record.DurationSeconds, record.CreatedAt, record.FinishedAt, string(boardJSON))
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %v", err)
	}
	return nil
}

const gameColumns = `game_id, mode, player1_score, player2_score, winner, total_moves, duration_seconds, created_at, finished_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (domain.GameRecord, error) {
	var rec domain.GameRecord
	var mode, winner string
	err := row.Scan(
		&rec.GameID,
		&mode,
		&rec.Player1Score,
		&rec.Player2Score,
		&winner,
		&rec.TotalMoves,
		&rec.DurationSeconds,
		&rec.CreatedAt,
		&rec.FinishedAt,
	)
	rec.Mode = domain.GameMode(mode)
	rec.Winner = domain.Outcome(winner)
	return rec, err
}

// GetGameByID returns nil, nil when the game was never saved
func (r *GameRepo) GetGameByID(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM game WHERE game_id = $1;`

	rec, err := scanGame(r.DB.QueryRowContext(ctx, query, gameID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %v", err)
	}
	return &rec, nil
}

// GetRecentGames lists finished games, newest first
func (r *GameRepo) GetRecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM game ORDER BY finished_at DESC LIMIT $1;`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %v", err)
	}
	defer rows.Close()

	games := make([]domain.GameRecord, 0, limit)
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %v", err)
		}
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game rows: %v", err)
	}
	return games, nil
}

// GetGameBoard returns the final board of a stored game, or an empty board
// when none was recorded.
func (r *GameRepo) GetGameBoard(ctx context.Context, gameID string) ([][]int, error) {
	query := `SELECT board_state FROM game WHERE game_id = $1;`

	var boardJSON []byte
	err := r.DB.QueryRowContext(ctx, query, gameID).Scan(&boardJSON)
	if err == sql.ErrNoRows {
		return domain.NewBoard().Ints(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board state: %v", err)
	}
	return decodeBoard(boardJSON)
}

func decodeBoard(boardJSON []byte) ([][]int, error) {
	if len(boardJSON) == 0 || string(boardJSON) == "null" {
		return domain.NewBoard().Ints(), nil
	}

	var board [][]int
	if err := json.Unmarshal(boardJSON, &board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board state: %v", err)
	}
	if len(board) != domain.Rows {
		return nil, fmt.Errorf("stored board has %d rows, expected %d", len(board), domain.Rows)
	}
	return board, nil
}
