package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type BestScoreRepo struct {
	DB *sql.DB
}

func NewBestScoreRepo(db *sql.DB) *BestScoreRepo {
	return &BestScoreRepo{DB: db}
}

// GetBestScore returns ok=false while no game has set a best score yet
func (r *BestScoreRepo) GetBestScore(ctx context.Context) (int, bool, error) {
	var score int
	err := r.DB.QueryRowContext(ctx, `SELECT score FROM best_score WHERE id = 1;`).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get best score: %v", err)
	}
	return score, true, nil
}

// SubmitScore stores score only if it beats the current best. The compare
// and the write are one statement, so concurrent finishes cannot lower it.
func (r *BestScoreRepo) SubmitScore(ctx context.Context, score int, gameID string) (bool, error) {
	query := `
	INSERT INTO best_score (id, score, game_id, updated_at)
	VALUES (1, $1, $2, NOW())
	ON CONFLICT (id) DO UPDATE SET
		score = EXCLUDED.score,
		game_id = EXCLUDED.game_id,
		updated_at = EXCLUDED.updated_at
	WHERE best_score.score < EXCLUDED.score;
	`

	res, err := r.DB.ExecContext(ctx, query, score, gameID)
	if err != nil {
		return false, fmt.Errorf("failed to submit best score: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %v", err)
	}
	return n > 0, nil
}
