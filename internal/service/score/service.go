package score

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

const bestScoreKey = "best_score"

type BestScoreRepository interface {
	GetBestScore(ctx context.Context) (int, bool, error)
	SubmitScore(ctx context.Context, score int, gameID string) (bool, error)
}

type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Service keeps the all-time best score. PostgreSQL is authoritative; Redis
// only fronts reads.
type Service struct {
	repo  BestScoreRepository
	cache CacheRepository // Optional, can be nil
	ttl   time.Duration
}

func NewService(repo BestScoreRepository, cache CacheRepository, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

// CandidateScore is the score a finished game puts forward for the best
// score: the higher of the two in two player mode, the human's (player1)
// against the computer.
func CandidateScore(mode domain.GameMode, summary domain.Summary) (int, bool) {
	switch {
	case mode == domain.ModeTwoPlayer:
		if summary.Player2Score > summary.Player1Score {
			return summary.Player2Score, true
		}
		return summary.Player1Score, true
	case mode.IsAgainstComputer():
		return summary.Player1Score, true
	default:
		return 0, false
	}
}

// GetBestScore returns ok=false when there is no best score yet or the store
// cannot be read.
func (s *Service) GetBestScore(ctx context.Context) (int, bool) {
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, bestScoreKey); err == nil {
			if best, err := strconv.Atoi(val); err == nil {
				return best, true
			}
			log.Printf("[SCORE] Ignoring malformed cached best score %q", val)
		}
	}

	best, ok, err := s.repo.GetBestScore(ctx)
	if err != nil {
		log.Printf("[SCORE] Failed to read best score: %v", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, bestScoreKey, strconv.Itoa(best), s.ttl); err != nil {
			log.Printf("[SCORE] Warning: Failed to cache best score: %v", err)
		}
	}
	return best, true
}

// SubmitScore records score if it beats the stored best and reports whether
// it did.
func (s *Service) SubmitScore(ctx context.Context, score int, gameID string) (bool, error) {
	updated, err := s.repo.SubmitScore(ctx, score, gameID)
	if err != nil {
		return false, err
	}
	if updated {
		log.Printf("[SCORE] New best score %d from game %s", score, gameID)
		if s.cache != nil {
			if err := s.cache.Del(ctx, bestScoreKey); err != nil {
				log.Printf("[SCORE] Warning: Failed to invalidate cached best score: %v", err)
			}
		}
	}
	return updated, nil
}

// RecordFinishedGame applies the best-score rule to a finished game.
// Failures are logged and dropped: a lost best score never affects play.
func (s *Service) RecordFinishedGame(ctx context.Context, gameID string, mode domain.GameMode, summary domain.Summary) {
	candidate, ok := CandidateScore(mode, summary)
	if !ok {
		return
	}
	if _, err := s.SubmitScore(ctx, candidate, gameID); err != nil {
		log.Printf("[SCORE] Failed to submit score for game %s: %v", gameID, err)
	}
}
