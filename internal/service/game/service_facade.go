package game

import (
	"context"
	"fmt"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type GameHistoryRepository interface {
	GetGameByID(ctx context.Context, gameID string) (*domain.GameRecord, error)
	GetRecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error)
	GetGameBoard(ctx context.Context, gameID string) ([][]int, error)
}

// Service is the read side over finished games (facade)
type Service struct {
	Repo GameHistoryRepository
}

func NewService(repo GameHistoryRepository) *Service {
	return &Service{
		Repo: repo,
	}
}

// ClampLimit maps a requested page size onto 1..maxHistoryLimit, with
// defaultHistoryLimit for anything non-positive.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultHistoryLimit
	case limit > maxHistoryLimit:
		return maxHistoryLimit
	default:
		return limit
	}
}

func (s *Service) RecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	return s.Repo.GetRecentGames(ctx, ClampLimit(limit))
}

// GameDetails returns a stored game with its final board.
func (s *Service) GameDetails(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	record, err := s.Repo.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}

	board, err := s.Repo.GetGameBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}
	record.Board = board
	return record, nil
}
