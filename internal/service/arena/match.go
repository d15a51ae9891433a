package arena

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/bot"
)

// MatchResult is one finished bot-vs-bot game. Moves replays it from the
// initial board.
type MatchResult struct {
	Index   int               `json:"index"`
	Seed    int64             `json:"seed"`
	Player1 bot.Difficulty    `json:"player1"`
	Player2 bot.Difficulty    `json:"player2"`
	Opening int               `json:"opening"`
	Moves   []domain.Position `json:"moves"`
	Summary domain.Summary    `json:"summary"`
	Board   [][]int           `json:"board"`
}

// PlayMatch plays openingPlies random legal moves drawn from rng, then lets
// the two bots finish the game. With openingPlies 0 the game is fully
// determined by the two difficulties.
func PlayMatch(p1, p2 bot.Difficulty, openingPlies int, rng *rand.Rand) (MatchResult, error) {
	state, err := domain.StartGame(domain.ModeTwoPlayer)
	if err != nil {
		return MatchResult{}, err
	}

	result := MatchResult{Player1: p1, Player2: p2, Opening: openingPlies}
	for state.Status == domain.StatusInProgress {
		var pos domain.Position
		if state.MoveCount < openingPlies {
			moves := domain.LegalMoves(state.Board, state.CurrentPlayer)
			pos = moves[rng.Intn(len(moves))].Position
		} else {
			difficulty := p1
			if state.CurrentPlayer == domain.Player2 {
				difficulty = p2
			}
			move, ok, err := bot.ChooseAIMove(state, difficulty)
			if err != nil {
				return result, err
			}
			if !ok {
				// no candidate left for the side to move
				state.Status = domain.StatusFinished
				break
			}
			pos = move.Position
		}

		if state, err = domain.ApplyMove(state, pos); err != nil {
			return result, fmt.Errorf("failed to apply %s at ply %d: %w", pos, len(result.Moves), err)
		}
		result.Moves = append(result.Moves, pos)
	}

	if result.Summary, err = domain.FinalSummary(state); err != nil {
		return result, err
	}
	result.Board = state.Board.Ints()
	return result, nil
}

// Tally counts outcomes across matches.
type Tally struct {
	Player1Wins int `json:"player1Wins"`
	Player2Wins int `json:"player2Wins"`
	Draws       int `json:"draws"`
}

func (t *Tally) Add(summary domain.Summary) {
	switch summary.Winner {
	case domain.OutcomePlayer1:
		t.Player1Wins++
	case domain.OutcomePlayer2:
		t.Player2Wins++
	default:
		t.Draws++
	}
}

type Config struct {
	Games   int
	Workers int
	Opening int
	Seed    int64
	Player1 bot.Difficulty
	Player2 bot.Difficulty
}

type task struct {
	index int
	seed  int64
}

// Run plays cfg.Games matches on a worker pool. Game i uses seed cfg.Seed+i,
// so results do not depend on scheduling. onResult, if set, is called from a
// single goroutine in completion order.
func Run(ctx context.Context, cfg Config, onResult func(MatchResult)) (Tally, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tasks := make(chan task)
	results := make(chan MatchResult)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				result, err := PlayMatch(cfg.Player1, cfg.Player2, cfg.Opening, rand.New(rand.NewSource(t.seed)))
				if err != nil {
					errs <- fmt.Errorf("game %d: %w", t.index, err)
					return
				}
				result.Index = t.index
				result.Seed = t.seed
				results <- result
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i := 0; i < cfg.Games; i++ {
			select {
			case tasks <- task{index: i, seed: cfg.Seed + int64(i)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var tally Tally
	var firstErr error
	for result := range results {
		tally.Add(result.Summary)
		if onResult != nil {
			onResult(result)
		}
	}
	select {
	case firstErr = <-errs:
	default:
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	return tally, firstErr
}
