package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/iamasit07/reversi/backend/internal/service/arena"
	"github.com/iamasit07/reversi/backend/internal/service/bot"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of workers")
	opening := flag.Int("opening", 4, "random plies played before the bots take over")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed of the first game; game i uses seed+i")
	p1 := flag.String("p1", string(bot.DifficultyEasy), "difficulty of player 1 (easy|hard)")
	p2 := flag.String("p2", string(bot.DifficultyHard), "difficulty of player 2 (easy|hard)")
	outputDir := flag.String("output", "", "directory for one JSON record per game; empty writes nothing")
	flag.Parse()

	if *games <= 0 {
		fmt.Println("error: --games must be positive")
		flag.Usage()
		os.Exit(1)
	}

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("[SELFPLAY] Failed to create output directory: %v", err)
		}
	}

	cfg := arena.Config{
		Games:   *games,
		Workers: *workers,
		Opening: *opening,
		Seed:    *seed,
		Player1: bot.ParseDifficulty(*p1),
		Player2: bot.ParseDifficulty(*p2),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[SELFPLAY] %d games, %s vs %s, %d workers, seed %d", cfg.Games, cfg.Player1, cfg.Player2, cfg.Workers, cfg.Seed)
	start := time.Now()

	tally, err := arena.Run(ctx, cfg, func(result arena.MatchResult) {
		log.Printf("[SELFPLAY] Game %d: %d-%d (%s) in %d moves", result.Index,
			result.Summary.Player1Score, result.Summary.Player2Score, result.Summary.Winner, len(result.Moves))
		if *outputDir != "" {
			if err := writeResult(*outputDir, result); err != nil {
				log.Printf("[SELFPLAY] Failed to write game %d: %v", result.Index, err)
			}
		}
	})
	if err != nil {
		log.Printf("[SELFPLAY] Stopped early: %v", err)
	}

	fmt.Printf("Finished in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Wins: P1 (%s): %d, P2 (%s): %d, draws: %d\n",
		cfg.Player1, tally.Player1Wins, cfg.Player2, tally.Player2Wins, tally.Draws)
}

func writeResult(dir string, result arena.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	filename := filepath.Join(dir, fmt.Sprintf("selfplay_%05d.json", result.Index))
	return os.WriteFile(filename, data, 0644)
}
