package bot

import "github.com/iamasit07/reversi/backend/internal/domain"

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Easy if invalid or empty
func ParseDifficulty(difficulty string) Difficulty {
	switch difficulty {
	case "hard":
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// DifficultyForMode maps a game mode to the bot that plays it. ok is false for
// modes without a computer side.
func DifficultyForMode(mode domain.GameMode) (Difficulty, bool) {
	switch mode {
	case domain.ModeEasyAI:
		return DifficultyEasy, true
	case domain.ModeHardAI:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// Depth is the number of plies the bot looks ahead.
func (d Difficulty) Depth() int {
	if d == DifficultyHard {
		return 2
	}
	return 1
}
