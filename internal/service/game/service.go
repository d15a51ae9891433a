package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/bot"
	"github.com/iamasit07/reversi/backend/pkg/uid"
)

const saveTimeout = 10 * time.Second

// Notifier pushes server messages to everyone watching a game.
type Notifier interface {
	Broadcast(gameID string, message domain.ServerMessage)
}

type GameRepository interface {
	SaveGame(ctx context.Context, record domain.GameRecord) error
}

type ScoreRecorder interface {
	RecordFinishedGame(ctx context.Context, gameID string, mode domain.GameMode, summary domain.Summary)
}

// Options are the pacing delays. A zero delay runs the step inline.
type Options struct {
	ComputerDelay  time.Duration
	GameStartDelay time.Duration
}

// shared by every session of one manager
type sessionDeps struct {
	repo     GameRepository
	scores   ScoreRecorder
	notifier Notifier
	opts     Options
	persist  sync.WaitGroup
}

// GameSession drives one game. All state changes happen under mu; timers
// carry the generation they were scheduled in and do nothing once a restart
// or a newer transition has moved it on.
type GameSession struct {
	GameID       string
	CreatedAt    time.Time
	FinishedAt   time.Time
	lastActivity time.Time
	state        domain.GameState
	pendingMode  domain.GameMode
	generation   uint64
	timer        *time.Timer
	mu           sync.Mutex
	deps         *sessionDeps
}

func newGameSession(mode domain.GameMode, deps *sessionDeps) (*GameSession, error) {
	if _, err := domain.ParseGameMode(string(mode)); err != nil {
		return nil, err
	}

	now := time.Now()
	gs := &GameSession{
		GameID:       uid.GenerateGameID(),
		CreatedAt:    now,
		lastActivity: now,
		state:        domain.NewGameState(),
		deps:         deps,
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.scheduleStartLocked(mode)
	return gs, nil
}

// Snapshot is the state as shown to players: legal destinations are marked
// while a human is to move.
func (gs *GameSession) Snapshot() domain.GameState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return domain.WithHints(gs.state)
}

// LegalMoves lists the moves open to the side to move.
func (gs *GameSession) LegalMoves() []domain.Move {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.state.Status != domain.StatusInProgress {
		return nil
	}
	return domain.LegalMoves(gs.state.Board, gs.state.CurrentPlayer)
}

func (gs *GameSession) Summary() (domain.Summary, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return domain.FinalSummary(gs.state)
}

// Mode is the mode of the current game, also while it waits to start.
func (gs *GameSession) Mode() domain.GameMode {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.pendingMode
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.state.Status == domain.StatusFinished
}

// HandleMove plays a human move for the side to move.
func (gs *GameSession) HandleMove(pos domain.Position) (domain.GameState, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if domain.IsComputerTurn(gs.state) {
		return domain.WithHints(gs.state), domain.ErrNotHumanTurn
	}

	player := gs.state.CurrentPlayer
	next, err := domain.ApplyMove(gs.state, pos)
	if err != nil {
		return domain.WithHints(gs.state), err
	}

	captured, _ := domain.CapturedCells(gs.state.Board, pos, player)
	gs.state = next
	gs.lastActivity = time.Now()
	gs.broadcastMoveLocked(player, pos, captured)
	gs.afterTransitionLocked()

	return domain.WithHints(gs.state), nil
}

// HandleBotMove plays the computer's move scheduled in generation gen.
func (gs *GameSession) HandleBotMove(gen uint64) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gen != gs.generation {
		return nil
	}
	return gs.handleBotMoveLocked()
}

// Restart abandons the current game and starts a new one in mode. Pending
// computer moves from the old game are discarded.
func (gs *GameSession) Restart(mode domain.GameMode) error {
	if _, err := domain.ParseGameMode(string(mode)); err != nil {
		return err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	log.Printf("[SESSION] Restarting game %s in mode %s", gs.GameID, mode)
	gs.FinishedAt = time.Time{}
	gs.state = domain.NewGameState()
	gs.lastActivity = time.Now()
	gs.scheduleStartLocked(mode)
	return nil
}

// stop cancels pending timers; the session stays readable.
func (gs *GameSession) stop() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.bumpGenerationLocked()
}

func (gs *GameSession) bumpGenerationLocked() uint64 {
	gs.generation++
	if gs.timer != nil {
		gs.timer.Stop()
		gs.timer = nil
	}
	return gs.generation
}

func (gs *GameSession) scheduleStartLocked(mode domain.GameMode) {
	gen := gs.bumpGenerationLocked()
	gs.pendingMode = mode

	delay := gs.deps.opts.GameStartDelay
	if delay <= 0 {
		gs.startLocked()
		return
	}
	gs.timer = time.AfterFunc(delay, func() {
		gs.mu.Lock()
		defer gs.mu.Unlock()
		if gen != gs.generation || gs.state.Status != domain.StatusNotStarted {
			return
		}
		gs.startLocked()
	})
}

func (gs *GameSession) startLocked() {
	state, err := domain.StartGame(gs.pendingMode)
	if err != nil {
		// pendingMode was validated when it was set
		log.Printf("[SESSION] Could not start game %s: %v", gs.GameID, err)
		return
	}

	gs.state = state
	gs.CreatedAt = time.Now()
	gs.lastActivity = gs.CreatedAt
	log.Printf("[SESSION] Game %s started (%s)", gs.GameID, state.Mode)

	gs.broadcastStateLocked()
	gs.afterTransitionLocked()
}

// afterTransitionLocked is the tick run after every state change: the
// terminal check first, then any computer move that is now due.
func (gs *GameSession) afterTransitionLocked() {
	gs.state = domain.CheckTerminal(gs.state)
	if gs.state.Status == domain.StatusFinished {
		gs.finishLocked()
		return
	}
	if domain.IsComputerTurn(gs.state) {
		gs.scheduleBotLocked()
	}
}

func (gs *GameSession) scheduleBotLocked() {
	gen := gs.bumpGenerationLocked()

	delay := gs.deps.opts.ComputerDelay
	if delay <= 0 {
		if err := gs.handleBotMoveLocked(); err != nil {
			log.Printf("[BOT] Error handling bot move in game %s: %v", gs.GameID, err)
		}
		return
	}
	gs.timer = time.AfterFunc(delay, func() {
		if err := gs.HandleBotMove(gen); err != nil {
			log.Printf("[BOT] Error handling bot move in game %s: %v", gs.GameID, err)
		}
	})
}

func (gs *GameSession) handleBotMoveLocked() error {
	// Verify it's actually the computer's turn (race condition check)
	if !domain.IsComputerTurn(gs.state) {
		return nil
	}

	gs.state = domain.CheckTerminal(gs.state)
	if gs.state.Status == domain.StatusFinished {
		gs.finishLocked()
		return nil
	}

	difficulty, _ := bot.DifficultyForMode(gs.state.Mode)
	move, ok, err := bot.ChooseAIMove(gs.state, difficulty)
	if err != nil {
		return err
	}
	if !ok {
		// a side without moves ends the game
		log.Printf("[BOT] No move available in game %s", gs.GameID)
		gs.state.Status = domain.StatusFinished
		gs.finishLocked()
		return nil
	}

	player := gs.state.CurrentPlayer
	next, err := domain.ApplyMove(gs.state, move.Position)
	if err != nil {
		return fmt.Errorf("bot move %s rejected: %w", move.Position, err)
	}

	gs.state = next
	gs.lastActivity = time.Now()
	gs.broadcastMoveLocked(player, move.Position, move.Captures)
	gs.afterTransitionLocked()
	return nil
}

func (gs *GameSession) finishLocked() {
	gs.FinishedAt = time.Now()
	gs.bumpGenerationLocked()

	summary, err := domain.FinalSummary(gs.state)
	if err != nil {
		log.Printf("[GAME] Game %s finished without a summary: %v", gs.GameID, err)
		return
	}
	log.Printf("[GAME] Game %s over: %d-%d (%s)", gs.GameID, summary.Player1Score, summary.Player2Score, summary.Winner)

	snapshot := domain.WithHints(gs.state)
	gs.notify(domain.ServerMessage{
		Type:    domain.MsgGameOver,
		GameID:  gs.GameID,
		State:   &snapshot,
		Summary: &summary,
	})

	record := domain.NewGameRecord(gs.GameID, gs.state, summary, gs.CreatedAt, gs.FinishedAt)
	gs.persistAsync(record, summary)
}

// Saves in background so game_over is never held up by the database
func (gs *GameSession) persistAsync(record domain.GameRecord, summary domain.Summary) {
	deps := gs.deps
	if deps.repo == nil && deps.scores == nil {
		return
	}

	deps.persist.Add(1)
	go func() {
		defer deps.persist.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if deps.repo != nil {
			if err := deps.repo.SaveGame(ctx, record); err != nil {
				log.Printf("[GAME] Error saving game %s: %v", record.GameID, err)
			} else {
				log.Printf("[GAME] Game %s saved successfully", record.GameID)
			}
		}
		if deps.scores != nil {
			deps.scores.RecordFinishedGame(ctx, record.GameID, record.Mode, summary)
		}
	}()
}

func (gs *GameSession) broadcastStateLocked() {
	snapshot := domain.WithHints(gs.state)
	gs.notify(domain.ServerMessage{
		Type:   domain.MsgState,
		GameID: gs.GameID,
		State:  &snapshot,
	})
}

func (gs *GameSession) broadcastMoveLocked(player domain.Cell, pos domain.Position, captured []domain.Position) {
	snapshot := domain.WithHints(gs.state)
	move := pos
	gs.notify(domain.ServerMessage{
		Type:     domain.MsgMoveMade,
		GameID:   gs.GameID,
		State:    &snapshot,
		Player:   player,
		Move:     &move,
		Captured: captured,
	})
}

func (gs *GameSession) notify(msg domain.ServerMessage) {
	if gs.deps.notifier != nil {
		gs.deps.notifier.Broadcast(gs.GameID, msg)
	}
}
