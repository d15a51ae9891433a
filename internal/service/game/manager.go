package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/reversi/backend/internal/domain"
)

// gameCloser is implemented by notifiers that hold per-game connections.
type gameCloser interface {
	CloseGame(gameID string)
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
	deps    *sessionDeps
}

// NewSessionManager wires sessions to their collaborators. repo, scores and
// notifier may each be nil.
func NewSessionManager(repo GameRepository, scores ScoreRecorder, notifier Notifier, opts Options) *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
		deps: &sessionDeps{
			repo:     repo,
			scores:   scores,
			notifier: notifier,
			opts:     opts,
		},
	}
}

func (sm *SessionManager) CreateSession(mode domain.GameMode) (*GameSession, error) {
	session, err := newGameSession(mode, sm.deps)
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s (%s)", session.GameID, mode)
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	session, exists := sm.Session[gameID]
	if exists {
		delete(sm.Session, gameID)
	}
	sm.mu.Unlock()

	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	sm.release(session)
	return nil
}

// release stops the session's timers and disconnects anyone still watching.
func (sm *SessionManager) release(session *GameSession) {
	session.stop()
	if closer, ok := sm.deps.notifier.(gameCloser); ok {
		closer.CloseGame(session.GameID)
	}
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// CleanupOldSessions drops finished sessions older than finishedTTL and
// unfinished ones without activity for idleTTL. It returns how many it removed.
func (sm *SessionManager) CleanupOldSessions(finishedTTL, idleTTL time.Duration) int {
	sm.mu.Lock()
	now := time.Now()
	var stale []*GameSession

	for gameID, session := range sm.Session {
		session.mu.Lock()
		finished := session.state.Status == domain.StatusFinished
		expired := (finished && now.Sub(session.FinishedAt) > finishedTTL) ||
			(!finished && now.Sub(session.lastActivity) > idleTTL)
		session.mu.Unlock()

		if expired {
			delete(sm.Session, gameID)
			stale = append(stale, session)
		}
	}
	sm.mu.Unlock()

	for _, session := range stale {
		sm.release(session)
	}

	if len(stale) > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", len(stale))
	}
	return len(stale)
}

// Wait blocks until every background save has completed.
func (sm *SessionManager) Wait() {
	sm.deps.persist.Wait()
}

// LiveGame is a summary of an in-memory session for listings.
type LiveGame struct {
	GameID    string
	Mode      domain.GameMode
	Status    domain.GameStatus
	MoveCount int
	StartedAt time.Time
}

// GetActiveGames lists sessions whose game has not finished, oldest first.
func (sm *SessionManager) GetActiveGames() []LiveGame {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, session := range sm.Session {
		sessions = append(sessions, session)
	}
	sm.mu.RUnlock()

	games := make([]LiveGame, 0, len(sessions))
	for _, session := range sessions {
		session.mu.Lock()
		if session.state.Status != domain.StatusFinished {
			games = append(games, LiveGame{
				GameID:    session.GameID,
				Mode:      session.pendingMode,
				Status:    session.state.Status,
				MoveCount: session.state.MoveCount,
				StartedAt: session.CreatedAt,
			})
		}
		session.mu.Unlock()
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].StartedAt.Before(games[j].StartedAt)
	})
	return games
}
