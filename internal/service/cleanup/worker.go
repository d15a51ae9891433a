package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/reversi/backend/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	FinishedTTL    time.Duration
	IdleTTL        time.Duration
}

func NewWorker(sm *game.SessionManager, finishedTTL, idleTTL time.Duration) *Worker {
	return &Worker{
		SessionManager: sm,
		Interval:       1 * time.Hour,
		FinishedTTL:    finishedTTL,
		IdleTTL:        idleTTL,
	}
}

// Start runs one pass immediately, then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) runCleanup() int {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")
	return w.SessionManager.CleanupOldSessions(w.FinishedTTL, w.IdleTTL)
}
