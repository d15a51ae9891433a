package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/game"
)

func TestWorkerRemovesIdleSessions(t *testing.T) {
	sm := game.NewSessionManager(nil, nil, nil, game.Options{})
	if _, err := sm.CreateSession(domain.ModeTwoPlayer); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// negative TTLs make every session stale
	w := NewWorker(sm, -time.Second, -time.Second)
	w.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if sm.Count() != 0 {
		t.Fatalf("expected the first pass to remove the session, %d left", sm.Count())
	}

	if _, err := sm.CreateSession(domain.ModeEasyAI); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for sm.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("ticker never cleaned up the second session")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWorkerKeepsFreshSessions(t *testing.T) {
	sm := game.NewSessionManager(nil, nil, nil, game.Options{})
	if _, err := sm.CreateSession(domain.ModeTwoPlayer); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	w := NewWorker(sm, time.Hour, time.Hour)
	if removed := w.runCleanup(); removed != 0 || sm.Count() != 1 {
		t.Fatalf("fresh session removed (removed=%d, left=%d)", removed, sm.Count())
	}
}
