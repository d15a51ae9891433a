package websocket

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/reversi/backend/internal/config"
	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/game"
	"github.com/iamasit07/reversi/backend/pkg/auth"
)

func setupServer(t *testing.T) (*httptest.Server, *game.SessionManager, *ConnectionManager) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret", GameTokenTTL: time.Hour}
	t.Cleanup(func() { config.AppConfig = prev })

	cm := NewConnectionManager()
	sm := game.NewSessionManager(nil, nil, cm, game.Options{})
	h := NewHandler(cm, sm, nil)

	server := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(server.Close)
	return server, sm, cm
}

func dial(t *testing.T, server *httptest.Server, gameID, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	q := url.Values{}
	q.Set("game_id", gameID)
	if token != "" {
		q.Set("token", token)
	}
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?" + q.Encode()
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if conn != nil {
		t.Cleanup(func() { conn.Close() })
	}
	return conn, resp, err
}

func readMessage(t *testing.T, conn *websocket.Conn) domain.ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg domain.ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestUnknownGameIsRejected(t *testing.T) {
	server, _, _ := setupServer(t)
	_, resp, err := dial(t, server, "missing", "")
	if err == nil {
		t.Fatalf("expected the handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", resp)
	}
}

func TestInvalidTokenIsRejected(t *testing.T) {
	server, sm, _ := setupServer(t)
	session, _ := sm.CreateSession(domain.ModeTwoPlayer)

	_, resp, err := dial(t, server, session.GameID, "not-a-token")
	if err == nil || resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v (%v)", resp, err)
	}
}

func TestPlayerMovesAreBroadcast(t *testing.T) {
	server, sm, cm := setupServer(t)
	session, _ := sm.CreateSession(domain.ModeTwoPlayer)
	token, err := auth.GenerateGameToken(session.GameID)
	if err != nil {
		t.Fatalf("GenerateGameToken: %v", err)
	}

	player, _, err := dial(t, server, session.GameID, token)
	if err != nil {
		t.Fatalf("dial player: %v", err)
	}
	if msg := readMessage(t, player); msg.Type != domain.MsgState || msg.State.Status != domain.StatusInProgress {
		t.Fatalf("expected initial state, got %+v", msg)
	}

	watcher, _, err := dial(t, server, session.GameID, "")
	if err != nil {
		t.Fatalf("dial watcher: %v", err)
	}
	readMessage(t, watcher)
	if cm.ConnectionCount(session.GameID) != 2 {
		t.Fatalf("expected two subscribers, got %d", cm.ConnectionCount(session.GameID))
	}

	if err := player.WriteJSON(domain.ClientMessage{Type: domain.MsgMakeMove, Row: 2, Col: 4}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for name, conn := range map[string]*websocket.Conn{"player": player, "watcher": watcher} {
		msg := readMessage(t, conn)
		if msg.Type != domain.MsgMoveMade || msg.Player != domain.Player1 {
			t.Fatalf("%s: expected move_made by player 1, got %+v", name, msg)
		}
		if msg.Move == nil || *msg.Move != (domain.Position{Row: 2, Col: 4}) {
			t.Fatalf("%s: unexpected move %v", name, msg.Move)
		}
		if len(msg.Captured) != 1 || msg.Captured[0] != (domain.Position{Row: 3, Col: 4}) {
			t.Fatalf("%s: unexpected captures %v", name, msg.Captured)
		}
	}
}

func TestWatcherCannotMove(t *testing.T) {
	server, sm, _ := setupServer(t)
	session, _ := sm.CreateSession(domain.ModeTwoPlayer)

	watcher, _, err := dial(t, server, session.GameID, "")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	readMessage(t, watcher)

	watcher.WriteJSON(domain.ClientMessage{Type: domain.MsgMakeMove, Row: 2, Col: 4})
	msg := readMessage(t, watcher)
	if msg.Type != domain.MsgError || msg.Message != "Read-only connection" {
		t.Fatalf("expected read-only error, got %+v", msg)
	}
	if session.Snapshot().MoveCount != 0 {
		t.Fatalf("watcher move must not be applied")
	}
}

func TestIllegalMoveReportsError(t *testing.T) {
	server, sm, _ := setupServer(t)
	session, _ := sm.CreateSession(domain.ModeTwoPlayer)
	token, _ := auth.GenerateGameToken(session.GameID)

	player, _, err := dial(t, server, session.GameID, token)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	readMessage(t, player)

	player.WriteJSON(domain.ClientMessage{Type: domain.MsgMakeMove, Row: 0, Col: 0})
	msg := readMessage(t, player)
	if msg.Type != domain.MsgError || !strings.HasPrefix(msg.Message, domain.ErrIllegalMove.Error()) {
		t.Fatalf("expected illegal move error, got %+v", msg)
	}
}
