package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/game"
	"github.com/iamasit07/reversi/backend/pkg/auth"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins list
// accepts any origin.
func NewHandler(cm *ConnectionManager, sm *game.SessionManager, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		log.Printf("[WS] Rejected origin '%s'", origin)
		return false
	}
}

// HandleWebSocket subscribes the client to ?game_id=. With a valid ?token=
// the client may also send moves; without one it only watches.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	token := r.URL.Query().Get("token")

	session, exists := h.SessionManager.GetSession(gameID)
	if !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	canPlay := false
	if token != "" {
		if err := auth.AuthorizeGame(token, gameID); err != nil {
			log.Printf("[WS] Invalid token for game %s: %v", gameID, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		canPlay = true
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn, session, canPlay)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn, session *game.GameSession, canPlay bool) {
	gameID := session.GameID
	h.ConnManager.AddConnection(gameID, conn)
	log.Printf("[WS] Client subscribed to game %s (canPlay=%v)", gameID, canPlay)

	defer func() {
		log.Printf("[WS] Connection closed for game %s", gameID)
		h.ConnManager.RemoveConnection(gameID, conn)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(gameID, conn, done)

	snapshot := session.Snapshot()
	h.ConnManager.SendMessage(gameID, conn, domain.ServerMessage{
		Type:   domain.MsgState,
		GameID: gameID,
		State:  &snapshot,
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.sendError(gameID, conn, "Invalid message format")
			continue
		}

		if !canPlay {
			h.sendError(gameID, conn, "Read-only connection")
			continue
		}
		h.processMessage(session, conn, msg)
	}
}

// pings take the same per-socket write lock as SendMessage
func (h *Handler) keepAlive(gameID string, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := h.ConnManager.ping(gameID, conn); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(session *game.GameSession, conn *websocket.Conn, msg domain.ClientMessage) {
	switch msg.Type {
	case domain.MsgMakeMove:
		if _, err := session.HandleMove(domain.Position{Row: msg.Row, Col: msg.Col}); err != nil {
			h.sendError(session.GameID, conn, err.Error())
		}

	case domain.MsgRestart:
		mode := msg.Mode
		if mode == "" {
			mode = session.Mode()
		}
		if err := session.Restart(mode); err != nil {
			h.sendError(session.GameID, conn, err.Error())
		}

	default:
		h.sendError(session.GameID, conn, "Unknown message type")
	}
}

func (h *Handler) sendError(gameID string, conn *websocket.Conn, message string) {
	h.ConnManager.SendMessage(gameID, conn, domain.ErrorMessage{Type: domain.MsgError, Message: message})
}
