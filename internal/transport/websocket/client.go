package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/reversi/backend/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager tracks the sockets subscribed to each game.
type ConnectionManager struct {
	// conn.WriteJSON is not safe for concurrent use, so every socket gets
	// its own write lock.
	games map[string]map[*websocket.Conn]*sync.Mutex
	mu    sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		games: make(map[string]map[*websocket.Conn]*sync.Mutex),
	}
}

// AddConnection subscribes conn to gameID
func (cm *ConnectionManager) AddConnection(gameID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conns, exists := cm.games[gameID]
	if !exists {
		conns = make(map[*websocket.Conn]*sync.Mutex)
		cm.games[gameID] = conns
	}
	conns[conn] = &sync.Mutex{}
}

// RemoveConnection unsubscribes and closes conn
func (cm *ConnectionManager) RemoveConnection(gameID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conns, exists := cm.games[gameID]
	if !exists {
		return
	}
	if _, ok := conns[conn]; ok {
		conn.Close()
		delete(conns, conn)
	}
	if len(conns) == 0 {
		delete(cm.games, gameID)
	}
}

// CloseGame drops every subscriber of gameID
func (cm *ConnectionManager) CloseGame(gameID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for conn := range cm.games[gameID] {
		conn.Close()
	}
	delete(cm.games, gameID)
}

func (cm *ConnectionManager) ConnectionCount(gameID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.games[gameID])
}

// SendMessage writes one message to a single socket
func (cm *ConnectionManager) SendMessage(gameID string, conn *websocket.Conn, message interface{}) error {
	cm.mu.RLock()
	mu, exists := cm.games[gameID][conn]
	cm.mu.RUnlock()

	if !exists {
		return nil // already unsubscribed
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// Broadcast sends message to every subscriber of gameID. It satisfies
// game.Notifier.
func (cm *ConnectionManager) Broadcast(gameID string, message domain.ServerMessage) {
	cm.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(cm.games[gameID]))
	for conn := range cm.games[gameID] {
		conns = append(conns, conn)
	}
	cm.mu.RUnlock()

	for _, conn := range conns {
		if err := cm.SendMessage(gameID, conn, message); err != nil {
			log.Printf("[WS] Failed to send %s for game %s: %v", message.Type, gameID, err)
		}
	}
}

func (cm *ConnectionManager) ping(gameID string, conn *websocket.Conn) error {
	cm.mu.RLock()
	mu, exists := cm.games[gameID][conn]
	cm.mu.RUnlock()

	if !exists {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()
	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
