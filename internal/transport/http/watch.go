package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/game"
)

// SpectatorCounter reports how many sockets follow a game.
type SpectatorCounter interface {
	ConnectionCount(gameID string) int
}

type WatchHandler struct {
	SessionManager *game.SessionManager
	Spectators     SpectatorCounter
}

func NewWatchHandler(sm *game.SessionManager, spectators SpectatorCounter) *WatchHandler {
	return &WatchHandler{SessionManager: sm, Spectators: spectators}
}

type liveGameResponse struct {
	GameID         string            `json:"gameId"`
	Mode           domain.GameMode   `json:"mode"`
	Status         domain.GameStatus `json:"status"`
	SpectatorCount int               `json:"spectatorCount"`
	MoveCount      int               `json:"moveCount"`
	StartedAt      string            `json:"startedAt"`
}

// GetLiveGames returns all unfinished games available for watching
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	activeGames := h.SessionManager.GetActiveGames()

	response := make([]liveGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		spectators := 0
		if h.Spectators != nil {
			spectators = h.Spectators.ConnectionCount(g.GameID)
		}
		response = append(response, liveGameResponse{
			GameID:         g.GameID,
			Mode:           g.Mode,
			Status:         g.Status,
			SpectatorCount: spectators,
			MoveCount:      g.MoveCount,
			StartedAt:      g.StartedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}
