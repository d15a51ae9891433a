package http

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/pkg/uid"
)

type HistoryService interface {
	RecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error)
	GameDetails(ctx context.Context, gameID string) (*domain.GameRecord, error)
}

type HistoryHandler struct {
	History HistoryService // nil when no database is configured
}

func NewHistoryHandler(history HistoryService) *HistoryHandler {
	return &HistoryHandler{History: history}
}

type historyItem struct {
	ID              string          `json:"id"`
	Mode            domain.GameMode `json:"mode"`
	Player1Score    int             `json:"player1Score"`
	Player2Score    int             `json:"player2Score"`
	Result          domain.Outcome  `json:"result"`
	MovesCount      int             `json:"movesCount"`
	DurationSeconds int             `json:"durationSeconds"`
	CreatedAt       time.Time       `json:"createdAt"`
	FinishedAt      time.Time       `json:"finishedAt"`
}

func (h *HistoryHandler) available(c *gin.Context) bool {
	if h.History == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Game history is not available"})
		return false
	}
	return true
}

// GetHistory lists the most recently finished games, ?limit= of them
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	if !h.available(c) {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	games, err := h.History.RecentGames(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[HISTORY] Failed to fetch history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	history := make([]historyItem, 0, len(games))
	for _, g := range games {
		history = append(history, historyItem{
			ID:              g.GameID,
			Mode:            g.Mode,
			Player1Score:    g.Player1Score,
			Player2Score:    g.Player2Score,
			Result:          g.Winner,
			MovesCount:      g.TotalMoves,
			DurationSeconds: g.DurationSeconds,
			CreatedAt:       g.CreatedAt,
			FinishedAt:      g.FinishedAt,
		})
	}

	c.JSON(http.StatusOK, history)
}

func (h *HistoryHandler) GetGameDetails(c *gin.Context) {
	if !h.available(c) {
		return
	}

	gameID := c.Param("id")
	if !uid.IsGameID(gameID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	record, err := h.History.GameDetails(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
