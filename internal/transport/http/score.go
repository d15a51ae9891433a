package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BestScoreReader interface {
	GetBestScore(ctx context.Context) (int, bool)
}

type ScoreHandler struct {
	Scores BestScoreReader
}

func NewScoreHandler(scores BestScoreReader) *ScoreHandler {
	return &ScoreHandler{Scores: scores}
}

// GetBestScore answers {"bestScore": null} until a game has been recorded
func (h *ScoreHandler) GetBestScore(c *gin.Context) {
	var best *int
	if h.Scores != nil {
		if score, ok := h.Scores.GetBestScore(c.Request.Context()); ok {
			best = &score
		}
	}
	c.JSON(http.StatusOK, gin.H{"bestScore": best})
}
