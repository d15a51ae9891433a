package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/internal/transport/http/middleware"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Game      *GameHandler
	History   *HistoryHandler
	Score     *ScoreHandler
	Watch     *WatchHandler
	WebSocket http.HandlerFunc
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/games", h.Game.CreateGame)
		api.GET("/games/:id", h.Game.GetGame)
		api.GET("/games/:id/moves", h.Game.GetLegalMoves)
		api.GET("/games/:id/summary", h.Game.GetSummary)

		api.GET("/best-score", h.Score.GetBestScore)
		api.GET("/history", h.History.GetHistory)
		api.GET("/history/:id", h.History.GetGameDetails)
		api.GET("/watch", h.Watch.GetLiveGames)
	}

	// Only the holder of the game token may change a game
	protected := api.Group("/games/:id")
	protected.Use(middleware.GameAuthMiddleware())
	{
		protected.POST("/moves", h.Game.MakeMove)
		protected.POST("/restart", h.Game.Restart)
	}

	// WebSocket Route (token checked inside the WS handler itself)
	if h.WebSocket != nil {
		router.GET("/ws", gin.WrapF(h.WebSocket))
	}

	return router
}
