package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/internal/domain"
	"github.com/iamasit07/reversi/backend/internal/service/game"
	"github.com/iamasit07/reversi/backend/pkg/auth"
)

type GameHandler struct {
	SessionManager *game.SessionManager
}

func NewGameHandler(sm *game.SessionManager) *GameHandler {
	return &GameHandler{SessionManager: sm}
}

type gameResponse struct {
	GameID string           `json:"gameId"`
	Title  string           `json:"title"`
	State  domain.GameState `json:"state"`
}

func newGameResponse(gameID string, state domain.GameState) gameResponse {
	return gameResponse{GameID: gameID, Title: domain.TitleText(state), State: state}
}

type modeRequest struct {
	Mode domain.GameMode `json:"mode"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func (h *GameHandler) session(c *gin.Context) (*game.GameSession, bool) {
	session, exists := h.SessionManager.GetSession(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return nil, false
	}
	return session, true
}

// CreateGame starts a new session and returns the token that controls it
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	session, err := h.SessionManager.CreateSession(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateGameToken(session.GameID)
	if err != nil {
		log.Printf("[GAME] Failed to sign token for %s: %v", session.GameID, err)
		h.SessionManager.RemoveSession(session.GameID)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"gameId": session.GameID,
		"token":  token,
		"title":  domain.TitleText(session.Snapshot()),
		"state":  session.Snapshot(),
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newGameResponse(session.GameID, session.Snapshot()))
}

// GetLegalMoves lists the moves for the side to move, in row-major order
func (h *GameHandler) GetLegalMoves(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	moves := session.LegalMoves()
	if moves == nil {
		moves = []domain.Move{}
	}
	c.JSON(http.StatusOK, gin.H{"moves": moves})
}

func (h *GameHandler) MakeMove(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Row == nil || req.Col == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row and col are required"})
		return
	}

	state, err := session.HandleMove(domain.Position{Row: *req.Row, Col: *req.Col})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(session.GameID, state))
}

// Restart replaces the game with a fresh one; an empty mode keeps the current one
func (h *GameHandler) Restart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req modeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
	}
	if req.Mode == "" {
		req.Mode = session.Mode()
	}

	if err := session.Restart(req.Mode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(session.GameID, session.Snapshot()))
}

func (h *GameHandler) GetSummary(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	summary, err := session.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
