package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/pkg/auth"
)

// GameAuthMiddleware requires a Bearer game token issued for the game in the
// :id path parameter.
func GameAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing game token"})
			return
		}

		gameID := c.Param("id")
		if err := auth.AuthorizeGame(tokenString, gameID); err != nil {
			log.Printf("[AUTH] Rejected token for game %s: %v", gameID, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid game token"})
			return
		}

		c.Set("game_id", gameID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
