package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/iamasit07/reversi/backend/internal/config"
)

var ErrGameMismatch = errors.New("token was issued for a different game")

// GameClaims authorise moves and restarts on a single game.
type GameClaims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

// GenerateGameToken creates the bearer token returned when a game is created
func GenerateGameToken(gameID string) (string, error) {
	secret := config.AppConfig.JWTSecret
	ttl := config.AppConfig.GameTokenTTL

	claims := &GameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gameID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateGameToken validates a game token and returns its claims
func ValidateGameToken(tokenString string) (*GameClaims, error) {
	secret := config.AppConfig.JWTSecret

	token, err := jwt.ParseWithClaims(tokenString, &GameClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*GameClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// AuthorizeGame validates tokenString and checks that it belongs to gameID.
func AuthorizeGame(tokenString, gameID string) error {
	claims, err := ValidateGameToken(tokenString)
	if err != nil {
		return err
	}
	if claims.GameID != gameID {
		return ErrGameMismatch
	}
	return nil
}
