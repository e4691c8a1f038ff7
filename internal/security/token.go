package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PlayerClaims identifies a practicing player across visits. There are
// no accounts; the signed token just keeps one browser's records
// attached to one player id.
type PlayerClaims struct {
	PlayerID string `json:"pid"`
	jwt.RegisteredClaims
}

var errNoPlayerID = errors.New("token carries no player id")

// SignPlayerToken issues an HS256 token for the player id.
func SignPlayerToken(secret, playerID string, ttl time.Duration) (string, error) {
	claims := PlayerClaims{
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParsePlayerToken validates a token and returns the player id.
func ParsePlayerToken(secret, tokenString string) (string, error) {
	claims := &PlayerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.PlayerID == "" {
		return "", errNoPlayerID
	}
	return claims.PlayerID, nil
}
