package auth

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/electrohub/storefront-api/models"
)

const tokenTTL = 24 * time.Hour

// NewSessionID mints an opaque session identifier. Sessions exist
// before sign-in so guest carts work.
func NewSessionID() string {
	return "sess_" + generateRandomString(16)
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_session"
	}
	return hex.EncodeToString(bytes)
}

// IssueToken signs an HS256 JWT binding the session to an identity.
// A nil user produces a guest token.
func IssueToken(sessionID string, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "guest",
		"exp":        time.Now().Add(tokenTTL).Unix(),
	}
	if user != nil {
		claims["user_id"] = user.ID
		claims["role"] = string(user.Role)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
