package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/scribeapp/scribe-be/internal/models"
)

var (
	// ErrTokenInvalid covers tampered, malformed and wrong-key tokens.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired means the signature verified but the token is past
	// its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims defines the JWT claims structure.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. The signing key and
// token lifetime are fixed at construction; the service holds no mutable
// state and is safe for concurrent use.
type TokenService struct {
	key      []byte
	lifetime time.Duration
}

// NewTokenService creates a TokenService with the given signing key and
// token lifetime.
func NewTokenService(key []byte, lifetime time.Duration) *TokenService {
	return &TokenService{key: key, lifetime: lifetime}
}

// Issue creates a new signed JWT for a given user.
func (s *TokenService) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify parses and validates a JWT string. Expiry is reported as
// ErrTokenExpired; every other failure mode as ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
