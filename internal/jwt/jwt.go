package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
// Expired, tampered and malformed tokens are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated identity inside a signed token
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// JWTService issues and verifies signed session tokens
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWTService creates a new JWT service with the given signing secret and token lifetime
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		ttl:       ttl,
	}
}

// GenerateToken signs a token asserting the given user identity
func (s *JWTService) GenerateToken(userID int, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(s.secretKey)
}

// ValidateToken verifies a token's signature and expiry and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
