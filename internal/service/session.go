package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/model"
)

// SessionClaims is the payload carried by the prime-panel session
// cookie. TokenVersion must match the version stored for the user for
// the session to pass the authoritative check.
type SessionClaims struct {
	UserID       uint       `json:"user_id"`
	Email        string     `json:"email"`
	Role         model.Role `json:"role"`
	TokenVersion int        `json:"token_version"`
	jwt.RegisteredClaims
}

// SessionService signs and verifies session tokens. Verification here
// covers signature and expiry only; the store-backed version check
// lives with the user service.
type SessionService struct {
	secret   string
	tokenTTL time.Duration
}

func NewSessionService(cfg config.SessionConfig) *SessionService {
	return &SessionService{
		secret:   cfg.Secret,
		tokenTTL: cfg.TokenTTL,
	}
}

// TokenTTL returns the configured session lifetime.
func (s *SessionService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Issue creates a signed session token embedding the user's current
// token version. Tokens are never mutated after issuance; revocation
// happens purely on the stored-version side of the comparison.
func (s *SessionService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks signature and expiry and returns the claims. It never
// touches the database, which makes it cheap enough to run on every
// panel request.
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
