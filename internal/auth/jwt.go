package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/obiajulu/fintrack-be/internal/api/respond"
	"github.com/obiajulu/fintrack-be/internal/apperror"
)

const bearerPrefix = "Bearer "

// Claims defines the JWT claims structure.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the verified caller attached to a request context.
type Identity struct {
	ID    string
	Email string
}

type contextKey string

const identityKey = contextKey("identity")

// IdentityFromContext returns the verified identity set by RequireAuth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// TokenManager signs and verifies bearer tokens. The secret and TTL are
// injected at construction; nothing here reads the environment.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given secret and TTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token bound to the user's id and email.
func (m *TokenManager) Sign(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string, checking signature and expiry.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAuth protects a route. It expects "Authorization: Bearer <token>",
// verifies the token and threads the identity through the request context.
// All failures look the same to the caller apart from the coarse
// header-vs-token distinction.
func (m *TokenManager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			respond.Error(w, r, apperror.Unauthorized("Missing or invalid Authorization header"))
			return
		}

		tokenStr := strings.TrimSpace(header[len(bearerPrefix):])
		claims, err := m.Verify(tokenStr)
		if err != nil {
			respond.Error(w, r, apperror.Unauthorized("Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, Identity{ID: claims.ID, Email: claims.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
