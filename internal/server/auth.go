package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gravitas-015/hexgrid/internal/config"
)

// TokenValidator checks the HMAC-signed JWTs presented on websocket and
// render requests. Tokens are issued by whatever frontend sits before
// the viewer; validation is purely local.
type TokenValidator struct {
	secret []byte
	issuer string
}

// Claims are the token claims the viewer cares about
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// NewTokenValidator creates a validator for the configured secret. An
// empty issuer disables the issuer check.
func NewTokenValidator(cfg config.AuthConfig) *TokenValidator {
	return &TokenValidator{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

// ValidateToken validates a JWT token and returns its claims
func (v *TokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	return claims, nil
}

// extractToken pulls the bearer token from a request. Browser websocket
// clients cannot set headers, so the subprotocol list ("access_token,
// <token>") and a token query parameter are accepted as fallbacks.
func extractToken(r *http.Request) string {
	if protocols := r.Header.Get("Sec-WebSocket-Protocol"); protocols != "" {
		parts := strings.Split(protocols, ",")
		if len(parts) == 2 && strings.TrimSpace(parts[0]) == "access_token" {
			return strings.TrimSpace(parts[1])
		}
	}

	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return r.URL.Query().Get("token")
}
