package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and verifies the HS256 bearer tokens that identify the
// acting user across API calls. Tokens carry identity only; they perform no
// credential verification.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer with the given signing secret and token
// lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the actor.
func (t *TokenIssuer) Issue(actorID string, role Role) (string, error) {
	claims := jwt.MapClaims{
		"actor_id": actorID,
		"role":     string(role),
		"exp":      time.Now().Add(t.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("identity: sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the actor id and role it carries.
func (t *TokenIssuer) Verify(tokenString string) (string, Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("identity: parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("identity: invalid token")
	}

	actorID, ok := claims["actor_id"].(string)
	if !ok {
		return "", "", fmt.Errorf("identity: invalid actor_id in token")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", fmt.Errorf("identity: invalid role in token")
	}
	role := Role(roleStr)
	if !ValidRole(role) {
		return "", "", fmt.Errorf("identity: invalid role %q in token", roleStr)
	}

	return actorID, role, nil
}
