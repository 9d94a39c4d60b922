// Package auth holds the demo credentials provider, session token signing
// and verification, and the Gin middleware that enforces it.
package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Twosense-Dev/BizBot/app/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultLeeway = 30 * time.Second

	// SessionMaxAge matches the 30-day browser session the identity
	// provider issues.
	SessionMaxAge = 30 * 24 * time.Hour

	defaultSecret = "your-secret-key"
)

// Verifier issues and validates signed session tokens.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifierFromEnv initializes a verifier from SESSION_SECRET, falling
// back to the demo default when unset.
func NewVerifierFromEnv() (*Verifier, error) {
	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = defaultSecret
	}
	return NewVerifier(secret)
}

// NewVerifier builds a verifier around a signing secret.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("session secret must be set")
	}

	parser := jwt.NewParser(
		jwt.WithLeeway(defaultLeeway),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)

	return &Verifier{
		secret: []byte(secret),
		parser: parser,
	}, nil
}

// IssueToken signs a session token for a user. The token is immutable once
// issued; refreshing a session means issuing a new one.
func (v *Verifier) IssueToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"isPremium": user.IsPremium,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(SessionMaxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// Verify parses and validates a session token, returning extracted claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := v.parser.Parse(tokenString, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	claims := &Claims{
		Subject:   readString(mapClaims, "sub"),
		Name:      readString(mapClaims, "name"),
		Email:     readString(mapClaims, "email"),
		IsPremium: readBool(mapClaims, "isPremium"),
		TokenID:   readString(mapClaims, "jti"),
		ExpiresAt: readExpiry(mapClaims["exp"]),
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing sub")
	}
	return claims, nil
}

func readString(claims jwt.MapClaims, key string) string {
	val := claims[key]
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

func readBool(claims jwt.MapClaims, key string) bool {
	val := claims[key]
	if b, ok := val.(bool); ok {
		return b
	}
	return false
}

func readExpiry(raw any) time.Time {
	switch v := raw.(type) {
	case float64:
		return time.Unix(int64(v), 0)
	case int64:
		return time.Unix(v, 0)
	}
	return time.Time{}
}
