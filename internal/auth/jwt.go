package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"netsum/internal/config"
)

// GenerateJWT issues a signed HS256 token for an authenticated API
// client, valid for the configured TTL.
func GenerateJWT() (string, error) {
	cfg := config.GetConfig()
	if cfg.Auth.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "netsum-api",
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	return token.SignedString([]byte(cfg.Auth.JWTSecret))
}

// ValidateJWT checks the signature and expiry of a bearer token and
// returns its claims.
func ValidateJWT(tokenString string) (jwt.MapClaims, error) {
	cfg := config.GetConfig()
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return claims, nil
}
