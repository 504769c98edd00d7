package security

import (
	"PedGuard/internal/api/config"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "PedGuard"

var (
	jwtSecret     []byte
	accessExpire  = 24 * time.Hour
	refreshExpire = 14 * 24 * time.Hour
)

// Init loads the signing secret and expirations from config.
func Init(cfg config.JWTConfig) error {
	if cfg.Secret == "" {
		return errors.New("jwt secret is not configured")
	}
	jwtSecret = []byte(cfg.Secret)
	if cfg.AccessExpireH > 0 {
		accessExpire = time.Duration(cfg.AccessExpireH) * time.Hour
	}
	if cfg.RefreshExpireH > 0 {
		refreshExpire = time.Duration(cfg.RefreshExpireH) * time.Hour
	}
	return nil
}

// GenerateToken issues a signed access token.
func GenerateToken(userID uint64, roles []string) (string, error) {
	return sign(userID, roles, false, accessExpire)
}

// GenerateRefreshToken issues a longer-lived refresh token.
func GenerateRefreshToken(userID uint64) (string, error) {
	return sign(userID, nil, true, refreshExpire)
}

func sign(userID uint64, roles []string, refresh bool, expire time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID:  userID,
		Roles:   roles,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and verifies a token string.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid or expired")
	}

	return claims, nil
}

// ExtractSignature returns the signature segment of a token, used as the
// denylist key on logout.
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("malformed token")
	}
	return parts[2], nil
}
