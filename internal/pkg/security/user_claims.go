package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the business payload carried by access tokens.
type UserClaims struct {
	UserID  uint64   `json:"user_id"`
	Roles   []string `json:"roles"`
	Refresh bool     `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}
