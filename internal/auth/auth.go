package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultRole = "Viewer"

// User is the internal domain model for an account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims are the JWT claims carried by access tokens. Role is advisory only;
// no route differentiates behavior by it.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates access tokens.
type TokenGenerator interface {
	GenerateAccessToken(email, role string) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type ServiceAPI interface {
	Register(dto SignupDTO) (*User, error)
	Authenticate(dto LoginDTO) (LoginResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type ctxKey string

const ContextClaimsKey ctxKey = "authClaims"

// ClaimsFromContext returns the token claims stored by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ContextClaimsKey).(*Claims)
	return claims, ok
}
