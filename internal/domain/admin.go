package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSession é a sessão ativa de um admin. Há no máximo uma por admin.
type AdminSession struct {
	AdminID      string    `json:"admin_id"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired indica se a sessão já venceu no instante informado
func (s *AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Claims struct {
	AdminID   string `json:"admin_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// LoginResponse é devolvido após o login com PIN
type LoginResponse struct {
	Token     string    `json:"token"`
	AdminID   string    `json:"admin_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
