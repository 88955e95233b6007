package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/partner-revenue-api/pkg/log"
)

type contextKey string

const (
	ContextKeyAdmin contextKey = "admin"
)

var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/healthcheck": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(r.Context(), tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				apiErrors.WriteError(w, code, "Sessão inválida ou expirada", nil)
				return
			}

			ctx := WithAdminClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithAdminClaims guarda as claims do admin autenticado no contexto
func WithAdminClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyAdmin, claims)
}

// AdminClaims devolve as claims do admin autenticado, se houver
func AdminClaims(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyAdmin).(*domain.Claims)
	return claims, ok && claims != nil
}

// CurrentAdminID devolve o admin da requisição ou "" fora de uma rota autenticada
func CurrentAdminID(ctx context.Context) string {
	if claims, ok := AdminClaims(ctx); ok {
		return claims.AdminID
	}
	return ""
}
