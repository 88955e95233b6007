package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/partner-revenue-api/pkg/middleware"
)

type LoginRequest struct {
	PIN string `json:"pin"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.LoginWithPIN(r.Context(), req.PIN)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// Logout encerra a sessão do admin autenticado
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		if err := service.ExpireSession(r.Context(), adminID); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetSession devolve o admin e o vencimento da sessão atual
func GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.AdminClaims(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Admin não autenticado", nil)
			return
		}

		response := map[string]any{
			"admin_id": claims.AdminID,
		}
		if claims.ExpiresAt != nil {
			response["expires_at"] = claims.ExpiresAt.Time
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro não mapeado na autenticação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na autenticação", nil)
}
