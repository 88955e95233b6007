package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/partner-revenue-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// requireAdmin devolve o admin autenticado ou responde 401
func requireAdmin(w http.ResponseWriter, r *http.Request) (string, bool) {
	adminID := middleware.CurrentAdminID(r.Context())
	if adminID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Admin não autenticado", nil)
		return "", false
	}
	return adminID, true
}
