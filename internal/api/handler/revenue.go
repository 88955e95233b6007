package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
)

// RevenueRefresher dispara reconciliações em segundo plano
//
//go:generate mockgen -source=revenue.go -destination=mocks/revenue.go -package=mocks
type RevenueRefresher interface {
	TriggerRefreshAll(ctx context.Context, adminID string) (int, error)
	GetStatus() map[string]any
}

// FetchPartnerRevenue reconcilia um parceiro e aguarda o resultado
func FetchPartnerRevenue(reconciler reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		result, err := reconciler.ReconcileRevenue(r.Context(), adminID, partnerIDParam(r))
		if err != nil {
			handleReconcileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RefreshAllRevenue envia todos os parceiros com chave do admin para reconciliação
func RefreshAllRevenue(refresher RevenueRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		count, err := refresher.TriggerRefreshAll(r.Context(), adminID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"admin_id": adminID,
				"error":    err.Error(),
			}).Error("Erro ao iniciar atualização de receita")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar parceiros com chave de API", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":  "Atualização de receita iniciada",
			"partners": count,
		})
	}
}

func GetRevenueSyncStatus(refresher RevenueRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		writeJSON(w, http.StatusOK, refresher.GetStatus())
	}
}

func handleReconcileError(w http.ResponseWriter, err error) {
	var reconcileErr *reconciling.ReconcileError
	if errors.As(err, &reconcileErr) {
		apiErrors.WriteError(w, reconcileErr.Code, reconcileErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro não mapeado na reconciliação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na reconciliação", nil)
}
