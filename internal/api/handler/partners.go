package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
)

func ListPartners(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		partners, err := service.ListPartners(r.Context(), adminID)
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, partners)
	}
}

func GetPartner(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		partner, err := service.GetPartner(r.Context(), adminID, partnerIDParam(r))
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, partner)
	}
}

func CreatePartner(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		var req domain.PartnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		partner, err := service.CreatePartner(r.Context(), adminID, &req)
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, partner)
	}
}

func UpdatePartner(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		var req domain.PartnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		partner, err := service.UpdatePartner(r.Context(), adminID, partnerIDParam(r), &req)
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, partner)
	}
}

func DeletePartner(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		if err := service.DeletePartner(r.Context(), adminID, partnerIDParam(r)); err != nil {
			handlePartnerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// TogglePartnerStatus alterna a conta entre ativa e suspensa
func TogglePartnerStatus(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		status, err := service.ToggleAccountStatus(r.Context(), adminID, partnerIDParam(r))
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":             partnerIDParam(r),
			"account_status": status,
		})
	}
}

func SetMonthlyRevenue(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		var req domain.ManualRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		partner, err := service.SetMonthlyRevenue(r.Context(), adminID, params.ByName("id"), params.ByName("month"), &req)
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, partner)
	}
}

func ClearMonthlyRevenue(service partnering.PartnerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		partner, err := service.ClearMonthlyRevenue(r.Context(), adminID, params.ByName("id"), params.ByName("month"))
		if err != nil {
			handlePartnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, partner)
	}
}

func partnerIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func handlePartnerError(w http.ResponseWriter, err error) {
	var partnerErr *partnering.PartnerError
	if errors.As(err, &partnerErr) {
		var details any
		if len(partnerErr.Fields) > 0 {
			details = partnerErr.Fields
		}
		apiErrors.WriteError(w, partnerErr.Code, partnerErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, partnering.ErrPartnerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPartnerNotFound, "Parceiro não encontrado", nil)
	default:
		logrus.WithError(err).Error("Erro não mapeado em parceiros")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
