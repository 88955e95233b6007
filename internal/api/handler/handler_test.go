package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-revenue-api/internal/api/handler/mocks"
	"github.com/vfg2006/partner-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering"
	partnermocks "github.com/vfg2006/partner-revenue-api/internal/usecases/partnering/mocks"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling"
	reconcilingmocks "github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/partner-revenue-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

const testAdmin = "admin-1"

// serve monta o router com as rotas e injeta o admin autenticado
func serve(routes []router.Route, adminID, method, path, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if adminID != "" {
		req = req.WithContext(middleware.WithAdminClaims(req.Context(), &domain.Claims{AdminID: adminID, SessionID: "s1"}))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func samplePartner() *domain.PartnerWithSummary {
	return &domain.PartnerWithSummary{
		Partner: &domain.Partner{ID: "P1", AdminID: testAdmin, Name: "Ali", AccountStatus: domain.AccountActive},
		Summary: domain.RevenueSummary{TotalUSD: decimal.NewFromInt(10), DisplaySource: "Manual"},
	}
}

func TestGetPartner_HidesAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := partnermocks.NewMockPartnerService(ctrl)

	partner := &domain.Partner{ID: "P1", AdminID: testAdmin, Name: "Ali", AdsterraAPIKey: "secret-key-9876"}
	service.EXPECT().GetPartner(gomock.Any(), testAdmin, "P1").
		Return(domain.NewPartnerWithSummary(partner, domain.RevenueSummary{}), nil)

	rec := serve(Partners(service), testAdmin, http.MethodGet, "/v1/partners/P1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-key")
	assert.NotContains(t, rec.Body.String(), `"adsterra_api_key":`)
	assert.Contains(t, rec.Body.String(), `"has_api_key":true`)
	assert.Contains(t, rec.Body.String(), `"adsterra_api_key_masked":"****9876"`)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(fakePinger{}), "", http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(Healthcheck(fakePinger{err: errors.New("conexão recusada")}), "", http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestAuthenticationHandlers(t *testing.T) {
	t.Run("login com PIN válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().LoginWithPIN(gomock.Any(), "123456").
			Return(&domain.LoginResponse{Token: "jwt", AdminID: testAdmin}, nil)

		rec := serve(Authentication(auth), "", http.MethodPost, "/v1/login", `{"pin":"123456"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body domain.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "jwt", body.Token)
	})

	t.Run("login com PIN incorreto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().LoginWithPIN(gomock.Any(), "000000").
			Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "PIN incorreto"))

		rec := serve(Authentication(auth), "", http.MethodPost, "/v1/login", `{"pin":"000000"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
	})

	t.Run("login com corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := serve(Authentication(authmocks.NewMockAuthenticator(ctrl)), "", http.MethodPost, "/v1/login", `{pin`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("logout encerra a sessão do admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().ExpireSession(gomock.Any(), testAdmin).Return(nil)

		rec := serve(Authentication(auth), testAdmin, http.MethodPost, "/v1/logout", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("sessão atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := serve(Authentication(authmocks.NewMockAuthenticator(ctrl)), testAdmin, http.MethodGet, "/v1/session", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testAdmin)
	})
}

func TestPartnerHandlers(t *testing.T) {
	tests := []struct {
		name           string
		adminID        string
		method         string
		path           string
		body           string
		setup          func(service *partnermocks.MockPartnerService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "lista parceiros do admin",
			method: http.MethodGet, path: "/v1/partners", adminID: testAdmin,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().ListPartners(gomock.Any(), testAdmin).
					Return([]*domain.PartnerWithSummary{samplePartner()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "sem admin autenticado",
			method: http.MethodGet, path: "/v1/partners",
			setup:          func(*partnermocks.MockPartnerService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "cria parceiro",
			method: http.MethodPost, path: "/v1/partners", adminID: testAdmin,
			body: `{"name":"Ali","mobile":"1","email":"ali@example.com","revenue_period":"2024-01","revenue_usd":12.5}`,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().CreatePartner(gomock.Any(), testAdmin, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req *domain.PartnerRequest) (*domain.PartnerWithSummary, error) {
						assert.Equal(t, "2024-01", req.RevenuePeriod)
						assert.True(t, req.RevenueUSD.Equal(decimal.RequireFromString("12.5")))
						return samplePartner(), nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "validação devolve os campos",
			method: http.MethodPost, path: "/v1/partners", adminID: testAdmin,
			body: `{"name":""}`,
			setup: func(service *partnermocks.MockPartnerService) {
				partnerErr := partnering.NewPartnerError(partnering.ErrInvalidPartner, apiErrors.ErrMissingRequiredData, "dados do parceiro inválidos")
				partnerErr.Fields = []partnering.ValidationDetail{{Field: "name", Message: "Obrigatório"}}
				service.EXPECT().CreatePartner(gomock.Any(), testAdmin, gomock.Any()).Return(nil, partnerErr)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "email duplicado",
			method: http.MethodPut, path: "/v1/partners/P1", adminID: testAdmin,
			body: `{"name":"Ali","mobile":"1","email":"ali@example.com"}`,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().UpdatePartner(gomock.Any(), testAdmin, "P1", gomock.Any()).
					Return(nil, partnering.NewPartnerErrorWithID(partnering.ErrDuplicatedEmail, apiErrors.ErrDuplicatedEmail, "P1", ""))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrDuplicatedEmail,
		},
		{
			name:   "parceiro de outro admin",
			method: http.MethodGet, path: "/v1/partners/P9", adminID: testAdmin,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().GetPartner(gomock.Any(), testAdmin, "P9").
					Return(nil, partnering.NewPartnerErrorWithID(partnering.ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, "P9", ""))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrPartnerNotFound,
		},
		{
			name:   "remove parceiro",
			method: http.MethodDelete, path: "/v1/partners/P1", adminID: testAdmin,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().DeletePartner(gomock.Any(), testAdmin, "P1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "alterna status",
			method: http.MethodPost, path: "/v1/partners/P1/status", adminID: testAdmin,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().ToggleAccountStatus(gomock.Any(), testAdmin, "P1").Return(domain.AccountSuspended, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "grava receita manual do mês",
			method: http.MethodPut, path: "/v1/partners/P1/revenue/2024-02", adminID: testAdmin,
			body: `{"usd":40,"status":"received"}`,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().SetMonthlyRevenue(gomock.Any(), testAdmin, "P1", "2024-02", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, req *domain.ManualRevenueRequest) (*domain.PartnerWithSummary, error) {
						assert.Equal(t, domain.PaymentReceived, req.Status)
						return samplePartner(), nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "remove receita do mês",
			method: http.MethodDelete, path: "/v1/partners/P1/revenue/2024-02", adminID: testAdmin,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().ClearMonthlyRevenue(gomock.Any(), testAdmin, "P1", "2024-02").Return(samplePartner(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "erro inesperado",
			method: http.MethodGet, path: "/v1/partners", adminID: testAdmin,
			setup: func(service *partnermocks.MockPartnerService) {
				service.EXPECT().ListPartners(gomock.Any(), testAdmin).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := partnermocks.NewMockPartnerService(ctrl)
			tt.setup(service)

			rec := serve(Partners(service), tt.adminID, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestRevenueHandlers(t *testing.T) {
	t.Run("busca síncrona devolve o resultado mesmo com falha de API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reconciler := reconcilingmocks.NewMockReconciler(ctrl)
		reconciler.EXPECT().ReconcileRevenue(gomock.Any(), testAdmin, "P1").
			Return(&domain.ReconcileResult{Success: false, Message: "Erro na receita mensal: HTTP 401: Invalid API key.", PartnerName: "Ali"}, nil)

		rec := serve(Revenue(reconciler, mocks.NewMockRevenueRefresher(ctrl)), testAdmin, http.MethodPost, "/v1/partners/P1/revenue/fetch", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var body domain.ReconcileResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Ali", body.PartnerName)
	})

	t.Run("busca de parceiro inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reconciler := reconcilingmocks.NewMockReconciler(ctrl)
		reconciler.EXPECT().ReconcileRevenue(gomock.Any(), testAdmin, "P9").
			Return(nil, reconciling.NewReconcileError(reconciling.ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, "P9", ""))

		rec := serve(Revenue(reconciler, mocks.NewMockRevenueRefresher(ctrl)), testAdmin, http.MethodPost, "/v1/partners/P9/revenue/fetch", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("atualização de todos responde 202", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		refresher := mocks.NewMockRevenueRefresher(ctrl)
		refresher.EXPECT().TriggerRefreshAll(gomock.Any(), testAdmin).Return(4, nil)

		rec := serve(Revenue(reconcilingmocks.NewMockReconciler(ctrl), refresher), testAdmin, http.MethodPost, "/v1/revenue/refresh", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), `"partners":4`)
	})

	t.Run("falha ao listar parceiros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		refresher := mocks.NewMockRevenueRefresher(ctrl)
		refresher.EXPECT().TriggerRefreshAll(gomock.Any(), testAdmin).Return(0, errors.New("db fora"))

		rec := serve(Revenue(reconcilingmocks.NewMockReconciler(ctrl), refresher), testAdmin, http.MethodPost, "/v1/revenue/refresh", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
	})

	t.Run("status da sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		refresher := mocks.NewMockRevenueRefresher(ctrl)
		refresher.EXPECT().GetStatus().Return(map[string]any{"in_flight": 2, "sync_enabled": true})

		rec := serve(Revenue(reconcilingmocks.NewMockReconciler(ctrl), refresher), testAdmin, http.MethodGet, "/v1/revenue/sync/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"in_flight":2`)
	})
}

func TestUnknownRoute(t *testing.T) {
	rec := serve(Healthcheck(nil), "", http.MethodGet, "/v1/nada", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}
