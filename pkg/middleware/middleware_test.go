package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
		expectedAdmin  string
	}{
		{
			name:           "rota pública dispensa token",
			path:           "/v1/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sem cabeçalho",
			path:           "/v1/partners",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "cabeçalho sem Bearer",
			path:           "/v1/partners",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "sessão expirada",
			path:   "/v1/partners",
			header: "Bearer expired",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken(gomock.Any(), "expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido expõe o admin",
			path:   "/v1/partners",
			header: "Bearer good",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken(gomock.Any(), "good").
					Return(&domain.Claims{AdminID: "admin-1", SessionID: "s1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedAdmin:  "admin-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			var adminID string
			handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				adminID = CurrentAdminID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedAdmin, adminID)
		})
	}
}

func TestCurrentAdminID_WithoutClaims(t *testing.T) {
	assert.Empty(t, CurrentAdminID(context.Background()))

	ctx := WithAdminClaims(context.Background(), &domain.Claims{AdminID: "admin-9"})
	assert.Equal(t, "admin-9", CurrentAdminID(ctx))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/partners", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestCors(t *testing.T) {
	handler := Cors([]string{" http://localhost:3000/ ", ""})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/partners", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/partners", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
