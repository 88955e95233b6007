package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering/mocks"
	"go.uber.org/mock/gomock"
)

func TestParsePartnersCSV(t *testing.T) {
	input := `email,name,mobile,adsterra_api_key,revenue_period,revenue_usd,payment_status
ali@example.com, Ali ,0300,key-1,2024-01,12.50,received
sara@example.com,Sara,0301,,,,
`

	rows, err := parsePartnersCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "Ali", first.Request.Name)
	assert.Equal(t, "key-1", first.Request.AdsterraAPIKey)
	assert.Equal(t, "2024-01", first.Request.RevenuePeriod)
	assert.Equal(t, domain.PaymentReceived, first.Request.PaymentStatus)
	require.NotNil(t, first.Request.RevenueUSD)
	assert.True(t, first.Request.RevenueUSD.Equal(decimal.RequireFromString("12.5")))

	second := rows[1]
	assert.Equal(t, "Sara", second.Request.Name)
	assert.Nil(t, second.Request.RevenueUSD)
	assert.Empty(t, second.Request.RevenuePeriod)
}

func TestParsePartnersCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   string
	}{
		{name: "vazio", input: "", err: "CSV vazio"},
		{name: "sem coluna email", input: "name,mobile\nAli,0300\n", err: "email"},
		{name: "valor inválido", input: "name,mobile,email,revenue_usd\nAli,0300,a@b.com,doze\n", err: "linha 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePartnersCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestImportPartners(t *testing.T) {
	rows := []importRow{
		{Line: 2, Request: &domain.PartnerRequest{Name: "Ali", Email: "ali@example.com"}},
		{Line: 3, Request: &domain.PartnerRequest{Name: "Sara", Email: "sara@example.com"}},
	}

	t.Run("importa todas as linhas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockPartnerService(ctrl)
		service.EXPECT().CreatePartner(gomock.Any(), "admin-1", gomock.Any()).
			Return(&domain.PartnerWithSummary{Partner: &domain.Partner{ID: "P1"}}, nil).Times(2)

		assert.NoError(t, importPartners(context.Background(), service, "admin-1", rows))
	})

	t.Run("para na primeira falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockPartnerService(ctrl)
		service.EXPECT().CreatePartner(gomock.Any(), "admin-1", rows[0].Request).
			Return(nil, errors.New("email duplicado"))

		err := importPartners(context.Background(), service, "admin-1", rows)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "linha 2")
		assert.Contains(t, err.Error(), "ali@example.com")
	})
}
