package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
)

func TestSummarize(t *testing.T) {
	conv := NewConverter(DefaultPKRRate)

	tests := []struct {
		name          string
		partner       *domain.Partner
		totalUSD      string
		totalPKR      string
		manualUSD     string
		apiUSD        string
		displaySource string
		first, last   domain.MonthKey
	}{
		{
			name:          "parceiro nil",
			totalUSD:      "0",
			totalPKR:      "0",
			manualUSD:     "0",
			apiUSD:        "0",
			displaySource: "N/A",
		},
		{
			name: "misto",
			partner: &domain.Partner{PartnerRevenueState: domain.PartnerRevenueState{
				MonthlyRevenue: domain.MonthlyRevenue{
					"2024-01": {USD: decimal.NewFromInt(10), PKR: decimal.NewFromInt(2200), Source: domain.SourceAPI},
					"2024-02": {USD: decimal.NewFromInt(5), Source: domain.SourceManual},
					"2024-03": {USD: decimal.Zero, Source: domain.SourceAPI},
				},
			}},
			totalUSD:      "15",
			totalPKR:      "3300",
			manualUSD:     "5",
			apiUSD:        "10",
			displaySource: "Mixed",
			first:         "2024-01",
			last:          "2024-02",
		},
		{
			name: "somente api",
			partner: &domain.Partner{PartnerRevenueState: domain.PartnerRevenueState{
				RevenueSource: domain.RevenueSourceAPISynced,
				MonthlyRevenue: domain.MonthlyRevenue{
					"2024-05": {USD: decimal.NewFromInt(1), PKR: decimal.NewFromInt(220), Source: domain.SourceAPI},
				},
			}},
			totalUSD:      "1",
			totalPKR:      "220",
			manualUSD:     "0",
			apiUSD:        "1",
			displaySource: "API",
			first:         "2024-05",
			last:          "2024-05",
		},
		{
			name: "erro de api sobrescreve",
			partner: &domain.Partner{PartnerRevenueState: domain.PartnerRevenueState{
				RevenueSource: domain.RevenueSourceAPIError,
				MonthlyRevenue: domain.MonthlyRevenue{
					"2024-05": {USD: decimal.NewFromInt(2), PKR: decimal.NewFromInt(440), Source: domain.SourceManual},
				},
			}},
			totalUSD:      "2",
			totalPKR:      "440",
			manualUSD:     "2",
			apiUSD:        "0",
			displaySource: "API Error",
			first:         "2024-05",
			last:          "2024-05",
		},
		{
			name: "carregando",
			partner: &domain.Partner{PartnerRevenueState: domain.PartnerRevenueState{
				RevenueSource: domain.RevenueSourceAPILoading,
			}},
			totalUSD:      "0",
			totalPKR:      "0",
			manualUSD:     "0",
			apiUSD:        "0",
			displaySource: "API Loading",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.partner, conv)

			assert.True(t, got.TotalUSD.Equal(decimal.RequireFromString(tt.totalUSD)), "total usd %s", got.TotalUSD)
			assert.True(t, got.TotalPKR.Equal(decimal.RequireFromString(tt.totalPKR)), "total pkr %s", got.TotalPKR)
			assert.True(t, got.ManualUSD.Equal(decimal.RequireFromString(tt.manualUSD)), "manual %s", got.ManualUSD)
			assert.True(t, got.APIUSD.Equal(decimal.RequireFromString(tt.apiUSD)), "api %s", got.APIUSD)
			assert.Equal(t, tt.displaySource, got.DisplaySource)
			assert.Equal(t, tt.first, got.FirstPeriod)
			assert.Equal(t, tt.last, got.LastPeriod)
		})
	}
}
