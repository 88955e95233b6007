package revenue

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
)

const (
	displayAPI        = "API"
	displayManual     = "Manual"
	displayMixed      = "Mixed"
	displayAPILoading = "API Loading"
	displayAPIError   = "API Error"
	displayNone       = "N/A"
)

// Summarize calcula a receita efetiva do parceiro a partir do mapa mensal.
// Só meses com USD positivo entram na soma.
func Summarize(partner *domain.Partner, conv Converter) domain.RevenueSummary {
	summary := domain.RevenueSummary{
		TotalUSD:      decimal.Zero,
		TotalPKR:      decimal.Zero,
		ManualUSD:     decimal.Zero,
		APIUSD:        decimal.Zero,
		APIPKR:        decimal.Zero,
		DisplaySource: displayNone,
	}
	if partner == nil {
		return summary
	}

	var hasAPI, hasManual bool
	for _, month := range partner.MonthlyRevenue.Keys() {
		entry := partner.MonthlyRevenue[month]
		if !entry.USD.IsPositive() {
			continue
		}

		pkr := entry.PKR
		if pkr.IsZero() {
			pkr = conv.ToSecondary(entry.USD)
		}

		summary.TotalUSD = summary.TotalUSD.Add(entry.USD)
		summary.TotalPKR = summary.TotalPKR.Add(pkr)

		if entry.Source == domain.SourceAPI {
			summary.APIUSD = summary.APIUSD.Add(entry.USD)
			summary.APIPKR = summary.APIPKR.Add(pkr)
			hasAPI = true
		} else {
			summary.ManualUSD = summary.ManualUSD.Add(entry.USD)
			hasManual = true
		}

		if summary.FirstPeriod == "" {
			summary.FirstPeriod = month
		}
		summary.LastPeriod = month
	}

	switch {
	case hasAPI && hasManual:
		summary.DisplaySource = displayMixed
	case hasAPI:
		summary.DisplaySource = displayAPI
	case hasManual:
		summary.DisplaySource = displayManual
	}

	switch partner.RevenueSource {
	case domain.RevenueSourceAPILoading:
		summary.DisplaySource = displayAPILoading
	case domain.RevenueSourceAPIError:
		summary.DisplaySource = displayAPIError
	}

	return summary
}
