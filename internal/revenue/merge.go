package revenue

import "github.com/vfg2006/partner-revenue-api/internal/domain"

// Merge combina o mapa persistido com os dados recém-buscados da API.
//
// Meses já marcados como recebidos mantêm valores e status e só atualizam
// as impressões. Os demais meses buscados substituem a entrada existente.
// Meses ausentes da busca são preservados. Nenhuma das entradas é alterada.
func Merge(existing, fresh domain.MonthlyRevenue) domain.MonthlyRevenue {
	merged := existing.Clone()

	for month, apiEntry := range fresh {
		current, ok := merged[month]
		if !ok || current.Status != domain.PaymentReceived {
			merged[month] = apiEntry
			continue
		}

		current.Impressions = copyInt64(apiEntry.Impressions)
		current.Source = domain.SourceAPI
		merged[month] = current
	}

	return merged
}

// RecomputeSource devolve a origem adequada para um parceiro sem chave de API
func RecomputeSource(monthly domain.MonthlyRevenue) domain.RevenueSource {
	if len(monthly) > 0 {
		return domain.RevenueSourceManual
	}
	return domain.RevenueSourceNone
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
