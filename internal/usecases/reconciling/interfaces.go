package reconciling

import (
	"context"

	"github.com/vfg2006/partner-revenue-api/internal/domain"
)

// RevenueFetcher busca os dados de receita de um parceiro na rede de anúncios
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type RevenueFetcher interface {
	// FetchTimeSeries devolve a receita agregada por mês da janela de consulta
	FetchTimeSeries(ctx context.Context, apiKey string) (*domain.TimeSeriesResult, error)

	// FetchCountryBreakdown devolve os países com mais impressões na janela
	FetchCountryBreakdown(ctx context.Context, apiKey string) (*domain.CountryBreakdownResult, error)
}

// Reconciler executa a reconciliação de receita de um parceiro
type Reconciler interface {
	ReconcileRevenue(ctx context.Context, adminID, partnerID string) (*domain.ReconcileResult, error)
}
