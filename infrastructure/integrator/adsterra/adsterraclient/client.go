package adsterraclient

import (
	"context"
	"net/http"
	"time"

	adsterradomain "github.com/vfg2006/partner-revenue-api/infrastructure/integrator/adsterra/domain"
	"github.com/vfg2006/partner-revenue-api/internal/config"
)

// GroupBy é a dimensão de agrupamento aceita pela API de estatísticas
type GroupBy string

const (
	GroupByDate    GroupBy = "date"
	GroupByCountry GroupBy = "country"
)

// StatsParams são os parâmetros de uma consulta de estatísticas
type StatsParams struct {
	StartDate  time.Time
	FinishDate time.Time
	GroupBy    GroupBy
}

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	GetStats(ctx context.Context, apiKey string, params StatsParams) (*adsterradomain.StatsResponse, error)
}

type AdsterraClient struct {
	httpClient *http.Client
	statsURL   string
}

func NewClient(cfg *config.Config) *AdsterraClient {
	timeout := cfg.Adsterra.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AdsterraClient{
		httpClient: &http.Client{Timeout: timeout},
		statsURL:   cfg.Adsterra.StatsURL,
	}
}

// SetHTTPClient troca o client HTTP usado nas requisições
func (c *AdsterraClient) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}
