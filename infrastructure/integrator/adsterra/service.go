package adsterra

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/integrator/adsterra/adsterraclient"
	adsterradomain "github.com/vfg2006/partner-revenue-api/infrastructure/integrator/adsterra/domain"
	"github.com/vfg2006/partner-revenue-api/internal/config"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/revenue"
	"github.com/vfg2006/partner-revenue-api/pkg/utils"
)

const (
	defaultLookbackDays = 365
	defaultTopCountries = 5

	noDailyItemsNotice   = "Nenhum item diário retornado pela Adsterra."
	noCountryItemsNotice = "Nenhum item por país retornado pela Adsterra."
)

// Operation identifica qual consulta falhou
type Operation string

const (
	OperationTimeSeries Operation = "time_series"
	OperationCountry    Operation = "country"
)

// FetchError é o erro das buscas na Adsterra
type FetchError struct {
	Operation  Operation
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("erro de rede: %s", e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type AdsterraIntegrator struct {
	client       adsterraclient.Client
	converter    revenue.Converter
	lookbackDays int
	topCountries int
	now          func() time.Time
}

func New(cfg *config.Config, client adsterraclient.Client, converter revenue.Converter) *AdsterraIntegrator {
	lookback := cfg.Adsterra.LookbackDays
	if lookback <= 0 {
		lookback = defaultLookbackDays
	}

	top := cfg.Adsterra.TopCountries
	if top <= 0 {
		top = defaultTopCountries
	}

	return &AdsterraIntegrator{
		client:       client,
		converter:    converter,
		lookbackDays: lookback,
		topCountries: top,
		now:          time.Now,
	}
}

// window devolve os lookbackDays dias terminando ontem (UTC)
func (s *AdsterraIntegrator) window() (time.Time, time.Time) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -s.lookbackDays), today.AddDate(0, 0, -1)
}

// FetchTimeSeries busca a série diária e devolve a receita agregada por mês
func (s *AdsterraIntegrator) FetchTimeSeries(ctx context.Context, apiKey string) (*domain.TimeSeriesResult, error) {
	start, finish := s.window()

	resp, err := s.client.GetStats(ctx, apiKey, adsterraclient.StatsParams{
		StartDate:  start,
		FinishDate: finish,
		GroupBy:    adsterraclient.GroupByDate,
	})
	if err != nil {
		return nil, newFetchError(OperationTimeSeries, err)
	}

	items, ok := adsterradomain.DecodeItems[adsterradomain.DailyItem](resp.Items)
	if !ok || len(items) == 0 {
		return &domain.TimeSeriesResult{
			MonthlyData: domain.MonthlyRevenue{},
			Notice:      noticeOrDefault(resp.Message, noDailyItemsNotice),
		}, nil
	}

	records := make([]revenue.DailyRecord, 0, len(items))
	for _, item := range items {
		records = append(records, revenue.DailyRecord{
			Date:        item.Date,
			RevenueUSD:  item.Revenue.Value,
			Impressions: item.Impression.Int64(),
			Clicks:      item.Clicks.Int64(),
			CTR:         item.CTR.Value,
		})
	}

	result := &domain.TimeSeriesResult{
		MonthlyData: domain.MonthlyRevenue{},
		Notice:      resp.Message,
	}
	for month, agg := range revenue.AggregateDaily(records) {
		impressions := agg.Impressions
		result.MonthlyData[month] = domain.MonthlyRevenueEntry{
			USD:         utils.RoundMoney(agg.RevenueUSD),
			PKR:         utils.RoundMoney(s.converter.ToSecondary(agg.RevenueUSD)),
			Status:      domain.PaymentPending,
			Source:      domain.SourceAPI,
			Impressions: &impressions,
		}
		result.TotalImpressions += impressions
	}

	logrus.WithFields(logrus.Fields{
		"items":  len(items),
		"months": len(result.MonthlyData),
	}).Debug("adsterra: série diária agregada")

	return result, nil
}

// FetchCountryBreakdown busca as estatísticas por país e devolve os maiores por impressões
func (s *AdsterraIntegrator) FetchCountryBreakdown(ctx context.Context, apiKey string) (*domain.CountryBreakdownResult, error) {
	start, finish := s.window()

	resp, err := s.client.GetStats(ctx, apiKey, adsterraclient.StatsParams{
		StartDate:  start,
		FinishDate: finish,
		GroupBy:    adsterraclient.GroupByCountry,
	})
	if err != nil {
		return nil, newFetchError(OperationCountry, err)
	}

	items, ok := adsterradomain.DecodeItems[adsterradomain.CountryItem](resp.Items)
	if !ok || len(items) == 0 {
		return &domain.CountryBreakdownResult{
			Countries: []domain.CountryStat{},
			Notice:    noticeOrDefault(resp.Message, noCountryItemsNotice),
		}, nil
	}

	countries := make([]domain.CountryStat, 0, len(items))
	for _, item := range items {
		if !item.Impression.Valid || item.Impression.Int64() <= 0 {
			continue
		}

		revenueUSD := decimal.Zero
		if item.Revenue.Valid {
			revenueUSD = utils.RoundMoney(item.Revenue.Value)
		}

		countries = append(countries, domain.CountryStat{
			CountryCode: item.Country,
			Impressions: item.Impression.Int64(),
			RevenueUSD:  revenueUSD,
		})
	}

	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].Impressions > countries[j].Impressions
	})

	if len(countries) > s.topCountries {
		countries = countries[:s.topCountries]
	}

	return &domain.CountryBreakdownResult{
		Countries: countries,
		Notice:    resp.Message,
	}, nil
}

func newFetchError(op Operation, err error) *FetchError {
	fetchErr := &FetchError{Operation: op, Message: err.Error(), Err: err}

	var apiErr *adsterradomain.APIError
	if errors.As(err, &apiErr) {
		fetchErr.StatusCode = apiErr.StatusCode
		fetchErr.Message = apiErr.Message
	}

	logrus.WithFields(logrus.Fields{
		"operation":   op,
		"status_code": fetchErr.StatusCode,
		"error":       fetchErr.Message,
	}).Warn("adsterra: falha na consulta de estatísticas")

	return fetchErr
}

func noticeOrDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
