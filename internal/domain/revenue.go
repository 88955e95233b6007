package domain

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthKey identifica um mês no formato "YYYY-MM"
type MonthKey string

// NewMonthKey devolve o mês (em UTC) do instante informado
func NewMonthKey(t time.Time) MonthKey {
	return MonthKey(t.UTC().Format("2006-01"))
}

// ParseMonthKey valida uma string no formato "YYYY-MM"
func ParseMonthKey(s string) (MonthKey, error) {
	if !monthKeyPattern.MatchString(s) {
		return "", fmt.Errorf("período inválido %q: esperado YYYY-MM", s)
	}
	return MonthKey(s), nil
}

// PaymentStatus indica se o pagamento do mês foi recebido
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentReceived    PaymentStatus = "received"
	PaymentNotReceived PaymentStatus = "not_received"
)

// Valid verifica se o status pertence ao enum
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentReceived, PaymentNotReceived:
		return true
	}
	return false
}

// SourceType indica a origem de uma entrada mensal
type SourceType string

const (
	SourceManual SourceType = "manual"
	SourceAPI    SourceType = "api"
)

// MonthlyRevenueEntry é a receita de um parceiro em um mês
type MonthlyRevenueEntry struct {
	USD         decimal.Decimal `json:"usd"`
	PKR         decimal.Decimal `json:"pkr"`
	Status      PaymentStatus   `json:"status"`
	Source      SourceType      `json:"source"`
	Impressions *int64          `json:"impressions,omitempty"`
}

// MonthlyRevenue mapeia mês -> entrada
type MonthlyRevenue map[MonthKey]MonthlyRevenueEntry

// Clone devolve uma cópia rasa, nunca nil
func (m MonthlyRevenue) Clone() MonthlyRevenue {
	out := make(MonthlyRevenue, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys devolve os meses em ordem cronológica
func (m MonthlyRevenue) Keys() []MonthKey {
	keys := make([]MonthKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// RevenueSource é o estado de origem da receita no nível do parceiro
type RevenueSource string

const (
	RevenueSourceNone       RevenueSource = ""
	RevenueSourceManual     RevenueSource = "manual"
	RevenueSourceAPI        RevenueSource = "api"
	RevenueSourceAPISynced  RevenueSource = "api_synced"
	RevenueSourceAPILoading RevenueSource = "api_loading"
	RevenueSourceAPIError   RevenueSource = "api_error"
)

// CountryStat é uma linha do ranking de países
type CountryStat struct {
	CountryCode string          `json:"countryCode"`
	Impressions int64           `json:"impressions"`
	RevenueUSD  decimal.Decimal `json:"revenue"`
}

// RevenueSummary é a receita efetiva calculada na leitura
type RevenueSummary struct {
	TotalUSD      decimal.Decimal `json:"total_usd"`
	TotalPKR      decimal.Decimal `json:"total_pkr"`
	ManualUSD     decimal.Decimal `json:"manual_usd"`
	APIUSD        decimal.Decimal `json:"api_usd"`
	APIPKR        decimal.Decimal `json:"api_pkr"`
	DisplaySource string          `json:"display_source"`
	FirstPeriod   MonthKey        `json:"first_period,omitempty"`
	LastPeriod    MonthKey        `json:"last_period,omitempty"`
}
