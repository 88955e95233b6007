package adsterradomain

import (
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Number aceita número ou string numérica. Qualquer outro valor vira zero
// com Valid=false, sem falhar o decode do item.
type Number struct {
	Value decimal.Decimal
	Valid bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	n.Value, n.Valid = decimal.Zero, false

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	n.Value, n.Valid = d, true
	return nil
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Int64 arredonda para o inteiro mais próximo (0.5 para cima) e satura nos
// limites de int64. Contagens fracionárias como "0.9" viram 1.
func (n Number) Int64() int64 {
	rounded := n.Value.Round(0)
	switch {
	case rounded.GreaterThan(maxInt64):
		return math.MaxInt64
	case rounded.LessThan(minInt64):
		return math.MinInt64
	}
	return rounded.IntPart()
}

// StatsResponse é o envelope de /publisher/stats.json
type StatsResponse struct {
	Items   jsoniter.RawMessage `json:"items"`
	Message string              `json:"message"`
}

// DailyItem é uma linha de group_by=date
type DailyItem struct {
	Date       string `json:"date"`
	Revenue    Number `json:"revenue"`
	Impression Number `json:"impression"`
	Clicks     Number `json:"clicks"`
	CTR        Number `json:"ctr"`
}

// CountryItem é uma linha de group_by=country
type CountryItem struct {
	Country    string `json:"country"`
	Revenue    Number `json:"revenue"`
	Impression Number `json:"impression"`
}

// DecodeItems decodifica o array "items" item a item, descartando os que
// não têm o formato esperado. ok=false quando "items" não é um array.
func DecodeItems[T any](raw jsoniter.RawMessage) (items []T, ok bool) {
	var elements []jsoniter.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return nil, false
	}

	items = make([]T, 0, len(elements))
	for _, element := range elements {
		var item T
		if err := json.Unmarshal(element, &item); err != nil {
			logrus.WithError(err).Warn("adsterra: item com formato inesperado ignorado")
			continue
		}
		items = append(items, item)
	}

	return items, true
}
