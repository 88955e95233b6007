package revenue

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/pkg/utils"
)

// DailyRecord é uma linha diária já normalizada na borda da API.
// Valores não numéricos chegam aqui como zero.
type DailyRecord struct {
	Date        string
	RevenueUSD  decimal.Decimal
	Impressions int64
	Clicks      int64
	CTR         decimal.Decimal
}

// MonthlyAggregate é a soma dos registros diários de um mês
type MonthlyAggregate struct {
	RevenueUSD  decimal.Decimal
	Impressions int64
	Clicks      int64
	Days        int
}

// AggregateDaily agrupa os registros por mês (UTC). Datas inválidas são descartadas.
func AggregateDaily(records []DailyRecord) map[domain.MonthKey]MonthlyAggregate {
	months := make(map[domain.MonthKey]MonthlyAggregate)

	for _, record := range records {
		date, err := utils.ParseDate(record.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"date":  record.Date,
				"error": err,
			}).Warn("Registro diário com data inválida ignorado")
			continue
		}

		key := domain.NewMonthKey(date)
		agg := months[key]
		agg.RevenueUSD = agg.RevenueUSD.Add(record.RevenueUSD)
		agg.Impressions += record.Impressions
		agg.Clicks += record.Clicks
		agg.Days++
		months[key] = agg
	}

	return months
}
