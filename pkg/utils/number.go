package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda valores monetários para duas casas decimais.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// UseNumericMoneyJSON faz decimal.Decimal ser serializado como número JSON,
// formato das linhas legadas no jsonb e o esperado pelo painel. A opção é
// global da biblioteca, então só os binários (api e script) a ligam no início.
func UseNumericMoneyJSON() {
	decimal.MarshalJSONWithoutQuotes = true
}
