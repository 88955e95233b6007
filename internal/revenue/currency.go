package revenue

import "github.com/shopspring/decimal"

// DefaultPKRRate é a taxa usada quando nenhuma é configurada
var DefaultPKRRate = decimal.NewFromInt(220)

// Converter converte USD para a moeda secundária (PKR) com taxa fixa
type Converter struct {
	rate decimal.Decimal
}

func NewConverter(rate decimal.Decimal) Converter {
	return Converter{rate: rate}
}

// Rate devolve a taxa configurada
func (c Converter) Rate() decimal.Decimal {
	return c.rate
}

// ToSecondary devolve usd * taxa, sem arredondamento
func (c Converter) ToSecondary(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.rate)
}
