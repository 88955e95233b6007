package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConverterToSecondary(t *testing.T) {
	conv := NewConverter(DefaultPKRRate)

	tests := []struct {
		name     string
		usd      string
		expected string
	}{
		{name: "zero", usd: "0", expected: "0"},
		{name: "inteiro", usd: "10", expected: "2200"},
		{name: "fração", usd: "1.234", expected: "271.48"},
		{name: "negativo passa direto", usd: "-1", expected: "-220"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conv.ToSecondary(decimal.RequireFromString(tt.usd))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}
