package domain

// TimeSeriesResult é o resultado da busca de série diária já agregada por mês
type TimeSeriesResult struct {
	MonthlyData      MonthlyRevenue
	TotalImpressions int64
	// Notice é preenchido quando a API não devolve itens
	Notice string
}

// CountryBreakdownResult é o ranking de países
type CountryBreakdownResult struct {
	Countries []CountryStat
	Notice    string
}

// ReconcileResult é o status devolvido ao chamador
type ReconcileResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	PartnerName string `json:"partner_name"`
}
