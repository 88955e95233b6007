package utils

import "time"

// ParseDate aceita "2006-01-02" ou RFC3339 e devolve o instante em UTC.
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err == nil {
		return date.UTC(), nil
	}

	date, rfcErr := time.Parse(time.RFC3339, dateStr)
	if rfcErr != nil {
		return time.Time{}, err
	}

	return date.UTC(), nil
}

// FormatDate formata uma data no padrão aceito pela API da Adsterra.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
