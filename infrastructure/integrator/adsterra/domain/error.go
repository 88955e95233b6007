package adsterradomain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorResponse é o corpo de erro da API da Adsterra
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIError é devolvido pelo client para respostas não-2xx e falhas de transporte.
// StatusCode é zero quando a requisição nem chegou a ter resposta.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("erro de rede: %s", e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

const maxRawErrorLength = 200

// ParseErrorMessage extrai a mensagem de erro do corpo, caindo para o texto cru
func ParseErrorMessage(body []byte, fallback string) string {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		if resp.Message != "" {
			return resp.Message
		}
		if resp.Error != "" {
			return resp.Error
		}
	}

	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return fallback
	}
	if len(raw) > maxRawErrorLength {
		cut := maxRawErrorLength
		// não partir um caractere multibyte no meio
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}
	// o texto vai para uma coluna TEXT, que rejeita UTF-8 inválido
	return strings.ToValidUTF8(raw, "")
}
