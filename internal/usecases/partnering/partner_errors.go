package partnering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de parceiros
var (
	// Erros de validação
	ErrInvalidPartner  = errors.New("invalid partner data")
	ErrInvalidPeriod   = errors.New("invalid revenue period")
	ErrInvalidAmount   = errors.New("invalid revenue amount")
	ErrDuplicatedEmail = errors.New("email already registered")

	ErrPartnerNotFound = errors.New("partner not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchPartners     = errors.New("error fetching partners from database")

	ErrGenerateID = errors.New("error generating partner ID")
)

// ValidationDetail descreve um campo rejeitado
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PartnerError é um erro com contexto adicional para parceiros
type PartnerError struct {
	Err       error              // Erro base
	Code      string             // Código de erro para API
	PartnerID string             // ID do parceiro envolvido (quando aplicável)
	Details   string             // Detalhes adicionais
	Fields    []ValidationDetail // Campos inválidos
}

// Error implementa a interface error
func (e *PartnerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PartnerError) Unwrap() error {
	return e.Err
}

// NewPartnerError cria um novo PartnerError
func NewPartnerError(err error, code string, details string) *PartnerError {
	return &PartnerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewPartnerErrorWithID cria um novo PartnerError com ID do parceiro
func NewPartnerErrorWithID(err error, code string, partnerID string, details string) *PartnerError {
	return &PartnerError{
		Err:       err,
		Code:      code,
		PartnerID: partnerID,
		Details:   details,
	}
}
