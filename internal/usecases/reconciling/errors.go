package reconciling

import (
	"errors"
	"fmt"
)

var (
	ErrPartnerNotFound = errors.New("partner not found")
	ErrLoadPartner     = errors.New("error loading partner")
	// ErrPersistRevenue indica que as buscas terminaram mas a escrita falhou
	ErrPersistRevenue = errors.New("error persisting revenue state")
)

// ReconcileError carrega o código de API e o parceiro envolvido
type ReconcileError struct {
	Err       error
	Code      string
	PartnerID string
	Details   string
}

func (e *ReconcileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

func NewReconcileError(err error, code string, partnerID string, details string) *ReconcileError {
	return &ReconcileError{
		Err:       err,
		Code:      code,
		PartnerID: partnerID,
		Details:   details,
	}
}
