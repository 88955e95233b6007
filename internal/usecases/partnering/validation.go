package partnering

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// usar o nome do campo JSON nas mensagens
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func normalizeRequest(req *domain.PartnerRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)
	req.Email = strings.TrimSpace(req.Email)
	req.Address = strings.TrimSpace(req.Address)
	req.Webmoney = strings.TrimSpace(req.Webmoney)
	req.MultiAccountNo = strings.TrimSpace(req.MultiAccountNo)
	req.AdsterraLink = strings.TrimSpace(req.AdsterraLink)
	req.AdsterraEmailLink = strings.TrimSpace(req.AdsterraEmailLink)
	req.AdsterraAPIKey = strings.TrimSpace(req.AdsterraAPIKey)
	req.RevenuePeriod = strings.TrimSpace(req.RevenuePeriod)
}

// validateRequest aplica as tags do validator e as regras da entrada manual
func (s *Service) validateRequest(req *domain.PartnerRequest) *PartnerError {
	var details []ValidationDetail

	if err := s.validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return NewPartnerError(ErrInvalidPartner, apiErrors.ErrInvalidRequest, err.Error())
		}
		for _, fe := range validationErrors {
			details = append(details, ValidationDetail{Field: fe.Field(), Message: validationMessage(fe)})
		}
	}

	if req.RevenueUSD != nil {
		if req.RevenuePeriod == "" {
			details = append(details, ValidationDetail{Field: "revenue_period", Message: "Obrigatório quando há valor de receita"})
		}
		if req.RevenueUSD.IsNegative() {
			details = append(details, ValidationDetail{Field: "revenue_usd", Message: "Deve ser maior ou igual a zero"})
		}
	}

	if req.RevenuePeriod != "" {
		if _, err := domain.ParseMonthKey(req.RevenuePeriod); err != nil {
			details = append(details, ValidationDetail{Field: "revenue_period", Message: "Formato esperado YYYY-MM"})
		}
	}

	if len(details) == 0 {
		return nil
	}

	code := apiErrors.ErrInvalidFormat
	for _, d := range details {
		if strings.HasPrefix(d.Message, "Obrigatório") {
			code = apiErrors.ErrMissingRequiredData
			break
		}
	}

	partnerErr := NewPartnerError(ErrInvalidPartner, code, "dados do parceiro inválidos")
	partnerErr.Fields = details
	return partnerErr
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Obrigatório"
	case "email":
		return "Email inválido"
	case "url":
		return "URL inválida"
	case "max":
		return "Deve ter no máximo " + fe.Param() + " caracteres"
	case "oneof":
		return "Deve ser um de: " + fe.Param()
	default:
		return "Valor inválido"
	}
}
