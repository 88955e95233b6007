package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus é o status administrativo da conta do parceiro
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

// Toggle alterna entre ativo e suspenso
func (s AccountStatus) Toggle() AccountStatus {
	if s == AccountActive {
		return AccountSuspended
	}
	return AccountActive
}

// PartnerRevenueState é a parte do parceiro mantida pela reconciliação
type PartnerRevenueState struct {
	MonthlyRevenue      MonthlyRevenue `json:"monthly_revenue"`
	RevenueSource       RevenueSource  `json:"revenue_source"`
	APITotalImpressions *int64         `json:"api_total_impressions"`
	APICountryBreakdown []CountryStat  `json:"api_country_breakdown"`
	LastAPICheck        *time.Time     `json:"last_api_check"`
	APIErrorMessage     *string        `json:"api_error_message"`
}

type Partner struct {
	ID                string        `json:"id"`
	AdminID           string        `json:"admin_id"`
	Name              string        `json:"name"`
	Mobile            string        `json:"mobile"`
	Email             string        `json:"email"`
	Address           string        `json:"address"`
	Webmoney          string        `json:"webmoney"`
	MultiAccountNo    string        `json:"multi_account_no"`
	AdsterraLink      string        `json:"adsterra_link"`
	AdsterraEmailLink string        `json:"adsterra_email_link"`
	AdsterraAPIKey    string        `json:"-"`
	AccountCreation   *time.Time    `json:"account_creation"`
	AccountStart      *time.Time    `json:"account_start"`
	AccountStatus     AccountStatus `json:"account_status"`
	PartnerRevenueState
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAPIKey indica se o parceiro pode ser reconciliado pela API
func (p *Partner) HasAPIKey() bool {
	return p.AdsterraAPIKey != ""
}

// MaskAPIKey mantém só os últimos 4 caracteres da chave
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	runes := []rune(key)
	if len(runes) <= 4 {
		return "****"
	}
	return "****" + string(runes[len(runes)-4:])
}

// PartnerWithSummary é o parceiro acompanhado da receita efetiva.
// A chave da Adsterra nunca sai na resposta, apenas a versão mascarada.
type PartnerWithSummary struct {
	*Partner
	APIKeyConfigured bool           `json:"has_api_key"`
	MaskedAPIKey     string         `json:"adsterra_api_key_masked,omitempty"`
	Summary          RevenueSummary `json:"summary"`
}

// NewPartnerWithSummary monta a resposta a partir do parceiro e do resumo
func NewPartnerWithSummary(partner *Partner, summary RevenueSummary) *PartnerWithSummary {
	return &PartnerWithSummary{
		Partner:          partner,
		APIKeyConfigured: partner.HasAPIKey(),
		MaskedAPIKey:     MaskAPIKey(partner.AdsterraAPIKey),
		Summary:          summary,
	}
}

// PartnerRequest é o corpo de criação e edição de parceiro
type PartnerRequest struct {
	Name              string     `json:"name" validate:"required,max=200"`
	Mobile            string     `json:"mobile" validate:"required,max=50"`
	Email             string     `json:"email" validate:"required,email"`
	Address           string     `json:"address"`
	Webmoney          string     `json:"webmoney"`
	MultiAccountNo    string     `json:"multi_account_no"`
	AdsterraLink      string     `json:"adsterra_link" validate:"omitempty,url"`
	AdsterraEmailLink string     `json:"adsterra_email_link"`
	AdsterraAPIKey    string     `json:"adsterra_api_key"`
	AccountCreation   *time.Time `json:"account_creation"`
	AccountStart      *time.Time `json:"account_start"`

	// na edição, chave vazia mantém a atual; a remoção é explícita
	ClearAPIKey bool `json:"clear_adsterra_api_key"`

	// entrada manual opcional
	RevenuePeriod string           `json:"revenue_period"`
	RevenueUSD    *decimal.Decimal `json:"revenue_usd"`
	PaymentStatus PaymentStatus    `json:"payment_status" validate:"omitempty,oneof=pending received not_received"`
}

// ManualRevenueRequest grava uma entrada manual em um mês
type ManualRevenueRequest struct {
	USD    decimal.Decimal `json:"usd"`
	Status PaymentStatus   `json:"status" validate:"omitempty,oneof=pending received not_received"`
}

// RevenueStateUpdate é a escrita única de uma reconciliação.
// Campos nil permanecem inalterados, exceto APIErrorMessage (nil limpa).
type RevenueStateUpdate struct {
	MonthlyRevenue      MonthlyRevenue
	APITotalImpressions *int64
	SetCountryBreakdown bool
	APICountryBreakdown []CountryStat
	RevenueSource       RevenueSource
	APIErrorMessage     *string
	LastAPICheck        time.Time
}

// PartnerRef identifica um parceiro com chave de API para a sincronização
type PartnerRef struct {
	ID      string
	AdminID string
	Name    string
}
