package partnering

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/repository"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/revenue"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/partner-revenue-api/pkg/utils"
)

// Dispatcher enfileira a reconciliação de um parceiro em segundo plano
//
//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Dispatcher interface {
	SubmitPartner(adminID, partnerID string) bool
}

type PartnerService interface {
	ListPartners(ctx context.Context, adminID string) ([]*domain.PartnerWithSummary, error)
	GetPartner(ctx context.Context, adminID, partnerID string) (*domain.PartnerWithSummary, error)
	CreatePartner(ctx context.Context, adminID string, req *domain.PartnerRequest) (*domain.PartnerWithSummary, error)
	UpdatePartner(ctx context.Context, adminID, partnerID string, req *domain.PartnerRequest) (*domain.PartnerWithSummary, error)
	DeletePartner(ctx context.Context, adminID, partnerID string) error
	ToggleAccountStatus(ctx context.Context, adminID, partnerID string) (domain.AccountStatus, error)
	SetMonthlyRevenue(ctx context.Context, adminID, partnerID, period string, req *domain.ManualRevenueRequest) (*domain.PartnerWithSummary, error)
	ClearMonthlyRevenue(ctx context.Context, adminID, partnerID, period string) (*domain.PartnerWithSummary, error)
}

type Service struct {
	partnerRepo repository.PartnerRepository
	converter   revenue.Converter
	dispatcher  Dispatcher
	validate    *validator.Validate
}

// NewService cria o serviço de parceiros. dispatcher pode ser nil (importação em lote).
func NewService(
	partnerRepo repository.PartnerRepository,
	converter revenue.Converter,
	dispatcher Dispatcher,
) *Service {
	return &Service{
		partnerRepo: partnerRepo,
		converter:   converter,
		dispatcher:  dispatcher,
		validate:    newValidator(),
	}
}

func (s *Service) ListPartners(ctx context.Context, adminID string) ([]*domain.PartnerWithSummary, error) {
	partners, err := s.partnerRepo.ListPartners(ctx, adminID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"admin_id": adminID,
			"error":    err.Error(),
		}).Error("Erro ao listar parceiros")
		return nil, NewPartnerError(ErrFetchPartners, apiErrors.ErrDatabaseOperation, "Falha ao listar parceiros no banco de dados")
	}

	response := make([]*domain.PartnerWithSummary, 0, len(partners))
	for _, partner := range partners {
		response = append(response, s.withSummary(partner))
	}

	return response, nil
}

func (s *Service) GetPartner(ctx context.Context, adminID, partnerID string) (*domain.PartnerWithSummary, error) {
	partner, err := s.loadPartner(ctx, adminID, partnerID)
	if err != nil {
		return nil, err
	}
	return s.withSummary(partner), nil
}

func (s *Service) CreatePartner(ctx context.Context, adminID string, req *domain.PartnerRequest) (*domain.PartnerWithSummary, error) {
	normalizeRequest(req)
	if partnerErr := s.validateRequest(req); partnerErr != nil {
		return nil, partnerErr
	}

	if err := s.ensureUniqueEmail(ctx, adminID, req.Email, ""); err != nil {
		return nil, err
	}

	partnerID, err := utils.GenerateID()
	if err != nil {
		return nil, NewPartnerError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para parceiro")
	}

	partner := &domain.Partner{
		ID:            partnerID,
		AdminID:       adminID,
		AccountStatus: domain.AccountActive,
	}
	copyRequest(partner, req)

	monthly := domain.MonthlyRevenue{}
	s.applyManualEntry(monthly, req)
	partner.MonthlyRevenue = monthly

	partner.RevenueSource = revenue.RecomputeSource(monthly)
	if partner.HasAPIKey() {
		partner.RevenueSource = domain.RevenueSourceAPILoading
	}

	if err := s.partnerRepo.CreatePartner(ctx, partner); err != nil {
		return nil, s.persistError(err, partnerID, "Falha ao criar parceiro")
	}

	logrus.WithFields(logrus.Fields{
		"admin_id":   adminID,
		"partner_id": partnerID,
		"has_key":    partner.HasAPIKey(),
	}).Info("Parceiro criado")

	s.dispatch(partner)

	return s.withSummary(partner), nil
}

func (s *Service) UpdatePartner(ctx context.Context, adminID, partnerID string, req *domain.PartnerRequest) (*domain.PartnerWithSummary, error) {
	normalizeRequest(req)
	if partnerErr := s.validateRequest(req); partnerErr != nil {
		partnerErr.PartnerID = partnerID
		return nil, partnerErr
	}

	partner, err := s.loadPartner(ctx, adminID, partnerID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueEmail(ctx, adminID, req.Email, partnerID); err != nil {
		return nil, err
	}

	previousKey := partner.AdsterraAPIKey
	copyRequest(partner, req)

	monthly := partner.MonthlyRevenue.Clone()
	s.applyManualEntry(monthly, req)
	partner.MonthlyRevenue = monthly

	switch {
	case partner.HasAPIKey() && partner.AdsterraAPIKey != previousKey:
		partner.RevenueSource = domain.RevenueSourceAPILoading
		partner.LastAPICheck = nil
		partner.APIErrorMessage = nil
	case !partner.HasAPIKey():
		partner.RevenueSource = revenue.RecomputeSource(monthly)
		if previousKey != "" {
			partner.APIErrorMessage = nil
		}
	}

	if err := s.partnerRepo.UpdatePartner(ctx, partner); err != nil {
		return nil, s.persistError(err, partnerID, "Falha ao atualizar parceiro")
	}

	logrus.WithFields(logrus.Fields{
		"admin_id":       adminID,
		"partner_id":     partnerID,
		"key_changed":    partner.AdsterraAPIKey != previousKey,
		"revenue_source": partner.RevenueSource,
	}).Info("Parceiro atualizado")

	s.dispatch(partner)

	return s.withSummary(partner), nil
}

func (s *Service) DeletePartner(ctx context.Context, adminID, partnerID string) error {
	if err := s.partnerRepo.DeletePartner(ctx, adminID, partnerID); err != nil {
		return s.persistError(err, partnerID, "Falha ao remover parceiro")
	}

	logrus.WithFields(logrus.Fields{
		"admin_id":   adminID,
		"partner_id": partnerID,
	}).Info("Parceiro removido")

	return nil
}

// ToggleAccountStatus alterna a conta entre ativa e suspensa
func (s *Service) ToggleAccountStatus(ctx context.Context, adminID, partnerID string) (domain.AccountStatus, error) {
	partner, err := s.loadPartner(ctx, adminID, partnerID)
	if err != nil {
		return "", err
	}

	status := partner.AccountStatus.Toggle()
	if err := s.partnerRepo.UpdateAccountStatus(ctx, adminID, partnerID, status); err != nil {
		return "", s.persistError(err, partnerID, "Falha ao alterar status da conta")
	}

	return status, nil
}

// SetMonthlyRevenue grava uma entrada manual para o mês informado
func (s *Service) SetMonthlyRevenue(ctx context.Context, adminID, partnerID, period string, req *domain.ManualRevenueRequest) (*domain.PartnerWithSummary, error) {
	month, err := domain.ParseMonthKey(period)
	if err != nil {
		return nil, NewPartnerErrorWithID(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, partnerID, err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, NewPartnerErrorWithID(ErrInvalidPartner, apiErrors.ErrInvalidFormat, partnerID, "status de pagamento inválido")
	}
	if req.USD.IsNegative() {
		return nil, NewPartnerErrorWithID(ErrInvalidAmount, apiErrors.ErrInvalidFormat, partnerID, "valor deve ser maior ou igual a zero")
	}

	partner, err := s.loadPartner(ctx, adminID, partnerID)
	if err != nil {
		return nil, err
	}

	monthly := partner.MonthlyRevenue.Clone()
	entry := s.manualEntry(req.USD, req.Status)
	if previous, ok := monthly[month]; ok {
		entry.Impressions = previous.Impressions
	}
	monthly[month] = entry

	return s.saveMonthly(ctx, partner, monthly)
}

// ClearMonthlyRevenue remove a entrada do mês, se existir
func (s *Service) ClearMonthlyRevenue(ctx context.Context, adminID, partnerID, period string) (*domain.PartnerWithSummary, error) {
	month, err := domain.ParseMonthKey(period)
	if err != nil {
		return nil, NewPartnerErrorWithID(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, partnerID, err.Error())
	}

	partner, err := s.loadPartner(ctx, adminID, partnerID)
	if err != nil {
		return nil, err
	}

	if _, ok := partner.MonthlyRevenue[month]; !ok {
		return s.withSummary(partner), nil
	}

	monthly := partner.MonthlyRevenue.Clone()
	delete(monthly, month)

	return s.saveMonthly(ctx, partner, monthly)
}

func (s *Service) saveMonthly(ctx context.Context, partner *domain.Partner, monthly domain.MonthlyRevenue) (*domain.PartnerWithSummary, error) {
	source := partner.RevenueSource
	if !partner.HasAPIKey() {
		source = revenue.RecomputeSource(monthly)
	}

	if err := s.partnerRepo.UpdateMonthlyRevenue(ctx, partner.AdminID, partner.ID, monthly, source); err != nil {
		return nil, s.persistError(err, partner.ID, "Falha ao gravar receita mensal")
	}

	partner.MonthlyRevenue = monthly
	partner.RevenueSource = source

	return s.withSummary(partner), nil
}

func (s *Service) loadPartner(ctx context.Context, adminID, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.GetPartner(ctx, adminID, partnerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"partner_id": partnerID,
			"error":      err.Error(),
		}).Error("Erro ao buscar parceiro")
		return nil, NewPartnerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, partnerID, "Falha ao buscar parceiro")
	}
	if partner == nil {
		return nil, NewPartnerErrorWithID(ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, partnerID, "")
	}
	return partner, nil
}

func (s *Service) ensureUniqueEmail(ctx context.Context, adminID, email, excludeID string) error {
	exists, err := s.partnerRepo.EmailExists(ctx, adminID, email, excludeID)
	if err != nil {
		return NewPartnerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar email")
	}
	if exists {
		return NewPartnerErrorWithID(ErrDuplicatedEmail, apiErrors.ErrDuplicatedEmail, excludeID, email)
	}
	return nil
}

func (s *Service) persistError(err error, partnerID, details string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewPartnerErrorWithID(ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, partnerID, "")
	case errors.Is(err, repository.ErrDuplicated):
		return NewPartnerErrorWithID(ErrDuplicatedEmail, apiErrors.ErrDuplicatedEmail, partnerID, "")
	}

	logrus.WithFields(logrus.Fields{
		"partner_id": partnerID,
		"error":      err.Error(),
	}).Error(details)

	return NewPartnerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, partnerID, details)
}

// applyManualEntry grava a entrada manual do formulário. Sem valor, o período
// informado é removido.
func (s *Service) applyManualEntry(monthly domain.MonthlyRevenue, req *domain.PartnerRequest) {
	if req.RevenuePeriod == "" {
		return
	}

	month := domain.MonthKey(req.RevenuePeriod)
	if req.RevenueUSD == nil {
		delete(monthly, month)
		return
	}

	entry := s.manualEntry(*req.RevenueUSD, req.PaymentStatus)
	if previous, ok := monthly[month]; ok {
		entry.Impressions = previous.Impressions
	}
	monthly[month] = entry
}

func (s *Service) manualEntry(usd decimal.Decimal, status domain.PaymentStatus) domain.MonthlyRevenueEntry {
	if status == "" {
		status = domain.PaymentPending
	}

	return domain.MonthlyRevenueEntry{
		USD:    utils.RoundMoney(usd),
		PKR:    utils.RoundMoney(s.converter.ToSecondary(usd)),
		Status: status,
		Source: domain.SourceManual,
	}
}

func (s *Service) dispatch(partner *domain.Partner) {
	if s.dispatcher == nil || !partner.HasAPIKey() {
		return
	}
	s.dispatcher.SubmitPartner(partner.AdminID, partner.ID)
}

func (s *Service) withSummary(partner *domain.Partner) *domain.PartnerWithSummary {
	return domain.NewPartnerWithSummary(partner, revenue.Summarize(partner, s.converter))
}

func copyRequest(partner *domain.Partner, req *domain.PartnerRequest) {
	partner.Name = req.Name
	partner.Mobile = req.Mobile
	partner.Email = req.Email
	partner.Address = req.Address
	partner.Webmoney = req.Webmoney
	partner.MultiAccountNo = req.MultiAccountNo
	partner.AdsterraLink = req.AdsterraLink
	partner.AdsterraEmailLink = req.AdsterraEmailLink
	switch {
	case req.ClearAPIKey:
		partner.AdsterraAPIKey = ""
	case req.AdsterraAPIKey != "":
		partner.AdsterraAPIKey = req.AdsterraAPIKey
	}
	partner.AccountCreation = req.AccountCreation
	partner.AccountStart = req.AccountStart
}
