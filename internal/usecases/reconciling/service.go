package reconciling

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/repository"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/internal/revenue"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
)

const (
	noAPIKeyNote = "Nenhuma chave de API configurada."

	timeSeriesTag = "Série mensal"
	countryTag    = "Países"

	timeSeriesSyncedMessage = "Receita mensal sincronizada."
	countrySyncedMessage    = "Ranking de países sincronizado."

	errorSeparator = " | "
)

type Service struct {
	partnerRepo repository.PartnerRepository
	fetcher     RevenueFetcher
	now         func() time.Time
}

func NewService(partnerRepo repository.PartnerRepository, fetcher RevenueFetcher) *Service {
	return &Service{
		partnerRepo: partnerRepo,
		fetcher:     fetcher,
		now:         time.Now,
	}
}

// ReconcileRevenue busca série mensal e ranking de países em paralelo, combina
// com o estado persistido e grava o resultado em uma única escrita.
// Success reflete apenas a série mensal.
func (s *Service) ReconcileRevenue(ctx context.Context, adminID, partnerID string) (*domain.ReconcileResult, error) {
	partner, err := s.partnerRepo.GetPartner(ctx, adminID, partnerID)
	if err != nil {
		return nil, NewReconcileError(ErrLoadPartner, apiErrors.ErrDatabaseOperation, partnerID, err.Error())
	}
	if partner == nil {
		return nil, NewReconcileError(ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, partnerID, "")
	}

	// buscas e gravação seguem mesmo se o cliente desconectar ou o agendador
	// parar, limitadas pelo timeout do cliente HTTP
	ctx = context.WithoutCancel(ctx)

	logger := logrus.WithFields(logrus.Fields{
		"admin_id":   adminID,
		"partner_id": partnerID,
	})

	checkedAt := s.now().UTC()

	if !partner.HasAPIKey() {
		note := noAPIKeyNote
		update := domain.RevenueStateUpdate{
			RevenueSource:   revenue.RecomputeSource(partner.MonthlyRevenue),
			APIErrorMessage: &note,
			LastAPICheck:    checkedAt,
		}
		if err := s.persist(ctx, adminID, partnerID, update); err != nil {
			return nil, err
		}

		logger.Info("reconcile: parceiro sem chave de API, nenhuma busca realizada")
		return &domain.ReconcileResult{Success: true, Message: noAPIKeyNote, PartnerName: partner.Name}, nil
	}

	var (
		wg         sync.WaitGroup
		timeSeries *domain.TimeSeriesResult
		countries  *domain.CountryBreakdownResult
		tsErr      error
		countryErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		timeSeries, tsErr = s.fetcher.FetchTimeSeries(ctx, partner.AdsterraAPIKey)
	}()
	go func() {
		defer wg.Done()
		countries, countryErr = s.fetcher.FetchCountryBreakdown(ctx, partner.AdsterraAPIKey)
	}()
	wg.Wait()

	update := domain.RevenueStateUpdate{LastAPICheck: checkedAt}
	var failures, messages []string

	if tsErr == nil {
		update.MonthlyRevenue = revenue.Merge(partner.MonthlyRevenue, timeSeries.MonthlyData)
		total := timeSeries.TotalImpressions
		update.APITotalImpressions = &total

		update.RevenueSource = domain.RevenueSourceAPI
		if len(timeSeries.MonthlyData) > 0 {
			update.RevenueSource = domain.RevenueSourceAPISynced
		}
		messages = append(messages, noticeOr(timeSeries.Notice, timeSeriesSyncedMessage))
	} else {
		update.RevenueSource = domain.RevenueSourceAPIError
		failures = append(failures, timeSeriesTag+": "+tsErr.Error())
		messages = append(messages, "Erro na receita mensal: "+tsErr.Error()+".")
	}

	if countryErr == nil {
		update.SetCountryBreakdown = true
		update.APICountryBreakdown = countries.Countries
		messages = append(messages, noticeOr(countries.Notice, countrySyncedMessage))
	} else {
		failures = append(failures, countryTag+": "+countryErr.Error())
		messages = append(messages, "Erro no ranking de países: "+countryErr.Error()+".")
	}

	if len(failures) > 0 {
		joined := strings.Join(failures, errorSeparator)
		update.APIErrorMessage = &joined
	}

	if err := s.persist(ctx, adminID, partnerID, update); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"revenue_source": update.RevenueSource,
		"failures":       len(failures),
	}).Info("reconcile: receita do parceiro atualizada")

	return &domain.ReconcileResult{
		Success:     tsErr == nil,
		Message:     strings.Join(messages, " "),
		PartnerName: partner.Name,
	}, nil
}

func (s *Service) persist(ctx context.Context, adminID, partnerID string, update domain.RevenueStateUpdate) error {
	err := s.partnerRepo.UpdateRevenueState(ctx, adminID, partnerID, update)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewReconcileError(ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, partnerID, "parceiro removido durante a reconciliação")
	}

	logrus.WithFields(logrus.Fields{
		"partner_id": partnerID,
		"error":      err.Error(),
	}).Error("reconcile: erro ao gravar estado de receita")

	return NewReconcileError(ErrPersistRevenue, apiErrors.ErrDatabaseOperation, partnerID, err.Error())
}

func noticeOr(notice, fallback string) string {
	if notice != "" {
		return notice
	}
	return fallback
}
