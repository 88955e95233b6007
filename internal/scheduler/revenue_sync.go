package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/repository"
	"github.com/vfg2006/partner-revenue-api/internal/config"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling"
)

const defaultMaxConcurrentJobs = 3

// RevenueSyncConfig representa a configuração do agendador de receita
type RevenueSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// RevenueSyncService executa reconciliações em segundo plano com concorrência limitada.
// Um parceiro já em andamento não é enfileirado de novo.
type RevenueSyncService struct {
	scheduler   *gocron.Scheduler
	config      RevenueSyncConfig
	partnerRepo repository.PartnerRepository
	reconciler  reconciling.Reconciler

	baseCtx   context.Context
	semaphore chan struct{}
	tasks     sync.WaitGroup

	inFlight      map[string]struct{}
	inFlightMutex sync.Mutex

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRevenueSyncService cria uma nova instância do serviço de sincronização de receita
func NewRevenueSyncService(
	partnerRepo repository.PartnerRepository,
	reconciler reconciling.Reconciler,
	appConfig *config.Config,
) *RevenueSyncService {
	syncConfig := RevenueSyncConfig{
		CronSchedule:      appConfig.RevenueSync.CronSchedule,
		MaxConcurrentJobs: appConfig.RevenueSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.RevenueSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de receita carregada")

	return &RevenueSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		partnerRepo: partnerRepo,
		reconciler:  reconciler,
		baseCtx:     context.Background(),
		semaphore:   make(chan struct{}, syncConfig.MaxConcurrentJobs),
		inFlight:    make(map[string]struct{}),
	}
}

// Start inicia o agendador. As tarefas enviadas depois disso herdam ctx.
func (s *RevenueSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPartners()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// SubmitPartner enfileira a reconciliação de um parceiro sem bloquear.
// Retorna false se o parceiro já estiver em andamento.
func (s *RevenueSyncService) SubmitPartner(adminID, partnerID string) bool {
	return s.submit(adminID, partnerID, nil)
}

func (s *RevenueSyncService) submit(adminID, partnerID string, onDone func()) bool {
	key := adminID + "/" + partnerID

	s.inFlightMutex.Lock()
	if _, running := s.inFlight[key]; running {
		s.inFlightMutex.Unlock()
		logrus.WithFields(logrus.Fields{
			"admin_id":   adminID,
			"partner_id": partnerID,
		}).Debug("Reconciliação já em andamento para o parceiro, ignorando")
		return false
	}
	s.inFlight[key] = struct{}{}
	s.tasks.Add(1)
	s.inFlightMutex.Unlock()

	go func() {
		defer func() {
			s.inFlightMutex.Lock()
			delete(s.inFlight, key)
			s.inFlightMutex.Unlock()

			if onDone != nil {
				onDone()
			}
			s.tasks.Done()
		}()

		s.semaphore <- struct{}{} // Adquirir semáforo
		defer func() { <-s.semaphore }()

		s.reconcile(adminID, partnerID)
	}()

	return true
}

func (s *RevenueSyncService) reconcile(adminID, partnerID string) {
	logger := logrus.WithFields(logrus.Fields{
		"admin_id":   adminID,
		"partner_id": partnerID,
	})

	result, err := s.reconciler.ReconcileRevenue(s.baseCtx, adminID, partnerID)
	if err != nil {
		logger.WithError(err).Error("Erro ao reconciliar receita do parceiro em segundo plano")
		return
	}

	logger.WithFields(logrus.Fields{
		"success": result.Success,
		"message": result.Message,
	}).Info("Reconciliação em segundo plano concluída")
}

// TriggerRefreshAll envia todos os parceiros com chave do admin para reconciliação
// e retorna quantos estão sendo atualizados. Não aguarda o término.
func (s *RevenueSyncService) TriggerRefreshAll(ctx context.Context, adminID string) (int, error) {
	partners, err := s.partnerRepo.ListPartnersWithAPIKey(ctx, adminID)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar parceiros com chave de API: %w", err)
	}

	skipped := 0
	for _, partner := range partners {
		if !s.SubmitPartner(partner.AdminID, partner.ID) {
			skipped++
		}
	}

	logrus.WithFields(logrus.Fields{
		"admin_id":  adminID,
		"partners":  len(partners),
		"in_flight": skipped,
	}).Info("Atualização de receita de todos os parceiros iniciada")

	return len(partners), nil
}

// syncAllPartners reconcilia os parceiros com chave de todos os admins
func (s *RevenueSyncService) syncAllPartners() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de receita para todos os parceiros com chave de API")

	partners, err := s.partnerRepo.ListAllPartnersWithAPIKey(s.baseCtx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar parceiros para sincronização de receita")
		return
	}

	if len(partners) == 0 {
		logrus.Info("Nenhum parceiro com chave de API encontrado para sincronização")
		return
	}

	var sweep sync.WaitGroup
	for _, partner := range partners {
		sweep.Add(1)
		if !s.submit(partner.AdminID, partner.ID, sweep.Done) {
			sweep.Done()
		}
	}
	sweep.Wait()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"partners": len(partners),
	}).Info("Sincronização de receita concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente a sincronização de todos os admins
func (s *RevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de receita")
	go s.syncAllPartners()
}

// Drain aguarda as reconciliações pendentes ou o fim do contexto
func (s *RevenueSyncService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.Info("Reconciliações pendentes finalizadas")
		return nil
	case <-ctx.Done():
		logrus.WithField("in_flight", s.inFlightCount()).Warn("Tempo esgotado aguardando reconciliações pendentes")
		return ctx.Err()
	}
}

func (s *RevenueSyncService) inFlightCount() int {
	s.inFlightMutex.Lock()
	defer s.inFlightMutex.Unlock()
	return len(s.inFlight)
}

// GetStatus retorna o status atual do agendador
func (s *RevenueSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"in_flight":              s.inFlightCount(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
