package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-revenue-api/infrastructure/integrator/adsterra"
	"github.com/vfg2006/partner-revenue-api/infrastructure/integrator/adsterra/adsterraclient"
	"github.com/vfg2006/partner-revenue-api/infrastructure/repository"
	"github.com/vfg2006/partner-revenue-api/internal/api"
	"github.com/vfg2006/partner-revenue-api/internal/config"
	"github.com/vfg2006/partner-revenue-api/internal/revenue"
	"github.com/vfg2006/partner-revenue-api/internal/scheduler"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling"
	"github.com/vfg2006/partner-revenue-api/pkg/log"
	"github.com/vfg2006/partner-revenue-api/pkg/utils"
)

func main() {
	chdirToSource()
	utils.UseNumericMoneyJSON()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if len(cfg.Auth.PINHashes) == 0 {
		logrus.Warn("ADMIN_PINS vazio, nenhum admin conseguirá fazer login")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	partnerRepo := repository.NewPartnerRepository(pgConn)
	sessionRepo := repository.NewSessionRepository(pgConn)

	converter := revenue.NewConverter(decimal.NewFromFloat(cfg.Currency.PKRRate))

	adsterraClient := adsterraclient.NewClient(cfg)
	adsterraIntegrator := adsterra.New(cfg, adsterraClient, converter)

	reconciler := reconciling.NewService(partnerRepo, adsterraIntegrator)

	revenueSyncService := scheduler.NewRevenueSyncService(partnerRepo, reconciler, cfg)
	if err := revenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de receita")
	} else {
		logrus.Info("Agendador de sincronização de receita iniciado com sucesso")
	}

	// edições com chave de API disparam reconciliação pelo agendador
	partnerService := partnering.NewService(partnerRepo, converter, revenueSyncService)

	authenticator := authenticating.NewService(sessionRepo, cfg)

	server, err := api.New(
		cfg,
		pgConn,
		authenticator,
		partnerService,
		reconciler,
		revenueSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do main para achar o .env
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Mantendo diretório atual")
	}
}

// pgconn cria a conexão e aplica o schema
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema do PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
