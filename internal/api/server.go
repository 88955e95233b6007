package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/internal/api/handler"
	"github.com/vfg2006/partner-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/partner-revenue-api/internal/config"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling"
	"github.com/vfg2006/partner-revenue-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// BackgroundSync é o agendador de reconciliação visto pelo servidor
type BackgroundSync interface {
	handler.RevenueRefresher
	Drain(ctx context.Context) error
}

type Server struct {
	httpServer *http.Server
	sync       BackgroundSync
}

func New(
	config *config.Config,
	db handler.Pinger,
	authenticator authenticating.Authenticator,
	partnerService partnering.PartnerService,
	reconciler reconciling.Reconciler,
	revenueSync BackgroundSync,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Partners(partnerService)...),
		router.WithRoutes(handler.Revenue(reconciler, revenueSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		sync: revenueSync,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições e aguarda as reconciliações em andamento
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	if s.sync != nil {
		if err := s.sync.Drain(ctx); err != nil {
			logrus.WithError(err).Warn("Reconciliações em segundo plano interrompidas no desligamento")
		}
	}

	return nil
}
