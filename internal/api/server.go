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
	"github.com/vfg2006/pharma-sales-api/internal/api/handler"
	"github.com/vfg2006/pharma-sales-api/internal/api/handler/router"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/insighting"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
	"github.com/vfg2006/pharma-sales-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
	"github.com/vfg2006/pharma-sales-api/pkg/middleware"
	"github.com/vfg2006/pharma-sales-api/pkg/money"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	insightService insighting.CombinedInsighter,
	rankingService ranking.RankingService,
	reportExportService handler.ReportExporter,
	formatter *money.Formatter,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ReportExportService: reportExportService,
	}

	salesDefaults := handler.SalesDefaults{
		ForecastDays:     config.Analytics.DefaultForecastDays,
		TopProductsLimit: config.Analytics.TopProductsLimit,
	}

	rt := router.New(
		router.WithRoutes(handler.Home(config.App.Version)...),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Sales(insightService, rankingService, formatter, salesDefaults)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", r.URL.Path)
		})),
		router.WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", r.Method)
		})),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: config.Server.ReadHeaderTimeout,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
