package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/internal/api/handler"
	"github.com/vgalindo/retail-opportunity-api/internal/api/handler/router"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/scheduler"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/analyzing"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/promoting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/ranking"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/segmenting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/valorizing"
	"github.com/vgalindo/retail-opportunity-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	segmentationService segmenting.SegmentationService,
	promotionService promoting.Promoter,
	exhibitionService exhibiting.Exhibitor,
	riskService valorizing.Valorizer,
	opportunityService analyzing.Analyzer,
	rankingService ranking.RankingService,
	roiRankingSyncService *scheduler.ROIRankingSyncService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		ROIRankingSyncService: roiRankingSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Segments(segmentationService)...),
		router.WithRoutes(handler.Promotions(promotionService)...),
		router.WithRoutes(handler.Exhibitions(exhibitionService, config)...),
		router.WithRoutes(handler.Risks(riskService)...),
		router.WithRoutes(handler.Opportunity(opportunityService, config)...),
		router.WithRoutes(handler.StoreROIRanking(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
