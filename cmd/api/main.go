package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/database/postgres"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/api"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/scheduler"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/analyzing"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/promoting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/ranking"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/segmenting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/valorizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeFactRepo := repository.NewStoreFactRepository(pgConn)
	pricingRepo := repository.NewPricingRepository(pgConn)
	exhibitionROIRepo := repository.NewExhibitionROIRepository(pgConn)
	riskRepo := repository.NewRiskRepository(pgConn)
	roiRankingRepo := repository.NewROIRankingRepository(pgConn)

	segmentationService := segmenting.NewService(storeFactRepo, cfg)
	promotionService := promoting.NewService(pricingRepo, cfg)
	exhibitionService := exhibiting.NewService(exhibitionROIRepo)
	riskService := valorizing.NewService(riskRepo)
	opportunityService := analyzing.NewService(exhibitionService, riskService)
	rankingService := ranking.NewROIRankingService(roiRankingRepo)

	// Inicializa o agendador de snapshot do ranking por ROI
	roiRankingSyncService := scheduler.NewROIRankingSyncService(
		exhibitionService,
		roiRankingRepo,
		cfg,
	)

	if err := roiRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking por ROI")
	} else {
		logrus.Info("Agendador do ranking por ROI iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		segmentationService,
		promotionService,
		exhibitionService,
		riskService,
		opportunityService,
		rankingService,
		roiRankingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
