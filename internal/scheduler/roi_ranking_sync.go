// Package scheduler contém os serviços de agendamento de snapshots
// pré-calculados do motor de valorização
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
)

type ROIRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ROIRankingSyncService recalcula periodicamente o ranking de lojas por ROI de
// exibição com os parâmetros padrão e persiste o snapshot para leitura direta
// do widget de ranking do dashboard
type ROIRankingSyncService struct {
	scheduler           *gocron.Scheduler
	exhibitor           exhibiting.Exhibitor
	rankingRepo         repository.ROIRankingRepository
	config              ROIRankingSyncConfig
	defaultParams       *domain.ExhibitionParams
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewROIRankingSyncService(
	exhibitor exhibiting.Exhibitor,
	rankingRepo repository.ROIRankingRepository,
	cfg *config.Config,
) *ROIRankingSyncService {
	syncConfig := ROIRankingSyncConfig{
		CronSchedule: cfg.ROIRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.ROIRankingSync.SyncEnabled,  // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking por ROI carregada")

	return &ROIRankingSyncService{
		scheduler:   scheduler,
		exhibitor:   exhibitor,
		rankingRepo: rankingRepo,
		config:      syncConfig,
		defaultParams: &domain.ExhibitionParams{
			CostPerExhibition: cfg.Engine.DefaultCostPerExhibition,
			SalesLiftFraction: cfg.Engine.DefaultSalesLiftFraction,
			DaysInMonth:       cfg.Engine.DefaultDaysInMonth,
		},
	}
}

func (s *ROIRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking por ROI desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking por ROI")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateROIRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking por ROI")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking por ROI: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking por ROI")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a atualização fora do agendamento
func (s *ROIRankingSyncService) TriggerManualSync() {
	go func() {
		if err := s.UpdateROIRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking por ROI")
		}
	}()
}

func (s *ROIRankingSyncService) UpdateROIRanking() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização do ranking por ROI já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do snapshot de ranking por ROI")

	response, err := s.exhibitor.ComputeExhibitionROI(s.defaultParams)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular ranking por ROI para o snapshot")
		return err
	}

	// O agrupamento já sai ordenado por ROI decrescente
	ranking := response.GroupedByStore

	snapshot := &domain.ROIRankingSnapshot{
		Period:      time.Now().Format("01-2006"),
		Params:      s.defaultParams,
		Ranking:     ranking,
		GeneratedAt: time.Now(),
	}

	if err := s.rankingRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot de ranking por ROI")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"period": snapshot.Period,
		"stores": len(ranking),
	}).Info("Atualização do snapshot de ranking por ROI concluída")

	return nil
}

// GetStatus retorna o estado atual da sincronização para o endpoint de cron
func (s *ROIRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"cron_schedule":          s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
