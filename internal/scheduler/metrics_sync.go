package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/usecases/syncing"
)

// MetricsSyncService agenda o ciclo completo de sincronização de métricas.
// O lock fino por (tenant, plataforma) mora no banco; o mutex local só
// evita que a mesma instância empilhe ciclos quando um demora mais que o
// intervalo do cron.
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMetricsSyncService(syncer syncing.Syncer, cfg *config.Config) *MetricsSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":          cfg.MetricsSync.CronSchedule,
		"sync_enabled":           cfg.MetricsSync.Enabled,
		"max_concurrent_tenants": cfg.MetricsSync.MaxConcurrentTenants,
		"incremental_days":       cfg.MetricsSync.IncrementalDays,
		"first_sync_days":        cfg.MetricsSync.FirstSyncDays,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &MetricsSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg,
		syncer:    syncer,
	}
}

// Start agenda o ciclo e devolve imediatamente; o agendador roda em
// background até o contexto ser cancelado
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.cfg.MetricsSync.Enabled {
		logrus.Info("Sincronização agendada de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.MetricsSync.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.cfg.MetricsSync.CronSchedule).Do(func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara um ciclo completo fora do horário do cron (endpoint
// administrativo)
func (s *MetricsSyncService) RunNow(ctx context.Context) {
	go s.runCycle(ctx)
}

func (s *MetricsSyncService) runCycle(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo agendado de sincronização de métricas")

	if err := s.syncer.SyncAll(ctx); err != nil {
		logrus.WithError(err).Error("Erro no ciclo agendado de sincronização de métricas")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithField("duration", time.Since(startTime).String()).Info("Ciclo agendado de sincronização de métricas concluído")
}
