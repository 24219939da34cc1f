package syncing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adtrackr/profit-sync-api/infrastructure/ratelimit"
	"github.com/adtrackr/profit-sync-api/infrastructure/repository"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
)

var errRateLimited = errors.New("limite de requisições da plataforma atingido, pulando ciclo")

// Service orquestra a sincronização: calcula a janela, disputa o lock por
// (tenant, plataforma), busca na origem e grava o resultado no cache.
type Service struct {
	cfg                  *config.Config
	tenantRepository     repository.TenantRepository
	connectionRepository repository.ConnectionRepository
	cacheRepository      repository.MetricCacheRepository
	statusRepository     repository.SyncStatusRepository
	limiter              ratelimit.Limiter
	adapters             map[domain.Platform]SourceAdapter
}

func NewService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	connectionRepo repository.ConnectionRepository,
	cacheRepo repository.MetricCacheRepository,
	statusRepo repository.SyncStatusRepository,
	limiter ratelimit.Limiter,
	adapters ...SourceAdapter,
) Syncer {
	registered := make(map[domain.Platform]SourceAdapter, len(adapters))
	for _, adapter := range adapters {
		registered[adapter.Platform()] = adapter
	}

	if limiter == nil {
		limiter = ratelimit.NoopLimiter{}
	}

	return &Service{
		cfg:                  cfg,
		tenantRepository:     tenantRepo,
		connectionRepository: connectionRepo,
		cacheRepository:      cacheRepo,
		statusRepository:     statusRepo,
		limiter:              limiter,
		adapters:             registered,
	}
}

// SyncAll percorre todos os tenants com conexão ativa. O paralelismo entre
// tenants é limitado por um semáforo de canal; dentro de cada tenant as
// plataformas rodam em paralelo entre si.
func (s *Service) SyncAll(ctx context.Context) error {
	runID, _ := utils.GenerateID()
	logger := logrus.WithField("sync_run_id", runID)

	tenants, err := s.tenantRepository.ListWithConnections(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar tenants com conexões ativas")
		return err
	}

	logger.WithField("tenants", len(tenants)).Info("Iniciando ciclo completo de sincronização")

	maxConcurrent := s.cfg.MetricsSync.MaxConcurrentTenants
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, tenant := range tenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(tenant *domain.Tenant) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := s.SyncTenant(ctx, tenant.ID); err != nil {
				logger.WithFields(logrus.Fields{
					"tenant_id": tenant.ID,
					"error":     err,
				}).Error("Erro ao sincronizar tenant")
			}

			if delay := s.cfg.MetricsSync.RequestDelaySeconds; delay > 0 {
				time.Sleep(time.Duration(delay) * time.Second)
			}
		}(tenant)
	}

	wg.Wait()
	logger.Info("Ciclo completo de sincronização finalizado")

	return nil
}

// SyncTenant dispara, em paralelo, a sincronização de cada conexão ativa do
// tenant e espera todas terminarem. Falha de uma plataforma não interrompe
// as demais.
func (s *Service) SyncTenant(ctx context.Context, tenantID int) error {
	connections, err := s.connectionRepository.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return err
	}

	if len(connections) == 0 {
		return ErrNoActiveConnections
	}

	var wg sync.WaitGroup
	for _, connection := range connections {
		wg.Add(1)

		go func(connection *domain.PlatformConnection) {
			defer wg.Done()
			s.syncPlatform(ctx, connection)
		}(connection)
	}

	wg.Wait()
	return nil
}

// TriggerSync dispara a sincronização em background. O contexto do request
// não é propagado para não cancelar o trabalho quando a resposta 202 sai.
func (s *Service) TriggerSync(ctx context.Context, tenantID int) error {
	connections, err := s.connectionRepository.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return err
	}

	if len(connections) == 0 {
		return ErrNoActiveConnections
	}

	go func() {
		background, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		if err := s.SyncTenant(background, tenantID); err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"error":     err,
			}).Error("Erro na sincronização disparada manualmente")
		}
	}()

	return nil
}

// EnsureFirstLoad roda a primeira carga de forma síncrona quando o tenant
// ainda não tem métricas, para o dashboard não nascer vazio
func (s *Service) EnsureFirstLoad(ctx context.Context, tenantID int) error {
	hasRows, err := s.cacheRepository.HasAnyRows(ctx, tenantID)
	if err != nil {
		return err
	}

	if hasRows {
		return nil
	}

	logrus.WithField("tenant_id", tenantID).Info("Cache vazio, executando primeira carga de métricas")

	err = s.SyncTenant(ctx, tenantID)
	if errors.Is(err, ErrNoActiveConnections) {
		// Tenant sem conexão configurada simplesmente não tem dados ainda
		return nil
	}

	return err
}

func (s *Service) GetSyncStatus(ctx context.Context, tenantID int) (*domain.TenantSyncStatus, error) {
	statuses, err := s.statusRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	view := &domain.TenantSyncStatus{
		Platforms: make(map[domain.Platform]domain.PlatformSyncView, len(statuses)),
	}

	for _, status := range statuses {
		view.Platforms[status.Platform] = domain.PlatformSyncView{
			Status:        status.Status,
			LastSyncedAt:  status.LastSyncedAt,
			ErrorMessage:  status.ErrorMessage,
			RecordsSynced: status.RecordsSynced,
		}

		if status.Status == domain.SyncStateSyncing {
			view.IsSyncing = true
		}

		if status.LastSyncedAt != nil && (view.LastSynced == nil || status.LastSyncedAt.After(*view.LastSynced)) {
			view.LastSynced = status.LastSyncedAt
		}
	}

	return view, nil
}

// syncPlatform é o ciclo de uma plataforma: janela, lock, rate limit,
// fetch e gravação. Quem não adquire o lock sai em silêncio; todo caminho
// que adquiriu o lock termina num release com o desfecho.
func (s *Service) syncPlatform(ctx context.Context, connection *domain.PlatformConnection) {
	logger := logrus.WithFields(logrus.Fields{
		"tenant_id": connection.TenantID,
		"platform":  connection.Platform,
	})

	adapter, err := s.adapterFor(connection.Platform)
	if err != nil {
		logger.WithError(err).Warn("Conexão ativa sem adapter correspondente, pulando")
		return
	}

	window, err := s.resolveWindow(ctx, connection.TenantID, connection.Platform)
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular a janela de sincronização")
		return
	}

	acquired, err := s.statusRepository.AcquireLock(ctx, connection.TenantID, connection.Platform, s.cfg.MetricsSync.LockStaleness)
	if err != nil {
		logger.WithError(err).Error("Erro ao disputar o lock de sincronização")
		return
	}

	if !acquired {
		logger.Info("Sincronização já em andamento para a plataforma, pulando")
		return
	}

	allowed, err := s.limiter.Allow(ctx, connection.Platform)
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar o rate limiter")
	}

	if !allowed {
		logger.Warn("Rate limit da plataforma atingido, ciclo adiado")
		s.release(ctx, connection, domain.SyncOutcome{Err: errRateLimited}, logger)
		return
	}

	started := time.Now()
	rows, err := adapter.Fetch(ctx, connection, window)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar métricas na origem")
		s.release(ctx, connection, domain.SyncOutcome{Err: err}, logger)
		return
	}

	recordCount, err := s.cacheRepository.ReplaceWindow(ctx, connection.TenantID, connection.Platform, window, rows)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar métricas no cache")
		s.release(ctx, connection, domain.SyncOutcome{Err: err}, logger)
		return
	}

	s.release(ctx, connection, domain.SyncOutcome{RecordsSynced: recordCount}, logger)

	logger.WithFields(logrus.Fields{
		"window_start":   window.Start.Format("2006-01-02"),
		"window_end":     window.End.Format("2006-01-02"),
		"window_days":    window.Days(),
		"records_synced": recordCount,
		"duration":       time.Since(started).String(),
	}).Info("Sincronização da plataforma concluída")
}

func (s *Service) adapterFor(platform domain.Platform) (SourceAdapter, error) {
	adapter, ok := s.adapters[platform]
	if !ok {
		return nil, ErrUnknownPlatform
	}

	return adapter, nil
}

func (s *Service) release(ctx context.Context, connection *domain.PlatformConnection, outcome domain.SyncOutcome, logger *logrus.Entry) {
	if err := s.statusRepository.ReleaseLock(ctx, connection.TenantID, connection.Platform, outcome); err != nil {
		logger.WithError(err).Error("Erro ao liberar o lock de sincronização")
	}
}
