package syncing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adtrackr/profit-sync-api/infrastructure/repository"
	repomocks "github.com/adtrackr/profit-sync-api/infrastructure/repository/mocks"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	adaptermocks "github.com/adtrackr/profit-sync-api/internal/usecases/syncing/mocks"
)

// statusLedgerFake reproduz em memória a semântica do upsert condicional do
// repositório de status: a aquisição só vence quando não há sincronização em
// andamento ou quando a existente passou do limite de obsolescência.
type statusLedgerFake struct {
	mu       sync.Mutex
	statuses map[string]*domain.SyncStatus
}

var _ repository.SyncStatusRepository = (*statusLedgerFake)(nil)

func newStatusLedgerFake() *statusLedgerFake {
	return &statusLedgerFake{statuses: make(map[string]*domain.SyncStatus)}
}

func ledgerKey(tenantID int, platform domain.Platform) string {
	return fmt.Sprintf("%d/%s", tenantID, platform)
}

func (f *statusLedgerFake) seed(status *domain.SyncStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[ledgerKey(status.TenantID, status.Platform)] = status
}

func (f *statusLedgerFake) AcquireLock(_ context.Context, tenantID int, platform domain.Platform, staleness time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.statuses[ledgerKey(tenantID, platform)]
	if ok && current.Status == domain.SyncStateSyncing &&
		current.StartedAt != nil && time.Since(*current.StartedAt) < staleness {
		return false, nil
	}

	now := time.Now()
	f.statuses[ledgerKey(tenantID, platform)] = &domain.SyncStatus{
		TenantID:  tenantID,
		Platform:  platform,
		Status:    domain.SyncStateSyncing,
		StartedAt: &now,
	}

	return true, nil
}

func (f *statusLedgerFake) ReleaseLock(_ context.Context, tenantID int, platform domain.Platform, outcome domain.SyncOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := &domain.SyncStatus{TenantID: tenantID, Platform: platform}
	if outcome.Err != nil {
		message := outcome.Err.Error()
		status.Status = domain.SyncStateError
		status.ErrorMessage = &message
	} else {
		now := time.Now()
		status.Status = domain.SyncStateDone
		status.LastSyncedAt = &now
		status.RecordsSynced = outcome.RecordsSynced
	}
	f.statuses[ledgerKey(tenantID, platform)] = status

	return nil
}

func (f *statusLedgerFake) ListByTenant(_ context.Context, tenantID int) ([]*domain.SyncStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	statuses := make([]*domain.SyncStatus, 0)
	for _, status := range f.statuses {
		if status.TenantID == tenantID {
			statuses = append(statuses, status)
		}
	}

	return statuses, nil
}

type lockFixture struct {
	connectionRepo *repomocks.MockConnectionRepository
	cacheRepo      *repomocks.MockMetricCacheRepository
	adapter        *adaptermocks.MockSourceAdapter
	ledger         *statusLedgerFake
	syncer         Syncer
}

func newLockFixture(t *testing.T) *lockFixture {
	ctrl := gomock.NewController(t)

	f := &lockFixture{
		connectionRepo: repomocks.NewMockConnectionRepository(ctrl),
		cacheRepo:      repomocks.NewMockMetricCacheRepository(ctrl),
		adapter:        adaptermocks.NewMockSourceAdapter(ctrl),
		ledger:         newStatusLedgerFake(),
	}

	f.adapter.EXPECT().Platform().Return(domain.PlatformTikTok).AnyTimes()

	f.syncer = NewService(
		syncConfig(),
		repomocks.NewMockTenantRepository(ctrl),
		f.connectionRepo,
		f.cacheRepo,
		f.ledger,
		nil,
		f.adapter,
	)

	return f
}

func TestSyncTenant_LockGaranteExclusaoMutua(t *testing.T) {
	f := newLockFixture(t)
	ctx := context.Background()

	f.connectionRepo.EXPECT().
		ListActiveByTenant(gomock.Any(), 42).
		Return([]*domain.PlatformConnection{tiktokConnection(42)}, nil).
		Times(2)

	f.cacheRepo.EXPECT().
		HasRowsForPlatform(gomock.Any(), 42, domain.PlatformTikTok).
		Return(true, nil).
		Times(2)

	// O primeiro ciclo segura o lock dentro do Fetch enquanto o segundo
	// disputa; só um Fetch pode acontecer
	entered := make(chan struct{})
	proceed := make(chan struct{})
	var fetches int32

	f.adapter.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.PlatformConnection, domain.SyncWindow) ([]domain.RawMetricRow, error) {
			atomic.AddInt32(&fetches, 1)
			close(entered)
			<-proceed
			return nil, nil
		})

	f.cacheRepo.EXPECT().
		ReplaceWindow(gomock.Any(), 42, domain.PlatformTikTok, gomock.Any(), gomock.Any()).
		Return(0, nil)

	done := make(chan error, 1)
	go func() { done <- f.syncer.SyncTenant(ctx, 42) }()

	<-entered
	require.NoError(t, f.syncer.SyncTenant(ctx, 42))

	close(proceed)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))

	statuses, err := f.ledger.ListByTenant(ctx, 42)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, domain.SyncStateDone, statuses[0].Status)
}

func TestSyncTenant_LockObsoleto(t *testing.T) {
	t.Run("sincronização recente é respeitada", func(t *testing.T) {
		f := newLockFixture(t)
		ctx := context.Background()

		startedAt := time.Now().Add(-time.Minute)
		f.ledger.seed(&domain.SyncStatus{
			TenantID:  42,
			Platform:  domain.PlatformTikTok,
			Status:    domain.SyncStateSyncing,
			StartedAt: &startedAt,
		})

		f.connectionRepo.EXPECT().
			ListActiveByTenant(gomock.Any(), 42).
			Return([]*domain.PlatformConnection{tiktokConnection(42)}, nil)

		f.cacheRepo.EXPECT().
			HasRowsForPlatform(gomock.Any(), 42, domain.PlatformTikTok).
			Return(true, nil)

		// Nenhum Fetch: o lock ainda pertence ao outro worker
		require.NoError(t, f.syncer.SyncTenant(ctx, 42))

		statuses, err := f.ledger.ListByTenant(ctx, 42)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, domain.SyncStateSyncing, statuses[0].Status)
		assert.Equal(t, &startedAt, statuses[0].StartedAt)
	})

	t.Run("sincronização travada além do limite é retomada", func(t *testing.T) {
		f := newLockFixture(t)
		ctx := context.Background()

		// Worker anterior morreu há 11 minutos com o lock em mãos; o limite
		// de obsolescência configurado é de 10 minutos
		startedAt := time.Now().Add(-11 * time.Minute)
		f.ledger.seed(&domain.SyncStatus{
			TenantID:  42,
			Platform:  domain.PlatformTikTok,
			Status:    domain.SyncStateSyncing,
			StartedAt: &startedAt,
		})

		f.connectionRepo.EXPECT().
			ListActiveByTenant(gomock.Any(), 42).
			Return([]*domain.PlatformConnection{tiktokConnection(42)}, nil)

		f.cacheRepo.EXPECT().
			HasRowsForPlatform(gomock.Any(), 42, domain.PlatformTikTok).
			Return(true, nil)

		f.adapter.EXPECT().
			Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.RawMetricRow{{CountryCode: "US", Spend: 10}}, nil)

		f.cacheRepo.EXPECT().
			ReplaceWindow(gomock.Any(), 42, domain.PlatformTikTok, gomock.Any(), gomock.Any()).
			Return(1, nil)

		require.NoError(t, f.syncer.SyncTenant(ctx, 42))

		statuses, err := f.ledger.ListByTenant(ctx, 42)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, domain.SyncStateDone, statuses[0].Status)
		assert.Equal(t, 1, statuses[0].RecordsSynced)
	})
}

func TestAcquireLock_DisputaConcorrenteTemUmVencedor(t *testing.T) {
	ctx := context.Background()
	ledger := newStatusLedgerFake()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acquired, err := ledger.AcquireLock(ctx, 42, domain.PlatformTikTok, 10*time.Minute)
			assert.NoError(t, err)
			if acquired {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&wins))
}
