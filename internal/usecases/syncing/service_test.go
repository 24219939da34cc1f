package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adtrackr/profit-sync-api/infrastructure/repository/mocks"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	adaptermocks "github.com/adtrackr/profit-sync-api/internal/usecases/syncing/mocks"
)

type syncFixture struct {
	tenantRepo     *repomocks.MockTenantRepository
	connectionRepo *repomocks.MockConnectionRepository
	cacheRepo      *repomocks.MockMetricCacheRepository
	statusRepo     *repomocks.MockSyncStatusRepository
	adapter        *adaptermocks.MockSourceAdapter
	syncer         Syncer
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		tenantRepo:     repomocks.NewMockTenantRepository(ctrl),
		connectionRepo: repomocks.NewMockConnectionRepository(ctrl),
		cacheRepo:      repomocks.NewMockMetricCacheRepository(ctrl),
		statusRepo:     repomocks.NewMockSyncStatusRepository(ctrl),
		adapter:        adaptermocks.NewMockSourceAdapter(ctrl),
	}

	f.adapter.EXPECT().Platform().Return(domain.PlatformTikTok).AnyTimes()

	f.syncer = NewService(
		syncConfig(),
		f.tenantRepo,
		f.connectionRepo,
		f.cacheRepo,
		f.statusRepo,
		nil,
		f.adapter,
	)

	return f
}

func tiktokConnection(tenantID int) *domain.PlatformConnection {
	return &domain.PlatformConnection{
		ID:          1,
		TenantID:    tenantID,
		Platform:    domain.PlatformTikTok,
		AccessToken: "token",
		AccountRef:  "adv-123",
		Status:      domain.ConnectionStatusActive,
	}
}

func TestSyncTenant_CicloCompleto(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	rows := []domain.RawMetricRow{
		{CountryCode: "US", CampaignID: "c1", Spend: 50},
		{CountryCode: "CA", CampaignID: "c2", Spend: 20},
	}

	f.connectionRepo.EXPECT().
		ListActiveByTenant(ctx, 42).
		Return([]*domain.PlatformConnection{tiktokConnection(42)}, nil)

	f.cacheRepo.EXPECT().
		HasRowsForPlatform(ctx, 42, domain.PlatformTikTok).
		Return(true, nil)

	f.statusRepo.EXPECT().
		AcquireLock(ctx, 42, domain.PlatformTikTok, gomock.Any()).
		Return(true, nil)

	f.adapter.EXPECT().
		Fetch(ctx, gomock.Any(), gomock.Any()).
		Return(rows, nil)

	f.cacheRepo.EXPECT().
		ReplaceWindow(ctx, 42, domain.PlatformTikTok, gomock.Any(), rows).
		Return(3, nil)

	f.statusRepo.EXPECT().
		ReleaseLock(ctx, 42, domain.PlatformTikTok, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ domain.Platform, outcome domain.SyncOutcome) error {
			assert.NoError(t, outcome.Err)
			assert.Equal(t, 3, outcome.RecordsSynced)
			return nil
		})

	require.NoError(t, f.syncer.SyncTenant(ctx, 42))
}

func TestSyncTenant_LockEmDisputaPulaSemLiberar(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.connectionRepo.EXPECT().
		ListActiveByTenant(ctx, 42).
		Return([]*domain.PlatformConnection{tiktokConnection(42)}, nil)

	f.cacheRepo.EXPECT().
		HasRowsForPlatform(ctx, 42, domain.PlatformTikTok).
		Return(true, nil)

	// Outro worker já está sincronizando: nada de Fetch nem ReleaseLock
	f.statusRepo.EXPECT().
		AcquireLock(ctx, 42, domain.PlatformTikTok, gomock.Any()).
		Return(false, nil)

	require.NoError(t, f.syncer.SyncTenant(ctx, 42))
}

func TestSyncTenant_ErroNoFetchLiberaComErro(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.connectionRepo.EXPECT().
		ListActiveByTenant(ctx, 42).
		Return([]*domain.PlatformConnection{tiktokConnection(42)}, nil)

	f.cacheRepo.EXPECT().
		HasRowsForPlatform(ctx, 42, domain.PlatformTikTok).
		Return(false, nil)

	f.statusRepo.EXPECT().
		AcquireLock(ctx, 42, domain.PlatformTikTok, gomock.Any()).
		Return(true, nil)

	f.adapter.EXPECT().
		Fetch(ctx, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("api indisponível"))

	f.statusRepo.EXPECT().
		ReleaseLock(ctx, 42, domain.PlatformTikTok, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ domain.Platform, outcome domain.SyncOutcome) error {
			assert.Error(t, outcome.Err)
			assert.Zero(t, outcome.RecordsSynced)
			return nil
		})

	require.NoError(t, f.syncer.SyncTenant(ctx, 42))
}

func TestSyncTenant_PlataformaSemAdapter(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	// Só o adapter do TikTok está registrado: a conexão do Meta é pulada
	// sem calcular janela nem disputar lock
	metaConnection := &domain.PlatformConnection{
		ID:       2,
		TenantID: 42,
		Platform: domain.PlatformMeta,
		Status:   domain.ConnectionStatusActive,
	}

	f.connectionRepo.EXPECT().
		ListActiveByTenant(ctx, 42).
		Return([]*domain.PlatformConnection{metaConnection}, nil)

	require.NoError(t, f.syncer.SyncTenant(ctx, 42))
}

func TestSyncTenant_SemConexoesAtivas(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.connectionRepo.EXPECT().
		ListActiveByTenant(ctx, 42).
		Return([]*domain.PlatformConnection{}, nil)

	err := f.syncer.SyncTenant(ctx, 42)
	assert.ErrorIs(t, err, ErrNoActiveConnections)
}

func TestEnsureFirstLoad(t *testing.T) {
	t.Run("Cache já populado não dispara sincronização", func(t *testing.T) {
		f := newSyncFixture(t)
		ctx := context.Background()

		f.cacheRepo.EXPECT().
			HasAnyRows(ctx, 42).
			Return(true, nil)

		require.NoError(t, f.syncer.EnsureFirstLoad(ctx, 42))
	})

	t.Run("Tenant sem conexões não é tratado como erro", func(t *testing.T) {
		f := newSyncFixture(t)
		ctx := context.Background()

		f.cacheRepo.EXPECT().
			HasAnyRows(ctx, 42).
			Return(false, nil)

		f.connectionRepo.EXPECT().
			ListActiveByTenant(ctx, 42).
			Return(nil, nil)

		require.NoError(t, f.syncer.EnsureFirstLoad(ctx, 42))
	})
}

func TestGetSyncStatus(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	now := time.Now().UTC()
	older := now.Add(-2 * time.Hour)
	errMsg := "token expirado"

	f.statusRepo.EXPECT().ListByTenant(ctx, 42).Return([]*domain.SyncStatus{
		{Platform: domain.PlatformTikTok, Status: domain.SyncStateDone, LastSyncedAt: &now, RecordsSynced: 120},
		{Platform: domain.PlatformMeta, Status: domain.SyncStateSyncing, LastSyncedAt: &older},
		{Platform: domain.PlatformPostHog, Status: domain.SyncStateError, ErrorMessage: &errMsg},
	}, nil)

	status, err := f.syncer.GetSyncStatus(ctx, 42)
	require.NoError(t, err)

	assert.True(t, status.IsSyncing)
	assert.Equal(t, &now, status.LastSynced)
	assert.Len(t, status.Platforms, 3)
	assert.Equal(t, 120, status.Platforms[domain.PlatformTikTok].RecordsSynced)
	assert.Equal(t, domain.SyncStateError, status.Platforms[domain.PlatformPostHog].Status)
	assert.Equal(t, &errMsg, status.Platforms[domain.PlatformPostHog].ErrorMessage)
}
