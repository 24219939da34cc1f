package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adtrackr/profit-sync-api/infrastructure/repository/mocks"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

func syncConfig() *config.Config {
	return &config.Config{
		MetricsSync: config.MetricsSync{
			IncrementalDays:      3,
			FirstSyncDays:        30,
			LockStaleness:        10 * time.Minute,
			MaxConcurrentTenants: 3,
		},
	}
}

func TestResolveWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockMetricCacheRepository(ctrl)

	service := &Service{
		cfg:             syncConfig(),
		cacheRepository: mockCache,
	}

	today := domain.DateOnly(time.Now().UTC())

	t.Run("Tenant com cache usa a janela incremental", func(t *testing.T) {
		mockCache.EXPECT().
			HasRowsForPlatform(gomock.Any(), 42, domain.PlatformTikTok).
			Return(true, nil)

		window, err := service.resolveWindow(context.Background(), 42, domain.PlatformTikTok)

		require.NoError(t, err)
		assert.Equal(t, today, window.End)
		assert.Equal(t, today.AddDate(0, 0, -3), window.Start)
	})

	t.Run("Tenant sem cache usa a janela de primeira carga", func(t *testing.T) {
		mockCache.EXPECT().
			HasRowsForPlatform(gomock.Any(), 42, domain.PlatformMeta).
			Return(false, nil)

		window, err := service.resolveWindow(context.Background(), 42, domain.PlatformMeta)

		require.NoError(t, err)
		assert.Equal(t, today, window.End)
		assert.Equal(t, today.AddDate(0, 0, -30), window.Start)
	})
}
