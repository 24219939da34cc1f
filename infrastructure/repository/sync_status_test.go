package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

func newSyncStatusRepo(t *testing.T) (SyncStatusRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSyncStatusRepository(postgres.NewConnectionFromDB(db)), mock
}

func TestAcquireLock(t *testing.T) {
	ctx := context.Background()

	t.Run("adquire quando não há disputa", func(t *testing.T) {
		repo, mock := newSyncStatusRepo(t)

		mock.ExpectExec("INSERT INTO sync_statuses").
			WillReturnResult(sqlmock.NewResult(0, 1))

		acquired, err := repo.AcquireLock(ctx, 7, domain.PlatformTikTok, 10*time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock em disputa não afeta linha alguma", func(t *testing.T) {
		repo, mock := newSyncStatusRepo(t)

		// O upsert condicional não atualiza um registro syncing recente:
		// zero linhas afetadas significa que outro worker está no ciclo
		mock.ExpectExec("INSERT INTO sync_statuses").
			WillReturnResult(sqlmock.NewResult(0, 0))

		acquired, err := repo.AcquireLock(ctx, 7, domain.PlatformTikTok, 10*time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("erro do banco propaga", func(t *testing.T) {
		repo, mock := newSyncStatusRepo(t)

		mock.ExpectExec("INSERT INTO sync_statuses").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.AcquireLock(ctx, 7, domain.PlatformTikTok, 10*time.Minute)
		assert.Error(t, err)
	})
}

func TestReleaseLock(t *testing.T) {
	ctx := context.Background()

	t.Run("sucesso grava done e last_synced_at", func(t *testing.T) {
		repo, mock := newSyncStatusRepo(t)

		mock.ExpectExec("UPDATE sync_statuses").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ReleaseLock(ctx, 7, domain.PlatformTikTok, domain.SyncOutcome{RecordsSynced: 42})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha grava error com a mensagem", func(t *testing.T) {
		repo, mock := newSyncStatusRepo(t)

		mock.ExpectExec("UPDATE sync_statuses").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ReleaseLock(ctx, 7, domain.PlatformTikTok, domain.SyncOutcome{
			Err: errors.New("token expirado"),
		})
		require.NoError(t, err)
	})
}

func TestListByTenant(t *testing.T) {
	ctx := context.Background()
	repo, mock := newSyncStatusRepo(t)

	now := time.Now().UTC()
	columns := []string{"id", "tenant_id", "platform", "status", "started_at", "last_synced_at", "error_message", "records_synced", "updated_at"}

	mock.ExpectQuery("SELECT .+ FROM sync_statuses").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 7, "meta", "done", now, now, nil, 30, now).
			AddRow(2, 7, "tiktok", "syncing", now, nil, nil, 0, now))

	statuses, err := repo.ListByTenant(ctx, 7)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, domain.PlatformMeta, statuses[0].Platform)
	assert.Equal(t, domain.SyncStateDone, statuses[0].Status)
	assert.Equal(t, 30, statuses[0].RecordsSynced)
	assert.Nil(t, statuses[0].ErrorMessage)

	assert.Equal(t, domain.SyncStateSyncing, statuses[1].Status)
	assert.Nil(t, statuses[1].LastSyncedAt)
}
