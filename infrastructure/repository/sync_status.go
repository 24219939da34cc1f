package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

const (
	syncStatusesTable = "sync_statuses"
)

// SyncStatusRepository implementa o lease lock por (tenant, plataforma).
// O estado fica persistido para que instâncias diferentes do serviço (job
// agendado e gatilho manual) compartilhem a exclusão mútua; um lock de
// processo não bastaria.
type SyncStatusRepository interface {
	// AcquireLock tenta assumir a sincronização. A aquisição é um único
	// statement condicional: vence quem gravar status=syncing; um registro
	// syncing só é tomado de volta se started_at for mais antigo que o
	// limite de staleness (worker que morreu sem liberar).
	AcquireLock(ctx context.Context, tenantID int, platform domain.Platform, staleness time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, tenantID int, platform domain.Platform, outcome domain.SyncOutcome) error
	ListByTenant(ctx context.Context, tenantID int) ([]*domain.SyncStatus, error)
}

type syncStatusRepository struct {
	conn *postgres.Connection
}

func NewSyncStatusRepository(conn *postgres.Connection) SyncStatusRepository {
	return &syncStatusRepository{
		conn: conn,
	}
}

func (r *syncStatusRepository) AcquireLock(
	ctx context.Context,
	tenantID int,
	platform domain.Platform,
	staleness time.Duration,
) (bool, error) {
	query, args, err := squirrel.
		Insert(syncStatusesTable).
		Columns("tenant_id", "platform", "status", "started_at", "error_message", "updated_at").
		Values(tenantID, platform, domain.SyncStateSyncing, squirrel.Expr("NOW()"), nil, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (tenant_id, platform) DO UPDATE SET
				status = EXCLUDED.status,
				started_at = NOW(),
				error_message = NULL,
				updated_at = NOW()
			WHERE sync_statuses.status <> 'syncing'
				OR sync_statuses.started_at IS NULL
				OR sync_statuses.started_at < NOW() - (? * INTERVAL '1 second')
		`, int(staleness.Seconds())).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao adquirir lock de sincronização: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *syncStatusRepository) ReleaseLock(
	ctx context.Context,
	tenantID int,
	platform domain.Platform,
	outcome domain.SyncOutcome,
) error {
	builder := squirrel.
		Update(syncStatusesTable).
		Set("records_synced", outcome.RecordsSynced).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_id": tenantID, "platform": platform})

	if outcome.Err != nil {
		builder = builder.
			Set("status", domain.SyncStateError).
			Set("error_message", outcome.Err.Error())
	} else {
		builder = builder.
			Set("status", domain.SyncStateDone).
			Set("error_message", nil).
			Set("last_synced_at", squirrel.Expr("NOW()"))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao liberar lock de sincronização: %w", err)
	}

	return nil
}

func (r *syncStatusRepository) ListByTenant(ctx context.Context, tenantID int) ([]*domain.SyncStatus, error) {
	query, args, err := squirrel.
		Select("id", "tenant_id", "platform", "status", "started_at", "last_synced_at", "error_message", "records_synced", "updated_at").
		From(syncStatusesTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	statuses := make([]*domain.SyncStatus, 0)
	for rows.Next() {
		status := &domain.SyncStatus{}
		if err := rows.Scan(
			&status.ID,
			&status.TenantID,
			&status.Platform,
			&status.Status,
			&status.StartedAt,
			&status.LastSyncedAt,
			&status.ErrorMessage,
			&status.RecordsSynced,
			&status.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear status de sincronização: %w", err)
		}
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return statuses, nil
}
