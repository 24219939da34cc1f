package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

const (
	connectionsTable = "platform_connections pc"
)

// ConnectionRepository é somente leitura por aqui: as conexões são criadas e
// mantidas pela superfície de integrações
type ConnectionRepository interface {
	ListActiveByTenant(ctx context.Context, tenantID int) ([]*domain.PlatformConnection, error)
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

func (r *connectionRepository) ListActiveByTenant(ctx context.Context, tenantID int) ([]*domain.PlatformConnection, error) {
	query, args, err := squirrel.
		Select("pc.id, pc.tenant_id, pc.platform, pc.access_token, pc.account_ref, pc.settings, pc.status, pc.created_at, pc.updated_at").
		From(connectionsTable).
		Where(squirrel.Eq{"pc.tenant_id": tenantID, "pc.status": domain.ConnectionStatusActive}).
		OrderBy("pc.platform ASC").
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

	connections := make([]*domain.PlatformConnection, 0)
	for rows.Next() {
		connection := &domain.PlatformConnection{}
		var settingsJSON []byte

		if err := rows.Scan(
			&connection.ID,
			&connection.TenantID,
			&connection.Platform,
			&connection.AccessToken,
			&connection.AccountRef,
			&settingsJSON,
			&connection.Status,
			&connection.CreatedAt,
			&connection.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
		}

		if settingsJSON != nil {
			if err := json.Unmarshal(settingsJSON, &connection.Settings); err != nil {
				return nil, fmt.Errorf("erro ao deserializar settings da conexão: %w", err)
			}
		}

		connections = append(connections, connection)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}
