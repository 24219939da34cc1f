package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

const (
	tenantsTable = "tenants t"
)

type TenantRepository interface {
	// ListWithConnections devolve os tenants com pelo menos uma conexão
	// ativa, candidatos ao ciclo completo de sincronização
	ListWithConnections(ctx context.Context) ([]*domain.Tenant, error)
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) ListWithConnections(ctx context.Context) ([]*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("DISTINCT t.id, t.external_ref, t.name, t.created_at").
		From(tenantsTable).
		Join("platform_connections pc ON pc.tenant_id = t.id").
		Where(squirrel.Eq{"pc.status": domain.ConnectionStatusActive}).
		OrderBy("t.id ASC").
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

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.ExternalRef, &tenant.Name, &tenant.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}
