package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/lib/pq"
)

const (
	customCostsTable = "custom_costs"

	// undefined_table no Postgres
	pqUndefinedTable = pq.ErrorCode("42P01")
)

// ErrCostsTableMissing sinaliza que a tabela de custos ainda não foi
// provisionada para este ambiente. O caminho de leitura degrada para
// custo zero em vez de falhar a agregação inteira.
var ErrCostsTableMissing = errors.New("tabela de custos customizados não provisionada")

type CustomCostRepository interface {
	// ListOverlapping devolve as definições de custo do tenant cujo período
	// de vigência intersecta a janela consultada
	ListOverlapping(ctx context.Context, tenantID int, window domain.SyncWindow) ([]*domain.CustomCost, error)
}

type customCostRepository struct {
	conn *postgres.Connection
}

func NewCustomCostRepository(conn *postgres.Connection) CustomCostRepository {
	return &customCostRepository{
		conn: conn,
	}
}

func (r *customCostRepository) ListOverlapping(ctx context.Context, tenantID int, window domain.SyncWindow) ([]*domain.CustomCost, error) {
	query, args, err := squirrel.
		Select("id", "tenant_id", "name", "category", "cost_type", "currency", "amount", "percentage", "base_metric", "repeat", "repeat_interval", "start_date", "end_date", "created_at").
		From(customCostsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.LtOrEq{"start_date": window.End.Format(dateLayout)}).
		Where(squirrel.Or{
			squirrel.Eq{"end_date": nil},
			squirrel.GtOrEq{"end_date": window.Start.Format(dateLayout)},
		}).
		OrderBy("start_date ASC, id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
			return nil, ErrCostsTableMissing
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	costs := make([]*domain.CustomCost, 0)
	for rows.Next() {
		cost := &domain.CustomCost{}
		if err := rows.Scan(
			&cost.ID,
			&cost.TenantID,
			&cost.Name,
			&cost.Category,
			&cost.CostType,
			&cost.Currency,
			&cost.Amount,
			&cost.Percentage,
			&cost.BaseMetric,
			&cost.Repeat,
			&cost.RepeatInterval,
			&cost.StartDate,
			&cost.EndDate,
			&cost.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo customizado: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}
