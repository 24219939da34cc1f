package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

const (
	dailyCountryMetricsTable = "daily_country_metrics"
	campaignMetricsTable     = "campaign_metrics"

	dateLayout = "2006-01-02"
)

// CountryTotal é uma linha agregada por país do cache diário
type CountryTotal struct {
	CountryCode string
	Spend       float64
	Revenue     float64
	Impressions int64
	Clicks      int64
	Purchases   int64
}

// DailyTotal é uma linha agregada por dia do cache diário
type DailyTotal struct {
	Date    time.Time
	Spend   float64
	Revenue float64
}

// CampaignTotal é uma linha agregada da tabela de detalhe por campanha.
// CountryCode fica vazio quando a agregação não inclui a dimensão de país.
type CampaignTotal struct {
	Platform     domain.Platform
	CampaignID   string
	CampaignName string
	CountryCode  string
	Spend        float64
	Impressions  int64
	Clicks       int64
}

// MetricCacheRepository guarda as duas tabelas normalizadas do cache e
// implementa o merge de janela como unidade atômica: apagar a janela e
// regravar as linhas recebidas, tudo ou nada.
type MetricCacheRepository interface {
	HasAnyRows(ctx context.Context, tenantID int) (bool, error)
	HasRowsForPlatform(ctx context.Context, tenantID int, platform domain.Platform) (bool, error)
	ReplaceWindow(ctx context.Context, tenantID int, platform domain.Platform, window domain.SyncWindow, rows []domain.RawMetricRow) (int, error)
	SumByCountry(ctx context.Context, tenantID int, window domain.SyncWindow) ([]CountryTotal, error)
	SumByDate(ctx context.Context, tenantID int, window domain.SyncWindow) ([]DailyTotal, error)
	SumByPlatformCampaign(ctx context.Context, tenantID int, window domain.SyncWindow) ([]CampaignTotal, error)
	SumByCountryCampaign(ctx context.Context, tenantID int, window domain.SyncWindow) ([]CampaignTotal, error)
}

type metricCacheRepository struct {
	conn *postgres.Connection
}

func NewMetricCacheRepository(conn *postgres.Connection) MetricCacheRepository {
	return &metricCacheRepository{
		conn: conn,
	}
}

func (r *metricCacheRepository) HasAnyRows(ctx context.Context, tenantID int) (bool, error) {
	return r.hasRows(ctx, squirrel.Eq{"tenant_id": tenantID})
}

func (r *metricCacheRepository) HasRowsForPlatform(ctx context.Context, tenantID int, platform domain.Platform) (bool, error) {
	return r.hasRows(ctx, squirrel.Eq{"tenant_id": tenantID, "platform": platform})
}

func (r *metricCacheRepository) hasRows(ctx context.Context, where squirrel.Eq) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(dailyCountryMetricsTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar existência de cache: %w", err)
	}

	return true, nil
}

// ReplaceWindow substitui a janela inteira do par (tenant, plataforma):
// apaga as linhas das duas tabelas dentro do intervalo e regrava a partir
// das linhas normalizadas do adaptador. Executa em uma única transação para
// que leitores concorrentes nunca observem a janela meio apagada.
func (r *metricCacheRepository) ReplaceWindow(
	ctx context.Context,
	tenantID int,
	platform domain.Platform,
	window domain.SyncWindow,
	rows []domain.RawMetricRow,
) (int, error) {
	recordCount := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := r.deleteWindow(ctx, tx, dailyCountryMetricsTable, tenantID, platform, window); err != nil {
			return err
		}
		if err := r.deleteWindow(ctx, tx, campaignMetricsTable, tenantID, platform, window); err != nil {
			return err
		}

		// Acumula em memória por (país, dia): um mesmo país+dia recebe a
		// contribuição de várias campanhas e os campos numéricos somam
		type dailyKey struct {
			country string
			date    string
		}
		daily := make(map[dailyKey]*domain.DailyCountryMetric)
		order := make([]dailyKey, 0)

		start := domain.DateOnly(window.Start)
		end := domain.DateOnly(window.End)

		for _, row := range rows {
			// Linha fora da janela escaparia do delete acima e somaria em
			// dobro no próximo sync; é descartada, nunca regravada
			date := domain.DateOnly(row.Date)
			if date.Before(start) || date.After(end) {
				continue
			}

			key := dailyKey{
				country: domain.NormalizeCountryCode(row.CountryCode),
				date:    date.Format(dateLayout),
			}

			metric, ok := daily[key]
			if !ok {
				metric = &domain.DailyCountryMetric{
					TenantID:    tenantID,
					CountryCode: key.country,
					Platform:    platform,
				}
				daily[key] = metric
				order = append(order, key)
			}

			metric.Spend += row.Spend
			metric.Impressions += row.Impressions
			metric.Clicks += row.Clicks
			metric.Revenue += row.Revenue
			metric.Purchases += row.Purchases
		}

		for _, key := range order {
			if err := r.upsertDailyCountry(ctx, tx, key.date, daily[key]); err != nil {
				return err
			}
			recordCount++
		}

		// Linhas com campanha vão também para a tabela de detalhe, com
		// semântica last-write por chave exata (linhas de receita do
		// PostHog não têm campanha e ficam só no cache por país)
		for _, row := range rows {
			if !row.HasCampaign() {
				continue
			}
			date := domain.DateOnly(row.Date)
			if date.Before(start) || date.After(end) {
				continue
			}
			if err := r.upsertCampaign(ctx, tx, tenantID, platform, row); err != nil {
				return err
			}
			recordCount++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return recordCount, nil
}

func (r *metricCacheRepository) deleteWindow(
	ctx context.Context,
	tx *sql.Tx,
	table string,
	tenantID int,
	platform domain.Platform,
	window domain.SyncWindow,
) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"tenant_id": tenantID, "platform": platform}).
		Where(squirrel.GtOrEq{"date": window.Start.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"date": window.End.Format(dateLayout)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao apagar janela de %s: %w", table, err)
	}

	return nil
}

func (r *metricCacheRepository) upsertDailyCountry(
	ctx context.Context,
	tx *sql.Tx,
	date string,
	metric *domain.DailyCountryMetric,
) error {
	query, args, err := squirrel.
		Insert(dailyCountryMetricsTable).
		Columns("tenant_id", "country_code", "date", "platform", "spend", "impressions", "clicks", "revenue", "purchases").
		Values(
			metric.TenantID,
			metric.CountryCode,
			date,
			metric.Platform,
			metric.Spend,
			metric.Impressions,
			metric.Clicks,
			metric.Revenue,
			metric.Purchases,
		).
		Suffix(`
			ON CONFLICT (tenant_id, country_code, date, platform) DO UPDATE SET
				spend = daily_country_metrics.spend + EXCLUDED.spend,
				impressions = daily_country_metrics.impressions + EXCLUDED.impressions,
				clicks = daily_country_metrics.clicks + EXCLUDED.clicks,
				revenue = daily_country_metrics.revenue + EXCLUDED.revenue,
				purchases = daily_country_metrics.purchases + EXCLUDED.purchases,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar métrica diária por país: %w", err)
	}

	return nil
}

func (r *metricCacheRepository) upsertCampaign(
	ctx context.Context,
	tx *sql.Tx,
	tenantID int,
	platform domain.Platform,
	row domain.RawMetricRow,
) error {
	query, args, err := squirrel.
		Insert(campaignMetricsTable).
		Columns("tenant_id", "platform", "campaign_id", "campaign_name", "country_code", "date", "spend", "impressions", "clicks", "revenue", "purchases").
		Values(
			tenantID,
			platform,
			row.CampaignID,
			row.CampaignName,
			domain.NormalizeCountryCode(row.CountryCode),
			domain.DateOnly(row.Date).Format(dateLayout),
			row.Spend,
			row.Impressions,
			row.Clicks,
			row.Revenue,
			row.Purchases,
		).
		Suffix(`
			ON CONFLICT (tenant_id, platform, campaign_id, country_code, date) DO UPDATE SET
				campaign_name = EXCLUDED.campaign_name,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				revenue = EXCLUDED.revenue,
				purchases = EXCLUDED.purchases,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar métrica de campanha: %w", err)
	}

	return nil
}

func (r *metricCacheRepository) SumByCountry(ctx context.Context, tenantID int, window domain.SyncWindow) ([]CountryTotal, error) {
	query, args, err := squirrel.
		Select(
			"country_code",
			"COALESCE(SUM(spend), 0)",
			"COALESCE(SUM(revenue), 0)",
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(purchases), 0)",
		).
		From(dailyCountryMetricsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": window.Start.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"date": window.End.Format(dateLayout)}).
		GroupBy("country_code").
		OrderBy("SUM(spend) DESC").
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

	totals := make([]CountryTotal, 0)
	for rows.Next() {
		var total CountryTotal
		if err := rows.Scan(
			&total.CountryCode,
			&total.Spend,
			&total.Revenue,
			&total.Impressions,
			&total.Clicks,
			&total.Purchases,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por país: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *metricCacheRepository) SumByDate(ctx context.Context, tenantID int, window domain.SyncWindow) ([]DailyTotal, error) {
	query, args, err := squirrel.
		Select("date", "COALESCE(SUM(spend), 0)", "COALESCE(SUM(revenue), 0)").
		From(dailyCountryMetricsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": window.Start.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"date": window.End.Format(dateLayout)}).
		GroupBy("date").
		OrderBy("date ASC").
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

	totals := make([]DailyTotal, 0)
	for rows.Next() {
		var total DailyTotal
		if err := rows.Scan(&total.Date, &total.Spend, &total.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por dia: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *metricCacheRepository) SumByPlatformCampaign(ctx context.Context, tenantID int, window domain.SyncWindow) ([]CampaignTotal, error) {
	return r.sumCampaigns(ctx, tenantID, window, false)
}

func (r *metricCacheRepository) SumByCountryCampaign(ctx context.Context, tenantID int, window domain.SyncWindow) ([]CampaignTotal, error) {
	return r.sumCampaigns(ctx, tenantID, window, true)
}

func (r *metricCacheRepository) sumCampaigns(ctx context.Context, tenantID int, window domain.SyncWindow, byCountry bool) ([]CampaignTotal, error) {
	columns := []string{"platform", "campaign_id", "campaign_name"}
	if byCountry {
		columns = append(columns, "country_code")
	}

	selected := append([]string{}, columns...)
	selected = append(selected,
		"COALESCE(SUM(spend), 0)",
		"COALESCE(SUM(impressions), 0)",
		"COALESCE(SUM(clicks), 0)",
	)

	query, args, err := squirrel.
		Select(selected...).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": window.Start.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"date": window.End.Format(dateLayout)}).
		GroupBy(columns...).
		OrderBy("SUM(spend) DESC").
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

	totals := make([]CampaignTotal, 0)
	for rows.Next() {
		var total CampaignTotal

		dest := []interface{}{&total.Platform, &total.CampaignID, &total.CampaignName}
		if byCountry {
			dest = append(dest, &total.CountryCode)
		}
		dest = append(dest, &total.Spend, &total.Impressions, &total.Clicks)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por campanha: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}
