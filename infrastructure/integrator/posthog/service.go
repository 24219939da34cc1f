package posthog

import (
	"context"
	"time"

	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/posthog/posthogclient"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type PostHogIntegrator struct {
	cfg    *config.Config
	Client posthogclient.Client
}

func New(cfg *config.Config, client posthogclient.Client) *PostHogIntegrator {
	return &PostHogIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PostHogIntegrator) Platform() domain.Platform {
	return domain.PlatformPostHog
}

// Fetch busca receita e quantidade de compras por país+dia. Linhas do
// PostHog não têm dimensão de campanha: alimentam apenas o cache diário por
// país.
func (s *PostHogIntegrator) Fetch(
	ctx context.Context,
	connection *domain.PlatformConnection,
	window domain.SyncWindow,
) ([]domain.RawMetricRow, error) {
	eventName := connection.Settings["event_name"]
	if eventName == "" {
		eventName = s.cfg.PostHog.DefaultEvent
	}
	host := connection.Settings["api_host"]

	revenue, err := s.Client.GetTrend(ctx, connection.AccessToken, connection.AccountRef, host, eventName, "sum", "revenue", window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": connection.TenantID,
			"event":     eventName,
			"error":     err.Error(),
		}).Error("posthog: failed to fetch revenue trend")
		return nil, err
	}

	purchases, err := s.Client.GetTrend(ctx, connection.AccessToken, connection.AccountRef, host, eventName, "total", "", window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": connection.TenantID,
			"event":     eventName,
			"error":     err.Error(),
		}).Error("posthog: failed to fetch purchases trend")
		return nil, err
	}

	// Indexa por (país, dia) para juntar receita e compras numa linha só
	type seriesKey struct {
		country string
		day     string
	}
	merged := make(map[seriesKey]*domain.RawMetricRow)
	order := make([]seriesKey, 0)

	appendSeries := func(response *posthogclient.TrendsResponse, setValue func(row *domain.RawMetricRow, value float64)) {
		for _, series := range response.Results {
			for i, day := range series.Days {
				if i >= len(series.Data) || series.Data[i] == 0 {
					continue
				}

				key := seriesKey{country: series.BreakdownValue, day: day}
				row, ok := merged[key]
				if !ok {
					date, err := time.Parse(time.DateOnly, day)
					if err != nil {
						logrus.WithField("day", day).Warn("posthog: skipping series point with unparseable date")
						continue
					}
					row = &domain.RawMetricRow{
						Date:        domain.DateOnly(date),
						CountryCode: series.BreakdownValue,
					}
					merged[key] = row
					order = append(order, key)
				}

				setValue(row, series.Data[i])
			}
		}
	}

	appendSeries(revenue, func(row *domain.RawMetricRow, value float64) { row.Revenue += value })
	appendSeries(purchases, func(row *domain.RawMetricRow, value float64) { row.Purchases += int64(value) })

	rows := make([]domain.RawMetricRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *merged[key])
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": connection.TenantID,
		"rows":      len(rows),
	}).Debug("posthog: revenue trend fetched")

	return rows, nil
}
