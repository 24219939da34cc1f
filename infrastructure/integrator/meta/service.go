package meta

import (
	"context"
	"strconv"
	"time"

	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/meta/metadomain"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

// Fetch percorre as páginas de insights de campanha do período e converte
// para as linhas normalizadas do pipeline
func (s *MetaIntegrator) Fetch(
	ctx context.Context,
	connection *domain.PlatformConnection,
	window domain.SyncWindow,
) ([]domain.RawMetricRow, error) {
	rows := make([]domain.RawMetricRow, 0)

	after := ""
	for {
		response, err := s.Client.GetCampaignInsights(ctx, connection.AccessToken, connection.AccountRef, window, after)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":   connection.TenantID,
				"account_ref": connection.AccountRef,
				"error":       err.Error(),
			}).Error("meta: failed to fetch campaign insights")
			return nil, err
		}

		for _, insight := range response.Data {
			row, ok := s.convertInsight(insight)
			if !ok {
				continue
			}
			rows = append(rows, row)
		}

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		after = response.Paging.Cursors.After
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": connection.TenantID,
		"rows":      len(rows),
	}).Debug("meta: campaign insights fetched")

	return rows, nil
}

func (s *MetaIntegrator) convertInsight(insight metadomain.CampaignInsight) (domain.RawMetricRow, bool) {
	date, err := time.Parse(time.DateOnly, insight.DateStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date_start":  insight.DateStart,
			"campaign_id": insight.CampaignID,
		}).Warn("meta: skipping insight with unparseable date")
		return domain.RawMetricRow{}, false
	}

	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": insight.CampaignID,
			"spend_value": insight.Spend,
		}).Warn("meta: error converting spend to float")
		spend = 0
	}

	impressions, _ := strconv.ParseInt(insight.Impressions, 10, 64)
	clicks, _ := strconv.ParseInt(insight.Clicks, 10, 64)

	return domain.RawMetricRow{
		Date:         domain.DateOnly(date),
		CountryCode:  insight.Country,
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		Spend:        spend,
		Impressions:  impressions,
		Clicks:       clicks,
	}, true
}
