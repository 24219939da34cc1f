package tiktok

import (
	"context"
	"strconv"
	"time"

	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/tiktok/tiktokdomain"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// statTimeLayout é o formato de stat_time_day nos relatórios do TikTok
const statTimeLayout = "2006-01-02 15:04:05"

type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TikTokIntegrator) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// Fetch busca o gasto por campanha+país+dia da conta conectada. Resultado
// vazio não é erro; erro só acontece em falha de transporte ou autenticação.
func (s *TikTokIntegrator) Fetch(
	ctx context.Context,
	connection *domain.PlatformConnection,
	window domain.SyncWindow,
) ([]domain.RawMetricRow, error) {
	rows := make([]domain.RawMetricRow, 0)

	page := 1
	for {
		response, err := s.Client.GetCampaignReport(ctx, connection.AccessToken, connection.AccountRef, window, page)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":   connection.TenantID,
				"account_ref": connection.AccountRef,
				"page":        page,
				"error":       err.Error(),
			}).Error("tiktok: failed to fetch campaign report")
			return nil, err
		}

		for _, reportRow := range response.Data.List {
			row, ok := s.convertRow(reportRow)
			if !ok {
				continue
			}
			rows = append(rows, row)
		}

		if page >= response.Data.PageInfo.TotalPage {
			break
		}
		page++
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": connection.TenantID,
		"rows":      len(rows),
	}).Debug("tiktok: campaign report fetched")

	return rows, nil
}

func (s *TikTokIntegrator) convertRow(reportRow tiktokdomain.ReportRow) (domain.RawMetricRow, bool) {
	date, err := time.Parse(statTimeLayout, reportRow.Dimensions.StatTimeDay)
	if err != nil {
		// Algumas contas devolvem só a data, sem hora
		date, err = time.Parse(time.DateOnly, reportRow.Dimensions.StatTimeDay)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"stat_time_day": reportRow.Dimensions.StatTimeDay,
				"campaign_id":   reportRow.Dimensions.CampaignID,
			}).Warn("tiktok: skipping row with unparseable date")
			return domain.RawMetricRow{}, false
		}
	}

	spend, err := strconv.ParseFloat(reportRow.Metrics.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": reportRow.Dimensions.CampaignID,
			"spend_value": reportRow.Metrics.Spend,
		}).Warn("tiktok: error converting spend to float")
		spend = 0
	}

	impressions, _ := strconv.ParseInt(reportRow.Metrics.Impressions, 10, 64)
	clicks, _ := strconv.ParseInt(reportRow.Metrics.Clicks, 10, 64)

	return domain.RawMetricRow{
		Date:         domain.DateOnly(date),
		CountryCode:  reportRow.Dimensions.CountryCode,
		CampaignID:   reportRow.Dimensions.CampaignID,
		CampaignName: reportRow.Metrics.CampaignName,
		Spend:        spend,
		Impressions:  impressions,
		Clicks:       clicks,
	}, true
}
