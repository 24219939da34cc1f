package tiktokclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/tiktok/tiktokdomain"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
	"github.com/pkg/errors"
)

type Client interface {
	GetCampaignReport(ctx context.Context, accessToken, advertiserID string, window domain.SyncWindow, page int) (*tiktokdomain.ReportResponse, error)
}

type TikTokClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TikTokClient{
		Cfg: cfg,
	}
}

// GetCampaignReport busca o relatório integrado de uma página, quebrado por
// campanha, país e dia
func (c *TikTokClient) GetCampaignReport(
	ctx context.Context,
	accessToken string,
	advertiserID string,
	window domain.SyncWindow,
	page int,
) (*tiktokdomain.ReportResponse, error) {
	params := url.Values{}
	params.Add("advertiser_id", advertiserID)
	params.Add("report_type", "AUDIENCE")
	params.Add("data_level", "AUCTION_CAMPAIGN")
	params.Add("dimensions", `["campaign_id","country_code","stat_time_day"]`)
	params.Add("metrics", `["spend","impressions","clicks","campaign_name"]`)
	params.Add("start_date", window.Start.Format(time.DateOnly))
	params.Add("end_date", window.End.Format(time.DateOnly))
	params.Add("page", fmt.Sprintf("%d", page))
	params.Add("page_size", "1000")

	requestURL := fmt.Sprintf("%s/report/integrated/get/?%s", c.Cfg.TikTok.URL, params.Encode())

	body, err := utils.MakeRequest(requestURL, map[string]string{
		"Access-Token": accessToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro na requisição ao TikTok")
	}

	response := &tiktokdomain.ReportResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do TikTok")
	}

	if response.Code != 0 {
		return nil, errors.Errorf("TikTok respondeu código %d: %s", response.Code, response.Message)
	}

	return response, nil
}
