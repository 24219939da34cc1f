package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/meta/metadomain"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
	"github.com/pkg/errors"
)

type Client interface {
	GetCampaignInsights(ctx context.Context, accessToken, accountID string, window domain.SyncWindow, after string) (*metadomain.InsightsResponse, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
	}
}

// GetCampaignInsights busca uma página de insights de campanha com breakdown
// por país e incremento diário. `after` é o cursor de paginação (vazio na
// primeira página).
func (c *MetaClient) GetCampaignInsights(
	ctx context.Context,
	accessToken string,
	accountID string,
	window domain.SyncWindow,
	after string,
) (*metadomain.InsightsResponse, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		window.Start.Format(time.DateOnly),
		window.End.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", "campaign_id,campaign_name,spend,impressions,clicks")
	params.Add("level", "campaign")
	params.Add("breakdowns", "country")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("limit", "500")
	params.Add("access_token", accessToken)
	if after != "" {
		params.Add("after", after)
	}

	requestURL := baseURL + "?" + params.Encode()

	body, err := utils.MakeRequest(requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro na requisição ao Meta")
	}

	response := &metadomain.InsightsResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do Meta")
	}

	return response, nil
}
