package posthogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
	"github.com/pkg/errors"
)

// TrendsResponse é a resposta do endpoint de trends do PostHog com
// breakdown por país; cada série traz um valor por dia
type TrendsResponse struct {
	Results []TrendSeries `json:"results"`
}

type TrendSeries struct {
	BreakdownValue string    `json:"breakdown_value"`
	Data           []float64 `json:"data"`
	Days           []string  `json:"days"`
}

type Client interface {
	// GetTrend executa uma consulta de trends diária do evento, quebrada por
	// país. `math` escolhe a agregação: "sum" de uma propriedade (receita)
	// ou "total" (contagem de compras).
	GetTrend(ctx context.Context, apiKey, projectID, host, eventName, math, mathProperty string, window domain.SyncWindow) (*TrendsResponse, error)
}

type PostHogClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PostHogClient{
		Cfg: cfg,
	}
}

func (c *PostHogClient) GetTrend(
	ctx context.Context,
	apiKey string,
	projectID string,
	host string,
	eventName string,
	math string,
	mathProperty string,
	window domain.SyncWindow,
) (*TrendsResponse, error) {
	if host == "" {
		host = c.Cfg.PostHog.BaseURL
	}

	events := fmt.Sprintf(`[{"id":%q,"type":"events","math":%q,"math_property":%q}]`, eventName, math, mathProperty)

	params := url.Values{}
	params.Add("events", events)
	params.Add("breakdown", "$geoip_country_code")
	params.Add("breakdown_type", "event")
	params.Add("interval", "day")
	params.Add("date_from", window.Start.Format(time.DateOnly))
	params.Add("date_to", window.End.Format(time.DateOnly))

	requestURL := fmt.Sprintf("%s/api/projects/%s/insights/trend/?%s", host, projectID, params.Encode())

	body, err := utils.MakeRequest(requestURL, map[string]string{
		"Authorization": "Bearer " + apiKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro na requisição ao PostHog")
	}

	response := &TrendsResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do PostHog")
	}

	return response, nil
}
