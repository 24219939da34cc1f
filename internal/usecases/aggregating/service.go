package aggregating

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adtrackr/profit-sync-api/infrastructure/repository"
	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/internal/usecases/prorating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/syncing"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
)

// Aggregator monta o payload completo do dashboard a partir do cache de
// métricas, aplicando os limites do plano do tenant
type Aggregator interface {
	Aggregate(ctx context.Context, tenantID int, start, end time.Time) (*domain.MetricsResponse, error)
	// PreviewCosts calcula apenas a proração de custos da janela, sem o
	// restante do agregado
	PreviewCosts(ctx context.Context, tenantID int, start, end time.Time) (*domain.CostProration, error)
}

type Service struct {
	cacheRepository        repository.MetricCacheRepository
	costRepository         repository.CustomCostRepository
	subscriptionRepository repository.SubscriptionRepository
	syncer                 syncing.Syncer
}

func NewService(
	cacheRepo repository.MetricCacheRepository,
	costRepo repository.CustomCostRepository,
	subscriptionRepo repository.SubscriptionRepository,
	syncer syncing.Syncer,
) Aggregator {
	return &Service{
		cacheRepository:        cacheRepo,
		costRepository:         costRepo,
		subscriptionRepository: subscriptionRepo,
		syncer:                 syncer,
	}
}

// Aggregate executa o caminho de leitura completo: bootstrap da primeira
// carga, clamp de retenção do plano, agregações do cache e proração de
// custos, tudo sobre a mesma janela.
func (s *Service) Aggregate(ctx context.Context, tenantID int, start, end time.Time) (*domain.MetricsResponse, error) {
	logger := logrus.WithField("tenant_id", tenantID)

	start = domain.DateOnly(start)
	end = domain.DateOnly(end)

	// Primeira carga síncrona, best-effort: a leitura segue mesmo se a
	// sincronização falhar
	if s.syncer != nil {
		if err := s.syncer.EnsureFirstLoad(ctx, tenantID); err != nil {
			logger.WithError(err).Warn("Primeira carga de métricas falhou, seguindo com o cache atual")
		}
	}

	limits, err := s.subscriptionRepository.GetLimits(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	response := &domain.MetricsResponse{
		StartDate: start,
		EndDate:   end,
	}

	if !limits.UnlimitedRetention() {
		floor := domain.DateOnly(time.Now().UTC()).AddDate(0, 0, -limits.DataRetentionDays)
		if start.Before(floor) {
			start = floor
			response.StartDate = floor
			response.DataRetentionLimit = &floor
		}
	}

	window := domain.SyncWindow{Start: start, End: end}

	countries, err := s.cacheRepository.SumByCountry(ctx, tenantID, window)
	if err != nil {
		return nil, err
	}

	platformCampaigns, err := s.cacheRepository.SumByPlatformCampaign(ctx, tenantID, window)
	if err != nil {
		return nil, err
	}

	countryCampaigns, err := s.cacheRepository.SumByCountryCampaign(ctx, tenantID, window)
	if err != nil {
		return nil, err
	}

	dailyTotals, err := s.cacheRepository.SumByDate(ctx, tenantID, window)
	if err != nil {
		return nil, err
	}

	response.Countries = buildCountrySummaries(countries)
	response.Platforms = buildPlatformBreakdowns(platformCampaigns, limits.CampaignPL)
	response.CountryCampaigns = buildCountryCampaigns(countryCampaigns, limits.CampaignPL)
	response.TimeSeries = buildTimeSeries(dailyTotals)

	summary, unattributed := buildSummary(countries, platformCampaigns)
	response.UnattributedSpend = unattributed

	proration := s.prorateCosts(ctx, tenantID, window, summary, response.Platforms, logger)
	response.CustomCosts = proration

	summary.NetProfit = utils.RoundWithTwoDecimalPlace(summary.TotalProfit - proration.Total)
	response.Summary = summary

	return response, nil
}

func (s *Service) PreviewCosts(ctx context.Context, tenantID int, start, end time.Time) (*domain.CostProration, error) {
	response, err := s.Aggregate(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	return &response.CustomCosts, nil
}

// prorateCosts degrada para custo zero quando a tabela de custos ainda não
// existe no banco do tenant; qualquer outra falha também não derruba o
// agregado, só o detalhamento de custos.
func (s *Service) prorateCosts(
	ctx context.Context,
	tenantID int,
	window domain.SyncWindow,
	summary domain.MetricsSummary,
	platforms map[domain.Platform]domain.PlatformBreakdown,
	logger *logrus.Entry,
) domain.CostProration {
	empty := domain.CostProration{Breakdown: []domain.CostContribution{}}

	costs, err := s.costRepository.ListOverlapping(ctx, tenantID, window)
	if err != nil {
		if errors.Is(err, repository.ErrCostsTableMissing) {
			logger.Warn("Tabela de custos customizados ausente, prosseguindo com custo zero")
		} else {
			logger.WithError(err).Error("Erro ao listar custos customizados, prosseguindo com custo zero")
		}
		return empty
	}

	if len(costs) == 0 {
		return empty
	}

	spendByPlatform := make(map[domain.Platform]float64, len(platforms))
	for platform, breakdown := range platforms {
		spendByPlatform[platform] = breakdown.TotalSpend
	}

	return prorating.Prorate(costs, window, prorating.BaseTotals{
		Revenue:         summary.TotalRevenue,
		Profit:          summary.TotalProfit,
		TotalAdSpend:    summary.TotalSpend,
		SpendByPlatform: spendByPlatform,
	})
}

func buildCountrySummaries(totals []repository.CountryTotal) []domain.CountrySummary {
	summaries := make([]domain.CountrySummary, 0, len(totals))

	for _, total := range totals {
		spend := utils.RoundWithTwoDecimalPlace(total.Spend)
		revenue := utils.RoundWithTwoDecimalPlace(total.Revenue)

		summaries = append(summaries, domain.CountrySummary{
			CountryCode: total.CountryCode,
			Spend:       spend,
			Revenue:     revenue,
			Profit:      utils.RoundWithTwoDecimalPlace(revenue - spend),
			ROAS:        utils.SafeROAS(revenue, spend),
			Purchases:   total.Purchases,
		})
	}

	// Países com mais gasto primeiro, para a tabela do dashboard
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Spend > summaries[j].Spend
	})

	return summaries
}

func buildPlatformBreakdowns(totals []repository.CampaignTotal, campaignPL bool) map[domain.Platform]domain.PlatformBreakdown {
	breakdowns := make(map[domain.Platform]domain.PlatformBreakdown)

	for _, total := range totals {
		// Fontes de receita não carregam gasto de mídia; só plataformas
		// de anúncio entram no quadro por plataforma
		if total.Platform.IsRevenueSource() {
			continue
		}

		breakdown, ok := breakdowns[total.Platform]
		if !ok {
			breakdown = domain.PlatformBreakdown{
				Platform:  total.Platform,
				Campaigns: []domain.CampaignSummary{},
				Gated:     !campaignPL,
			}
		}

		breakdown.TotalSpend += total.Spend

		// O total da plataforma permanece visível mesmo sem P&L por
		// campanha no plano; só a lista de campanhas é omitida
		if campaignPL {
			breakdown.Campaigns = append(breakdown.Campaigns, domain.CampaignSummary{
				CampaignID:   total.CampaignID,
				CampaignName: total.CampaignName,
				Spend:        utils.RoundWithTwoDecimalPlace(total.Spend),
				Impressions:  total.Impressions,
				Clicks:       total.Clicks,
			})
		}

		breakdowns[total.Platform] = breakdown
	}

	// Arredonda uma única vez por plataforma para não acumular erro
	// de arredondamento a cada campanha somada
	for platform, breakdown := range breakdowns {
		breakdown.TotalSpend = utils.RoundWithTwoDecimalPlace(breakdown.TotalSpend)
		breakdowns[platform] = breakdown
	}

	return breakdowns
}

func buildCountryCampaigns(totals []repository.CampaignTotal, campaignPL bool) map[string][]domain.CampaignSummary {
	byCountry := make(map[string][]domain.CampaignSummary)
	if !campaignPL {
		return byCountry
	}

	for _, total := range totals {
		byCountry[total.CountryCode] = append(byCountry[total.CountryCode], domain.CampaignSummary{
			CampaignID:   total.CampaignID,
			CampaignName: total.CampaignName,
			Spend:        utils.RoundWithTwoDecimalPlace(total.Spend),
			Impressions:  total.Impressions,
			Clicks:       total.Clicks,
		})
	}

	return byCountry
}

func buildTimeSeries(totals []repository.DailyTotal) []domain.TimeSeriesPoint {
	points := make([]domain.TimeSeriesPoint, 0, len(totals))

	for _, total := range totals {
		spend := utils.RoundWithTwoDecimalPlace(total.Spend)
		revenue := utils.RoundWithTwoDecimalPlace(total.Revenue)

		points = append(points, domain.TimeSeriesPoint{
			Date:    total.Date,
			Spend:   spend,
			Revenue: revenue,
			Profit:  utils.RoundWithTwoDecimalPlace(revenue - spend),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// buildSummary soma os totais da janela. O gasto total é o maior entre a
// soma por país e a soma por campanha: plataformas sem breakdown de país só
// populam a tabela de campanhas, e a diferença positiva vira gasto não
// atribuído em vez de dupla contagem.
func buildSummary(countries []repository.CountryTotal, campaigns []repository.CampaignTotal) (domain.MetricsSummary, float64) {
	var summary domain.MetricsSummary

	countrySpend := 0.0
	for _, total := range countries {
		countrySpend += total.Spend
		summary.TotalRevenue += total.Revenue
		summary.TotalPurchases += total.Purchases
		summary.TotalImpressions += total.Impressions
		summary.TotalClicks += total.Clicks
	}

	campaignSpend := 0.0
	for _, total := range campaigns {
		campaignSpend += total.Spend
	}

	totalSpend := countrySpend
	unattributed := 0.0
	if campaignSpend > countrySpend {
		totalSpend = campaignSpend
		unattributed = utils.RoundWithTwoDecimalPlace(campaignSpend - countrySpend)
	}

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(totalSpend)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalProfit = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue - summary.TotalSpend)
	summary.ROAS = utils.SafeROAS(summary.TotalRevenue, summary.TotalSpend)

	return summary, unattributed
}
