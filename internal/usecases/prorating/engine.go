package prorating

import (
	"time"

	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
)

// BaseTotals são os agregados já calculados da janela consultada. Custos
// variáveis derivam destes valores; o motor nunca reconsulta o cache.
type BaseTotals struct {
	Revenue         float64
	Profit          float64
	TotalAdSpend    float64
	SpendByPlatform map[domain.Platform]float64
}

// Prorate calcula a parcela de cada definição de custo dentro da janela.
// Cada parcela é arredondada para centavos antes de somar; parcelas nulas ou
// negativas ficam fora do detalhamento. O motor não converte moeda: cada
// item reporta a própria moeda configurada.
func Prorate(costs []*domain.CustomCost, window domain.SyncWindow, totals BaseTotals) domain.CostProration {
	result := domain.CostProration{
		Breakdown: []domain.CostContribution{},
	}

	for _, cost := range costs {
		contribution := utils.RoundWithTwoDecimalPlace(contributionFor(cost, window, totals))
		if contribution <= 0 {
			continue
		}

		result.Breakdown = append(result.Breakdown, domain.CostContribution{
			CostID:         cost.ID,
			Name:           cost.Name,
			Category:       cost.Category,
			CostType:       cost.CostType,
			Currency:       cost.Currency,
			ConfiguredAmt:  cost.Amount,
			Percentage:     cost.Percentage,
			BaseMetric:     cost.BaseMetric,
			RepeatInterval: cost.RepeatInterval,
			Contribution:   contribution,
		})

		result.Total += contribution
	}

	result.Total = utils.RoundWithTwoDecimalPlace(result.Total)

	return result
}

func contributionFor(cost *domain.CustomCost, window domain.SyncWindow, totals BaseTotals) float64 {
	if cost.CostType == domain.CostTypeVariable {
		return cost.Percentage / 100 * baseMetricValue(cost.BaseMetric, totals)
	}

	if !cost.Repeat || cost.RepeatInterval == nil {
		return prorateSingle(cost, window)
	}

	overlapStart, overlapEnd, ok := overlap(cost, window)
	if !ok {
		return 0
	}

	overlapDays := utils.DaysBetween(overlapStart, overlapEnd)

	switch *cost.RepeatInterval {
	case domain.RepeatDaily:
		return cost.Amount * float64(overlapDays)
	case domain.RepeatWeekly:
		return cost.Amount / 7 * float64(overlapDays)
	case domain.RepeatMonthly:
		return prorateMonthly(cost.Amount, overlapStart, overlapEnd)
	}

	return 0
}

// prorateSingle dilui um custo único pela própria vigência e cobra só os
// dias que caem na janela. Custo sem data final conta como vigência de um
// dia (cobrado integral se o dia de início estiver na janela).
func prorateSingle(cost *domain.CustomCost, window domain.SyncWindow) float64 {
	costStart := domain.DateOnly(cost.StartDate)
	costEnd := costStart
	if cost.EndDate != nil {
		costEnd = domain.DateOnly(*cost.EndDate)
	}

	overlapStart := utils.MaxDate(costStart, domain.DateOnly(window.Start))
	overlapEnd := utils.MinDate(costEnd, domain.DateOnly(window.End))
	if overlapEnd.Before(overlapStart) {
		return 0
	}

	ownDays := utils.DaysBetween(costStart, costEnd)
	if ownDays < 1 {
		ownDays = 1
	}

	return cost.Amount / float64(ownDays) * float64(utils.DaysBetween(overlapStart, overlapEnd))
}

// prorateMonthly caminha mês a mês pelo trecho sobreposto usando a
// quantidade real de dias de cada mês (28/29/30/31), nunca um mês fixo de
// 30 dias. É isso que mantém a proração exata ao cruzar a virada do mês.
func prorateMonthly(amount float64, start, end time.Time) float64 {
	total := 0.0

	cursor := start
	for !cursor.After(end) {
		lastOfMonth := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
		segmentEnd := utils.MinDate(lastOfMonth, end)

		days := utils.DaysBetween(cursor, segmentEnd)
		total += amount / float64(utils.DaysInMonth(cursor)) * float64(days)

		cursor = lastOfMonth.AddDate(0, 0, 1)
	}

	return total
}

func overlap(cost *domain.CustomCost, window domain.SyncWindow) (time.Time, time.Time, bool) {
	start := utils.MaxDate(domain.DateOnly(cost.StartDate), domain.DateOnly(window.Start))

	end := domain.DateOnly(window.End)
	if cost.EndDate != nil {
		end = utils.MinDate(domain.DateOnly(*cost.EndDate), end)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func baseMetricValue(metric *domain.BaseMetric, totals BaseTotals) float64 {
	if metric == nil {
		return 0
	}

	switch *metric {
	case domain.BaseMetricRevenue:
		return totals.Revenue
	case domain.BaseMetricProfit:
		return totals.Profit
	case domain.BaseMetricTotalAdSpend:
		return totals.TotalAdSpend
	case domain.BaseMetricTikTokSpend:
		return totals.SpendByPlatform[domain.PlatformTikTok]
	case domain.BaseMetricMetaSpend:
		return totals.SpendByPlatform[domain.PlatformMeta]
	}

	return 0
}
