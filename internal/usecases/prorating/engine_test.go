package prorating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adtrackr/profit-sync-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func window(start, end time.Time) domain.SyncWindow {
	return domain.SyncWindow{Start: start, End: end}
}

func monthlyInterval() *domain.RepeatInterval {
	interval := domain.RepeatMonthly
	return &interval
}

func TestProrate_CustoMensal(t *testing.T) {
	cost := &domain.CustomCost{
		ID:             1,
		Name:           "Ferramenta de BI",
		CostType:       domain.CostTypeFixed,
		Currency:       "USD",
		Amount:         310,
		Repeat:         true,
		RepeatInterval: monthlyInterval(),
		StartDate:      date(2022, time.June, 1),
	}

	tests := []struct {
		name     string
		window   domain.SyncWindow
		expected float64
	}{
		{
			name:     "Fevereiro inteiro em ano não bissexto cobra o valor cheio",
			window:   window(date(2023, time.February, 1), date(2023, time.February, 28)),
			expected: 310.00,
		},
		{
			name:   "Janela cruzando a virada do mês usa os dias reais de cada mês",
			window: window(date(2023, time.January, 15), date(2023, time.February, 15)),
			// (17/31)*310 + (15/28)*310
			expected: 336.07,
		},
		{
			name:     "Mês de 31 dias inteiro também cobra o valor cheio",
			window:   window(date(2023, time.March, 1), date(2023, time.March, 31)),
			expected: 310.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Prorate([]*domain.CustomCost{cost}, tt.window, BaseTotals{})

			assert.Len(t, result.Breakdown, 1)
			assert.Equal(t, tt.expected, result.Breakdown[0].Contribution)
			assert.Equal(t, tt.expected, result.Total)
		})
	}
}

func TestProrate_CustoVariavel(t *testing.T) {
	baseMetric := domain.BaseMetricTotalAdSpend
	cost := &domain.CustomCost{
		ID:         2,
		Name:       "Taxa do gateway",
		CostType:   domain.CostTypeVariable,
		Currency:   "USD",
		Percentage: 3,
		BaseMetric: &baseMetric,
		StartDate:  date(2023, time.January, 1),
	}

	result := Prorate(
		[]*domain.CustomCost{cost},
		window(date(2023, time.March, 1), date(2023, time.March, 31)),
		BaseTotals{TotalAdSpend: 1000.00},
	)

	assert.Len(t, result.Breakdown, 1)
	assert.Equal(t, 30.00, result.Breakdown[0].Contribution)
	assert.Equal(t, 30.00, result.Total)
}

func TestProrate_CustoVariavelPorPlataforma(t *testing.T) {
	baseMetric := domain.BaseMetricTikTokSpend
	cost := &domain.CustomCost{
		ID:         3,
		Name:       "Agência TikTok",
		CostType:   domain.CostTypeVariable,
		Currency:   "USD",
		Percentage: 10,
		BaseMetric: &baseMetric,
		StartDate:  date(2023, time.January, 1),
	}

	result := Prorate(
		[]*domain.CustomCost{cost},
		window(date(2023, time.March, 1), date(2023, time.March, 31)),
		BaseTotals{
			TotalAdSpend: 900,
			SpendByPlatform: map[domain.Platform]float64{
				domain.PlatformTikTok: 400,
				domain.PlatformMeta:   500,
			},
		},
	)

	assert.Len(t, result.Breakdown, 1)
	assert.Equal(t, 40.00, result.Total)
}

func TestProrate_CustoUnicoProrrateadoPelaPropriaVigencia(t *testing.T) {
	endDate := date(2023, time.January, 30)
	cost := &domain.CustomCost{
		ID:        4,
		Name:      "Produção de criativos",
		CostType:  domain.CostTypeFixed,
		Currency:  "USD",
		Amount:    300,
		StartDate: date(2023, time.January, 1),
		EndDate:   &endDate,
	}

	// Vigência de 30 dias, janela de 10 dias dentro dela
	result := Prorate(
		[]*domain.CustomCost{cost},
		window(date(2023, time.January, 5), date(2023, time.January, 14)),
		BaseTotals{},
	)

	assert.Len(t, result.Breakdown, 1)
	assert.Equal(t, 100.00, result.Total)
}

func TestProrate_CustoUnicoSemDataFinal(t *testing.T) {
	cost := &domain.CustomCost{
		ID:        5,
		Name:      "Setup da conta",
		CostType:  domain.CostTypeFixed,
		Currency:  "USD",
		Amount:    250,
		StartDate: date(2023, time.January, 10),
	}

	t.Run("Dia de início dentro da janela cobra o valor integral", func(t *testing.T) {
		result := Prorate(
			[]*domain.CustomCost{cost},
			window(date(2023, time.January, 1), date(2023, time.January, 31)),
			BaseTotals{},
		)

		assert.Equal(t, 250.00, result.Total)
	})

	t.Run("Dia de início fora da janela não cobra nada", func(t *testing.T) {
		result := Prorate(
			[]*domain.CustomCost{cost},
			window(date(2023, time.February, 1), date(2023, time.February, 28)),
			BaseTotals{},
		)

		assert.Empty(t, result.Breakdown)
		assert.Equal(t, 0.00, result.Total)
	})
}

func TestProrate_CustosRecorrentesDiarioESemanal(t *testing.T) {
	daily := domain.RepeatDaily
	weekly := domain.RepeatWeekly

	costs := []*domain.CustomCost{
		{
			ID:             6,
			Name:           "Proxy residencial",
			CostType:       domain.CostTypeFixed,
			Currency:       "USD",
			Amount:         5,
			Repeat:         true,
			RepeatInterval: &daily,
			StartDate:      date(2023, time.January, 1),
		},
		{
			ID:             7,
			Name:           "Freelancer de dados",
			CostType:       domain.CostTypeFixed,
			Currency:       "BRL",
			Amount:         70,
			Repeat:         true,
			RepeatInterval: &weekly,
			StartDate:      date(2023, time.January, 1),
		},
	}

	// Janela de 7 dias: diário 5*7=35, semanal 70/7*7=70
	result := Prorate(costs, window(date(2023, time.March, 1), date(2023, time.March, 7)), BaseTotals{})

	assert.Len(t, result.Breakdown, 2)
	assert.Equal(t, 35.00, result.Breakdown[0].Contribution)
	assert.Equal(t, 70.00, result.Breakdown[1].Contribution)
	assert.Equal(t, 105.00, result.Total)

	// Cada item reporta a própria moeda, sem conversão
	assert.Equal(t, "USD", result.Breakdown[0].Currency)
	assert.Equal(t, "BRL", result.Breakdown[1].Currency)
}

func TestProrate_CustoForaDaJanelaFicaForaDoDetalhamento(t *testing.T) {
	endDate := date(2022, time.December, 31)
	costs := []*domain.CustomCost{
		{
			ID:        8,
			Name:      "Contrato encerrado",
			CostType:  domain.CostTypeFixed,
			Currency:  "USD",
			Amount:    999,
			StartDate: date(2022, time.December, 1),
			EndDate:   &endDate,
		},
	}

	result := Prorate(costs, window(date(2023, time.January, 1), date(2023, time.January, 31)), BaseTotals{})

	assert.Empty(t, result.Breakdown)
	assert.Equal(t, 0.00, result.Total)
}
