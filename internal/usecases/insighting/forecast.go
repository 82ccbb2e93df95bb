package insighting

import (
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/utils"
)

var windowDays = decimal.NewFromInt(domain.ForecastWindowDays)

// dailyTotal acumula as vendas de um dia do calendário
type dailyTotal struct {
	date    time.Time
	count   int
	revenue decimal.Decimal
}

// groupByDay soma quantidade e receita por dia, em ordem crescente de data
func groupByDay(table domain.TransactionTable) []dailyTotal {
	byDate := make(map[time.Time]*dailyTotal)
	for _, tx := range table {
		day, exists := byDate[tx.SaleDate]
		if !exists {
			day = &dailyTotal{date: tx.SaleDate, revenue: decimal.Zero}
			byDate[tx.SaleDate] = day
		}
		day.count++
		day.revenue = day.revenue.Add(tx.Price)
	}

	days := make([]dailyTotal, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}

	slices.SortFunc(days, func(a, b dailyTotal) int {
		return a.date.Compare(b.date)
	})

	return days
}

// Forecast prevê as vendas dos horizonDays dias seguintes à última venda.
// As previsões são geradas sob demanda, em ordem crescente de data.
// Horizonte menor ou igual a zero produz uma sequência vazia.
//
// A janela de 7 dias é recalculada a partir de cada dia previsto sobre os
// dados reais; uma previsão nunca alimenta a seguinte.
func Forecast(table domain.TransactionTable, horizonDays int) (iter.Seq[domain.DailyForecast], error) {
	if horizonDays <= 0 {
		return func(yield func(domain.DailyForecast) bool) {}, nil
	}

	lastDate, ok := table.LastSaleDate()
	if !ok {
		return nil, domain.NewEmptyDatasetError("forecast requires at least one transaction")
	}

	days := groupByDay(table)

	return func(yield func(domain.DailyForecast) bool) {
		for i := 1; i <= horizonDays; i++ {
			target := lastDate.AddDate(0, 0, i)
			if !yield(forecastDay(days, target)) {
				return
			}
		}
	}, nil
}

// forecastDay aplica a média móvel com tendência para um único dia
func forecastDay(days []dailyTotal, target time.Time) domain.DailyForecast {
	windowStart := target.AddDate(0, 0, -domain.ForecastWindowDays)

	recentCount := 0
	windowRevenue := decimal.Zero
	distinctDays := 0
	for _, day := range days {
		if day.date.Before(windowStart) || !day.date.Before(target) {
			continue
		}
		recentCount += day.count
		windowRevenue = windowRevenue.Add(day.revenue)
		distinctDays++
	}

	dailyRevenueMean := decimal.Zero
	if distinctDays > 0 {
		dailyRevenueMean = windowRevenue.Div(decimal.NewFromInt(int64(distinctDays)))
	}

	// Tendência aplicada antes da divisão para que metades exatas
	// (ex.: 30 vendas -> 4,5) sejam representadas sem erro de arredondamento
	predictedCount := decimal.NewFromInt(int64(recentCount)).
		Mul(domain.TrendUplift).
		Div(windowDays).
		RoundBank(0).
		IntPart()

	return domain.DailyForecast{
		Date:             target,
		RecentCount:      recentCount,
		DailyRevenueMean: dailyRevenueMean,
		PredictedCount:   predictedCount,
		PredictedRevenue: utils.RoundMoney(dailyRevenueMean.Mul(domain.TrendUplift)),
	}
}
