package insighting

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

func TestForecast_ReferenceHistory(t *testing.T) {
	seq, err := Forecast(exampleTable(), 1)
	require.NoError(t, err)

	predictions := slices.Collect(seq)
	require.Len(t, predictions, 1)

	p := predictions[0]
	assert.Equal(t, day(2024, 1, 3), p.Date)
	assert.Equal(t, 3, p.RecentCount)
	assert.True(t, decimal.NewFromInt(30).Equal(p.DailyRevenueMean), "mean %s", p.DailyRevenueMean)
	assert.True(t, decimal.RequireFromString("31.5").Equal(p.PredictedRevenue), "revenue %s", p.PredictedRevenue)
	assert.Equal(t, int64(0), p.PredictedCount)
}

func TestForecast_NonPositiveHorizonIsEmpty(t *testing.T) {
	for _, horizon := range []int{0, -1, -30} {
		seq, err := Forecast(exampleTable(), horizon)
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq))
	}

	seq, err := Forecast(domain.TransactionTable{}, 0)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestForecast_EmptyTable(t *testing.T) {
	_, err := Forecast(domain.TransactionTable{}, 7)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestForecast_ConsecutiveDates(t *testing.T) {
	seq, err := Forecast(exampleTable(), 10)
	require.NoError(t, err)

	predictions := slices.Collect(seq)
	require.Len(t, predictions, 10)

	for i, p := range predictions {
		assert.Equal(t, day(2024, 1, 3).AddDate(0, 0, i), p.Date)
	}
}

func TestForecast_WindowIsAnchoredOnEachTargetDay(t *testing.T) {
	seq, err := Forecast(exampleTable(), 9)
	require.NoError(t, err)
	predictions := slices.Collect(seq)

	// 2024-01-08: janela a partir de 01/01, ainda vê as três vendas
	assert.Equal(t, 3, predictions[5].RecentCount)

	// 2024-01-09: janela a partir de 02/01, só a venda de 30,00
	assert.Equal(t, day(2024, 1, 9), predictions[6].Date)
	assert.Equal(t, 1, predictions[6].RecentCount)
	assert.True(t, decimal.NewFromInt(30).Equal(predictions[6].DailyRevenueMean))

	// 2024-01-10 em diante: janela sem vendas, média definida como zero
	for _, p := range predictions[7:] {
		assert.Equal(t, 0, p.RecentCount)
		assert.True(t, p.DailyRevenueMean.IsZero())
		assert.True(t, p.PredictedRevenue.IsZero())
		assert.Equal(t, int64(0), p.PredictedCount)
	}
}

func TestForecast_OnlyDaysWithSalesEnterTheMean(t *testing.T) {
	table := domain.TransactionTable{
		tx(day(2024, 5, 1), "100.00", "A", "Ana", "Centro"),
		tx(day(2024, 5, 4), "50.00", "A", "Ana", "Centro"),
		tx(day(2024, 5, 4), "50.00", "B", "Ana", "Centro"),
		tx(day(2024, 5, 7), "40.00", "C", "Ana", "Centro"),
	}

	seq, err := Forecast(table, 1)
	require.NoError(t, err)
	p := slices.Collect(seq)[0]

	// (100 + 100 + 40) / 3 dias com venda
	assert.True(t, decimal.NewFromInt(80).Equal(p.DailyRevenueMean))
	assert.True(t, decimal.NewFromInt(84).Equal(p.PredictedRevenue))
	assert.Equal(t, 4, p.RecentCount)
	assert.Equal(t, int64(1), p.PredictedCount)
}

func TestForecast_RoundHalfToEven(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int64
	}{
		{name: "1.5 rounds up to 2", count: 10, expected: 2},
		{name: "4.5 rounds down to 4", count: 30, expected: 4},
		{name: "7.5 rounds up to 8", count: 50, expected: 8},
		{name: "2.1 rounds down", count: 14, expected: 2},
		{name: "1.05 stays 1", count: 7, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Forecast(sameCountTable(tt.count, day(2024, 2, 1)), 1)
			require.NoError(t, err)

			p := slices.Collect(seq)[0]
			assert.Equal(t, tt.count, p.RecentCount)
			assert.Equal(t, tt.expected, p.PredictedCount)
		})
	}
}

func TestForecast_IsLazy(t *testing.T) {
	seq, err := Forecast(exampleTable(), 1000)
	require.NoError(t, err)

	taken := 0
	for p := range seq {
		taken++
		if p.Date.Equal(day(2024, 1, 5)) {
			break
		}
	}

	assert.Equal(t, 3, taken)
}
