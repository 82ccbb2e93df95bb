package ranking

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

func productTable(products ...string) domain.TransactionTable {
	table := make(domain.TransactionTable, 0, len(products))
	for i, product := range products {
		table = append(table, domain.Transaction{
			SaleDate:     time.Date(2024, 1, 1+i%28, 0, 0, 0, 0, time.UTC),
			Price:        decimal.NewFromInt(1),
			ProductName:  product,
			SellerName:   "Ana",
			UnitLocation: "Centro",
		})
	}
	return table
}

func TestRankByFrequency(t *testing.T) {
	ranked := RankByFrequency(slices.Values([]string{"c", "a", "b", "a", "c", "d", "b"}))

	assert.Equal(t, []domain.ValueCount{
		{Value: "c", Count: 2},
		{Value: "a", Count: 2},
		{Value: "b", Count: 2},
		{Value: "d", Count: 1},
	}, ranked)
}

func TestMostFrequent(t *testing.T) {
	value, ok := MostFrequent(slices.Values([]string{"x", "y", "y"}))
	assert.True(t, ok)
	assert.Equal(t, "y", value)

	_, ok = MostFrequent(slices.Values([]string{}))
	assert.False(t, ok)
}

func TestTopProducts(t *testing.T) {
	tests := []struct {
		name     string
		table    domain.TransactionTable
		limit    int
		expected []domain.ProductCount
	}{
		{
			name:  "reference history",
			table: productTable("A", "B", "A"),
			limit: 10,
			expected: []domain.ProductCount{
				{ProductName: "A", Count: 2},
				{ProductName: "B", Count: 1},
			},
		},
		{
			name:  "ties keep first seen order and limit truncates",
			table: productTable("Dipirona", "Losartana", "Omeprazol", "Losartana", "Dipirona", "Omeprazol", "Insulina"),
			limit: 2,
			expected: []domain.ProductCount{
				{ProductName: "Dipirona", Count: 2},
				{ProductName: "Losartana", Count: 2},
			},
		},
		{
			name:     "zero limit",
			table:    productTable("A", "B"),
			limit:    0,
			expected: []domain.ProductCount{},
		},
		{
			name:     "empty table",
			table:    domain.TransactionTable{},
			limit:    10,
			expected: []domain.ProductCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, err := TopProducts(tt.table, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, top)
		})
	}
}

func TestTopProducts_Ordering(t *testing.T) {
	table := productTable("e", "a", "b", "a", "c", "b", "a", "d", "c", "e", "f", "b")

	top, err := TopProducts(table, 4)
	require.NoError(t, err)
	require.Len(t, top, 4)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
	assert.Equal(t, "a", top[0].ProductName)
	assert.Equal(t, "b", top[1].ProductName)
	assert.Equal(t, "e", top[2].ProductName)
	assert.Equal(t, "c", top[3].ProductName)
}

func TestTopProducts_NegativeLimit(t *testing.T) {
	_, err := TopProducts(productTable("A"), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
