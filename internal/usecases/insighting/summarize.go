package insighting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
)

// Summarize calcula as estatísticas gerais da tabela.
// Tabela vazia é erro: o ticket médio não existe sem vendas.
func Summarize(table domain.TransactionTable) (*domain.Stats, error) {
	if len(table) == 0 {
		return nil, domain.NewEmptyDatasetError("stats require at least one transaction")
	}

	totalRevenue := decimal.Zero
	for _, tx := range table {
		totalRevenue = totalRevenue.Add(tx.Price)
	}

	totalCount := len(table)
	periodStart, _ := table.FirstSaleDate()
	periodEnd, _ := table.LastSaleDate()

	topProduct, _ := ranking.MostFrequent(table.Values(domain.ProductName))
	topSeller, _ := ranking.MostFrequent(table.Values(domain.SellerName))
	topLocation, _ := ranking.MostFrequent(table.Values(domain.UnitLocation))

	return &domain.Stats{
		TotalCount:    totalCount,
		TotalRevenue:  totalRevenue,
		AverageTicket: totalRevenue.Div(decimal.NewFromInt(int64(totalCount))),
		TopProduct:    topProduct,
		TopSeller:     topSeller,
		TopLocation:   topLocation,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
	}, nil
}
