package ranking

import (
	"cmp"
	"iter"
	"slices"

	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

// RankByFrequency conta as ocorrências de cada valor e ordena por contagem
// decrescente. Empates mantêm a ordem da primeira aparição.
func RankByFrequency(values iter.Seq[string]) []domain.ValueCount {
	positions := make(map[string]int)
	counts := make([]domain.ValueCount, 0)

	for value := range values {
		if i, seen := positions[value]; seen {
			counts[i].Count++
			continue
		}

		positions[value] = len(counts)
		counts = append(counts, domain.ValueCount{Value: value, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b domain.ValueCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return counts
}

// MostFrequent devolve o valor mais frequente; false quando não há valores
func MostFrequent(values iter.Seq[string]) (string, bool) {
	ranked := RankByFrequency(values)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Value, true
}

// TopProducts devolve os n produtos com mais transações
func TopProducts(table domain.TransactionTable, n int) ([]domain.ProductCount, error) {
	if n < 0 {
		return nil, domain.NewInvalidArgumentError("limit must be a non-negative integer")
	}

	ranked := RankByFrequency(table.Values(domain.ProductName))
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]domain.ProductCount, 0, len(ranked))
	for _, item := range ranked {
		top = append(top, domain.ProductCount{
			ProductName: item.Value,
			Count:       item.Count,
		})
	}

	return top, nil
}
