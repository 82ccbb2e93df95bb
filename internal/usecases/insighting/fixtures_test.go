package insighting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, price string, product, seller, unit string) domain.Transaction {
	return domain.Transaction{
		SaleDate:     date,
		Price:        decimal.RequireFromString(price),
		ProductName:  product,
		SellerName:   seller,
		UnitLocation: unit,
	}
}

// exampleTable é o histórico de três vendas usado como referência
func exampleTable() domain.TransactionTable {
	return domain.TransactionTable{
		tx(day(2024, 1, 1), "10.00", "A", "Ana", "Centro"),
		tx(day(2024, 1, 1), "20.00", "B", "Bruno", "Bairro"),
		tx(day(2024, 1, 2), "30.00", "A", "Bruno", "Centro"),
	}
}

func sameCountTable(count int, date time.Time) domain.TransactionTable {
	table := make(domain.TransactionTable, 0, count)
	for i := 0; i < count; i++ {
		table = append(table, tx(date, "1.00", "A", "Ana", "Centro"))
	}
	return table
}
