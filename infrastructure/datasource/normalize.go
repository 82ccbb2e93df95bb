package datasource

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/utils"
)

var plainAmount = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParsePrice normaliza um preço no formato "R$ 1.234,56" para 1234.56.
// Quando há vírgula ela é o separador decimal e os pontos são milhares;
// sem vírgula o texto precisa já ser um decimal com ponto (ex.: "12.50").
func ParsePrice(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "R$")
	value = strings.TrimSpace(value)

	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.Replace(value, ",", ".", 1)
	}

	if !plainAmount.MatchString(value) {
		return decimal.Zero, domain.ErrParse
	}

	return decimal.NewFromString(value)
}

// columnIndex mapeia o nome de cada coluna obrigatória para sua posição
type columnIndex map[string]int

func newColumnIndex(headers []string) (columnIndex, error) {
	index := make(columnIndex, len(headers))
	for i, header := range headers {
		name := strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	missing := make([]string, 0)
	for _, column := range domain.RequiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, domain.NewDataSourceError("missing required columns: " + strings.Join(missing, ", "))
	}

	return index, nil
}

func (c columnIndex) value(record []string, column string) string {
	i := c[column]
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// normalizeRecord converte uma linha crua em Transaction.
// row é o número da linha de dados, começando em 1.
func normalizeRecord(row int, saleDate, price, product, seller, unit string) (domain.Transaction, error) {
	date, err := utils.ParseDate(saleDate)
	if err != nil {
		return domain.Transaction{}, domain.NewParseError(row, domain.ColumnSaleDate, saleDate, err.Error())
	}

	amount, err := ParsePrice(price)
	if err != nil {
		return domain.Transaction{}, domain.NewParseError(row, domain.ColumnPrice, price, "invalid currency amount")
	}

	return domain.Transaction{
		SaleDate:     date,
		Price:        amount,
		ProductName:  product,
		SellerName:   seller,
		UnitLocation: unit,
	}, nil
}

// buildTable normaliza todas as linhas; a primeira falha aborta a carga
func buildTable(headers []string, records [][]string) (domain.TransactionTable, error) {
	index, err := newColumnIndex(headers)
	if err != nil {
		return nil, err
	}

	table := make(domain.TransactionTable, 0, len(records))
	for i, record := range records {
		tx, err := normalizeRecord(
			i+1,
			index.value(record, domain.ColumnSaleDate),
			index.value(record, domain.ColumnPrice),
			index.value(record, domain.ColumnProductName),
			index.value(record, domain.ColumnSellerName),
			index.value(record, domain.ColumnUnitLocation),
		)
		if err != nil {
			return nil, err
		}
		table = append(table, tx)
	}

	return table, nil
}
