// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias da fonte de vendas
const (
	ColumnSaleDate     = "data_venda"
	ColumnPrice        = "preco"
	ColumnProductName  = "nome_produto"
	ColumnSellerName   = "nome_vendedor"
	ColumnUnitLocation = "unidade"
)

// RequiredColumns lista as colunas que toda fonte precisa expor
var RequiredColumns = []string{
	ColumnSaleDate,
	ColumnPrice,
	ColumnProductName,
	ColumnSellerName,
	ColumnUnitLocation,
}

// Transaction representa uma linha de venda já normalizada
type Transaction struct {
	SaleDate     time.Time       `json:"sale_date"`
	Price        decimal.Decimal `json:"price"`
	ProductName  string          `json:"product_name"`
	SellerName   string          `json:"seller_name"`
	UnitLocation string          `json:"unit_location"`
}

// TransactionTable é a tabela de vendas carregada a cada requisição.
// A ordem das linhas é a ordem da fonte e define o desempate dos rankings.
type TransactionTable []Transaction

// LastSaleDate retorna a maior data de venda da tabela
func (t TransactionTable) LastSaleDate() (time.Time, bool) {
	if len(t) == 0 {
		return time.Time{}, false
	}

	last := t[0].SaleDate
	for _, tx := range t[1:] {
		if tx.SaleDate.After(last) {
			last = tx.SaleDate
		}
	}

	return last, true
}

// FirstSaleDate retorna a menor data de venda da tabela
func (t TransactionTable) FirstSaleDate() (time.Time, bool) {
	if len(t) == 0 {
		return time.Time{}, false
	}

	first := t[0].SaleDate
	for _, tx := range t[1:] {
		if tx.SaleDate.Before(first) {
			first = tx.SaleDate
		}
	}

	return first, true
}

// TruncateToDay descarta horário e fuso, mantendo apenas a data do calendário
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Values percorre a tabela devolvendo o campo escolhido de cada linha,
// na ordem original
func (t TransactionTable) Values(field func(Transaction) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, tx := range t {
			if !yield(field(tx)) {
				return
			}
		}
	}
}

func ProductName(tx Transaction) string  { return tx.ProductName }
func SellerName(tx Transaction) string   { return tx.SellerName }
func UnitLocation(tx Transaction) string { return tx.UnitLocation }
