// Package report grava o relatório consolidado de vendas em planilha.
package report

import (
	"fmt"
	"time"

	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Nomes das abas do relatório
const (
	SummarySheet     = "Resumo"
	ForecastSheet    = "Previsao"
	TopProductsSheet = "TopProdutos"
)

// Report reúne as três visões calculadas em uma mesma execução
type Report struct {
	GeneratedAt time.Time
	Stats       *domain.Stats
	Forecast    *domain.Forecast
	TopProducts []domain.ProductCount
}

// Writer grava um relatório no caminho indicado
type Writer interface {
	Write(report *Report, path string) error
}

type XLSXWriter struct{}

func NewXLSXWriter() Writer {
	return &XLSXWriter{}
}

func (w *XLSXWriter) Write(report *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("erro ao renomear aba de resumo: %w", err)
	}

	if err := writeRows(f, SummarySheet, summaryRows(report)); err != nil {
		return err
	}

	if _, err := f.NewSheet(ForecastSheet); err != nil {
		return fmt.Errorf("erro ao criar aba de previsão: %w", err)
	}
	if err := writeRows(f, ForecastSheet, forecastRows(report.Forecast)); err != nil {
		return err
	}

	if _, err := f.NewSheet(TopProductsSheet); err != nil {
		return fmt.Errorf("erro ao criar aba de produtos: %w", err)
	}
	if err := writeRows(f, TopProductsSheet, topProductsRows(report.TopProducts)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("erro ao salvar relatório em %s: %w", path, err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da aba %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func summaryRows(report *Report) [][]any {
	rows := [][]any{
		{"Indicador", "Valor"},
		{"Gerado em", report.GeneratedAt.Format(time.RFC3339)},
	}

	stats := report.Stats
	if stats == nil {
		return rows
	}

	return append(rows,
		[]any{"Total de vendas", stats.TotalCount},
		[]any{"Receita total", utils.RoundMoney(stats.TotalRevenue).InexactFloat64()},
		[]any{"Ticket médio", utils.RoundMoney(stats.AverageTicket).InexactFloat64()},
		[]any{"Produto mais vendido", stats.TopProduct},
		[]any{"Melhor vendedor", stats.TopSeller},
		[]any{"Unidade top", stats.TopLocation},
		[]any{"Início do período", utils.FormatBrazilianDate(stats.PeriodStart)},
		[]any{"Fim do período", utils.FormatBrazilianDate(stats.PeriodEnd)},
	)
}

func forecastRows(forecast *domain.Forecast) [][]any {
	rows := [][]any{{"Data", "Vendas previstas", "Receita prevista", "Vendas na janela", "Média diária da janela"}}
	if forecast == nil {
		return rows
	}

	for _, p := range forecast.Predictions {
		rows = append(rows, []any{
			utils.FormatBrazilianDate(p.Date),
			p.PredictedCount,
			p.PredictedRevenue.InexactFloat64(),
			p.RecentCount,
			utils.RoundMoney(p.DailyRevenueMean).InexactFloat64(),
		})
	}

	return append(rows,
		[]any{},
		[]any{"Confiança", forecast.Confidence},
		[]any{"Modelo", forecast.Model},
	)
}

func topProductsRows(top []domain.ProductCount) [][]any {
	rows := [][]any{{"Posição", "Produto", "Vendas"}}
	for i, item := range top {
		rows = append(rows, []any{i + 1, item.ProductName, item.Count})
	}
	return rows
}
