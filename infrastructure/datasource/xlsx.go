package datasource

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

// XLSXSource lê o histórico de uma planilha; a primeira linha é o cabeçalho
type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSXSource cria a fonte; sheet vazio usa a primeira aba
func NewXLSXSource(path string, sheet string) *XLSXSource {
	return &XLSXSource{
		path:  path,
		sheet: sheet,
	}
}

func (s *XLSXSource) Load(ctx context.Context) (domain.TransactionTable, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(domain.NewDataSourceError(err.Error()), "xlsx %s", s.path)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	// Valores crus para não depender do formato de exibição das células
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(domain.NewDataSourceError(err.Error()), "xlsx %s aba %q", s.path, sheet)
	}

	if len(rows) == 0 {
		return nil, errors.Wrapf(domain.NewDataSourceError("planilha sem cabeçalho"), "xlsx %s aba %q", s.path, sheet)
	}

	index, err := newColumnIndex(rows[0])
	if err != nil {
		return nil, errors.Wrapf(err, "xlsx %s aba %q", s.path, sheet)
	}

	records := rows[1:]
	dateColumn := index[domain.ColumnSaleDate]
	for _, record := range records {
		if dateColumn < len(record) {
			record[dateColumn] = serialToDate(record[dateColumn])
		}
	}

	table, err := buildTable(rows[0], records)
	if err != nil {
		return nil, errors.Wrapf(err, "xlsx %s aba %q", s.path, sheet)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source": s.path,
		"sheet":  sheet,
		"rows":   len(table),
	}).Debug("datasource: planilha carregada")

	return table, nil
}

// serialToDate converte datas gravadas como número serial do Excel;
// textos são devolvidos sem alteração
func serialToDate(value string) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}

	return date.Format(time.DateOnly)
}

func (s *XLSXSource) Close() error {
	return nil
}
