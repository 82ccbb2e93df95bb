package datasource

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

// CSVSource lê o histórico de um arquivo CSV com cabeçalho
type CSVSource struct {
	path      string
	delimiter rune
}

func NewCSVSource(path string, delimiter rune) *CSVSource {
	return &CSVSource{
		path:      path,
		delimiter: delimiter,
	}
}

func (s *CSVSource) Load(ctx context.Context) (domain.TransactionTable, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(domain.NewDataSourceError(err.Error()), "csv %s", s.path)
	}
	defer file.Close()

	table, err := s.read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "csv %s", s.path)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source": s.path,
		"rows":   len(table),
	}).Debug("datasource: csv carregado")

	return table, nil
}

func (s *CSVSource) read(r io.Reader) (domain.TransactionTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewDataSourceError(err.Error())
	}

	if len(records) == 0 {
		return nil, domain.NewDataSourceError("arquivo sem cabeçalho")
	}

	return buildTable(records[0], records[1:])
}

func (s *CSVSource) Close() error {
	return nil
}
