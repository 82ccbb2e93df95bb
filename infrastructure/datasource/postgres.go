package datasource

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/pharma-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

// PostgresSource lê o histórico de uma tabela com as mesmas colunas do CSV.
// As colunas são lidas como texto e passam pela mesma normalização.
type PostgresSource struct {
	conn  *postgres.Connection
	table string
}

func NewPostgresSource(conn *postgres.Connection, table string) *PostgresSource {
	return &PostgresSource{
		conn:  conn,
		table: table,
	}
}

func (s *PostgresSource) query() (string, []interface{}, error) {
	columns := make([]string, 0, len(domain.RequiredColumns))
	for _, column := range domain.RequiredColumns {
		columns = append(columns, fmt.Sprintf("COALESCE(%s::text, '')", pq.QuoteIdentifier(column)))
	}

	return squirrel.
		Select(columns...).
		From(quoteTable(s.table)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// quoteTable cita cada parte de um nome possivelmente qualificado
// ("public.vendas" -> "public"."vendas")
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}

func (s *PostgresSource) Load(ctx context.Context) (domain.TransactionTable, error) {
	query, args, err := s.query()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(domain.NewDataSourceError(err.Error()), "postgres tabela %s", s.table)
	}
	defer rows.Close()

	table := make(domain.TransactionTable, 0)
	row := 0
	for rows.Next() {
		row++

		var saleDate, price, product, seller, unit string
		if err := rows.Scan(&saleDate, &price, &product, &seller, &unit); err != nil {
			return nil, errors.Wrapf(domain.NewDataSourceError(err.Error()), "postgres tabela %s", s.table)
		}

		tx, err := normalizeRecord(row, saleDate, price, product, seller, unit)
		if err != nil {
			return nil, errors.Wrapf(err, "postgres tabela %s", s.table)
		}
		table = append(table, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(domain.NewDataSourceError(err.Error()), "postgres tabela %s", s.table)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"table": s.table,
		"rows":  len(table),
	}).Debug("datasource: tabela carregada")

	return table, nil
}

func (s *PostgresSource) Close() error {
	return s.conn.Close()
}
