// Package datasource carrega o histórico de vendas da farmácia a partir
// da fonte configurada e devolve a tabela de transações normalizada.
package datasource

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vfg2006/pharma-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// Loader lê a fonte completa a cada chamada. Implementações não guardam
// estado mutável entre cargas.
type Loader interface {
	Load(ctx context.Context) (domain.TransactionTable, error)
}

// Source é um Loader que pode ter recursos a liberar
type Source interface {
	Loader
	Close() error
}

// New cria a fonte de acordo com DATASET_SOURCE
func New(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.Dataset.Source {
	case config.SourceCSV:
		delimiter, size := utf8.DecodeRuneInString(cfg.Dataset.Delimiter)
		if delimiter == utf8.RuneError || size != len(cfg.Dataset.Delimiter) {
			return nil, domain.NewDataSourceError(fmt.Sprintf("delimitador CSV inválido: %q", cfg.Dataset.Delimiter))
		}
		return NewCSVSource(cfg.Dataset.Path, delimiter), nil

	case config.SourceXLSX:
		return NewXLSXSource(cfg.Dataset.Path, cfg.Dataset.Sheet), nil

	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(domain.NewDataSourceError(err.Error()), "erro ao conectar ao PostgreSQL")
		}
		return NewPostgresSource(conn, cfg.Dataset.Table), nil
	}

	return nil, errors.Errorf("fonte de dados não suportada: %s", cfg.Dataset.Source)
}
