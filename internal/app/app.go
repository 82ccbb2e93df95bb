// Package app monta as dependências compartilhadas pela API e pela CLI.
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/pharma-sales-api/infrastructure/datasource"
	"github.com/vfg2006/pharma-sales-api/infrastructure/report"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/internal/scheduler"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/insighting"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
	"github.com/vfg2006/pharma-sales-api/pkg/money"
)

type App struct {
	Config         *config.Config
	Source         datasource.Source
	InsightService insighting.CombinedInsighter
	RankingService ranking.RankingService
	ReportExport   *scheduler.ReportExportService
	Formatter      *money.Formatter
}

// New abre a fonte configurada e cria os serviços sobre ela
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	formatter, err := money.NewFormatter(cfg.Analytics.CurrencyLocale)
	if err != nil {
		return nil, errors.Wrap(err, "CURRENCY_LOCALE")
	}

	source, err := datasource.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"source": cfg.Dataset.Source,
		"path":   cfg.Dataset.Path,
	}).Info("Fonte de dados de vendas configurada")

	insightService := insighting.NewService(source)
	rankingService := ranking.NewTopProductsService(source)

	reportExport := scheduler.NewReportExportService(
		insightService,
		rankingService,
		report.NewXLSXWriter(),
		cfg,
	)

	return &App{
		Config:         cfg,
		Source:         source,
		InsightService: insightService,
		RankingService: rankingService,
		ReportExport:   reportExport,
		Formatter:      formatter,
	}, nil
}

// Close libera a fonte de dados
func (a *App) Close() error {
	return a.Source.Close()
}
