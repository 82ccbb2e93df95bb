package insighting

import (
	"context"
	"slices"
	"time"

	"github.com/vfg2006/pharma-sales-api/infrastructure/datasource"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

// Service carrega a tabela a cada chamada; não há cache entre requisições
type Service struct {
	loader datasource.Loader
}

func NewService(loader datasource.Loader) CombinedInsighter {
	return &Service{
		loader: loader,
	}
}

// GetStats obtém as estatísticas gerais do histórico
func (s *Service) GetStats(ctx context.Context) (*domain.Stats, error) {
	logger := log.ForContext(ctx)

	table, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Warn("insights: erro ao carregar histórico de vendas")
		return nil, err
	}

	stats, err := Summarize(table)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"total_count":  stats.TotalCount,
		"period_start": stats.PeriodStart.Format(time.DateOnly),
		"period_end":   stats.PeriodEnd.Format(time.DateOnly),
	}).Debug("insights: estatísticas calculadas")

	return stats, nil
}

// GetForecast obtém a previsão para os próximos days dias
func (s *Service) GetForecast(ctx context.Context, days int) (*domain.Forecast, error) {
	logger := log.ForContext(ctx)

	table, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Warn("insights: erro ao carregar histórico de vendas")
		return nil, err
	}

	predictions, err := Forecast(table, days)
	if err != nil {
		return nil, err
	}

	forecast := &domain.Forecast{
		Predictions: slices.Collect(predictions),
		Confidence:  domain.ForecastConfidence,
		Model:       domain.ForecastModel,
	}
	if forecast.Predictions == nil {
		forecast.Predictions = []domain.DailyForecast{}
	}

	logger.WithFields(log.Fields{
		"days":        days,
		"predictions": len(forecast.Predictions),
	}).Debug("insights: previsão calculada")

	return forecast, nil
}
