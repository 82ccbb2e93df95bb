package insighting

import (
	"context"

	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

// StatsInsighter define a interface para obter o resumo do histórico
type StatsInsighter interface {
	// GetStats carrega o histórico e calcula as estatísticas gerais
	GetStats(ctx context.Context) (*domain.Stats, error)
}

// ForecastInsighter define a interface para obter a previsão de vendas
type ForecastInsighter interface {
	// GetForecast carrega o histórico e prevê os próximos days dias
	GetForecast(ctx context.Context, days int) (*domain.Forecast, error)
}

// CombinedInsighter combina estatísticas e previsão
type CombinedInsighter interface {
	StatsInsighter
	ForecastInsighter
}
