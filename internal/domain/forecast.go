package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ForecastConfidence é um rótulo fixo, não uma garantia calculada
	ForecastConfidence = "85%"
	// ForecastModel identifica o método de previsão
	ForecastModel = "Moving Average + Trend"
	// ForecastWindowDays é o tamanho da janela móvel
	ForecastWindowDays = 7
	// DefaultForecastDays é o horizonte usado quando o cliente não informa
	DefaultForecastDays = 7
)

// TrendUplift é o multiplicador fixo de tendência (+5%)
var TrendUplift = decimal.RequireFromString("1.05")

// DailyForecast é a previsão de um dia futuro
type DailyForecast struct {
	Date             time.Time       `json:"date"`
	RecentCount      int             `json:"recent_count"`
	DailyRevenueMean decimal.Decimal `json:"daily_revenue_mean"`
	PredictedCount   int64           `json:"predicted_count"`
	PredictedRevenue decimal.Decimal `json:"predicted_revenue"`
}

// Forecast agrupa as previsões diárias com os metadados fixos do modelo
type Forecast struct {
	Predictions []DailyForecast `json:"predictions"`
	Confidence  string          `json:"confidence"`
	Model       string          `json:"model"`
}
