package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
	"github.com/vfg2006/pharma-sales-api/pkg/money"
	"github.com/vfg2006/pharma-sales-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SalesDefaults guarda os valores usados quando a requisição não informa
type SalesDefaults struct {
	ForecastDays     int
	TopProductsLimit int
}

type StatsResponse struct {
	TotalSales    int            `json:"total_vendas"`
	TotalRevenue  string         `json:"receita_total"`
	AverageTicket string         `json:"ticket_medio"`
	TopProduct    string         `json:"produto_mais_vendido"`
	TopSeller     string         `json:"melhor_vendedor"`
	TopLocation   string         `json:"cidade_top"`
	Period        PeriodResponse `json:"periodo"`
}

type PeriodResponse struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// PredictRequest aceita o horizonte em "days" ou no alias "dias";
// "days" prevalece quando os dois vêm no corpo
type PredictRequest struct {
	Days *int `json:"days"`
	Dias *int `json:"dias"`
}

// Horizon devolve o horizonte pedido ou fallback quando nenhum foi informado
func (r PredictRequest) Horizon(fallback int) int {
	switch {
	case r.Days != nil:
		return *r.Days
	case r.Dias != nil:
		return *r.Dias
	}
	return fallback
}

type PredictionResponse struct {
	Date             string `json:"data"`
	PredictedSales   int64  `json:"vendas_previstas"`
	PredictedRevenue string `json:"receita_prevista"`
}

type ForecastResponse struct {
	Predictions []PredictionResponse `json:"predicoes"`
	Confidence  string               `json:"confianca"`
	Model       string               `json:"modelo"`
}

type TopProductResponse struct {
	Product string `json:"produto"`
	Sales   int    `json:"vendas"`
}

func newStatsResponse(stats *domain.Stats, formatter *money.Formatter) StatsResponse {
	return StatsResponse{
		TotalSales:    stats.TotalCount,
		TotalRevenue:  formatter.Format(stats.TotalRevenue),
		AverageTicket: formatter.Format(stats.AverageTicket),
		TopProduct:    stats.TopProduct,
		TopSeller:     stats.TopSeller,
		TopLocation:   stats.TopLocation,
		Period: PeriodResponse{
			Start: utils.FormatBrazilianDate(stats.PeriodStart),
			End:   utils.FormatBrazilianDate(stats.PeriodEnd),
		},
	}
}

func newForecastResponse(forecast *domain.Forecast, formatter *money.Formatter) ForecastResponse {
	predictions := make([]PredictionResponse, 0, len(forecast.Predictions))
	for _, p := range forecast.Predictions {
		predictions = append(predictions, PredictionResponse{
			Date:             utils.FormatBrazilianDate(p.Date),
			PredictedSales:   p.PredictedCount,
			PredictedRevenue: formatter.Format(p.PredictedRevenue),
		})
	}

	return ForecastResponse{
		Predictions: predictions,
		Confidence:  forecast.Confidence,
		Model:       forecast.Model,
	}
}

func newTopProductsResponse(top []domain.ProductCount) []TopProductResponse {
	resp := make([]TopProductResponse, 0, len(top))
	for _, p := range top {
		resp = append(resp, TopProductResponse{Product: p.ProductName, Sales: p.Count})
	}
	return resp
}

// writeJSON serializa v com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}

func HomeHandler(version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]any{
			"status":    "API de Previsão de Vendas Farmacêuticas",
			"version":   version,
			"endpoints": []string{"/predict", "/stats", "/top-produtos"},
		})
	})
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
