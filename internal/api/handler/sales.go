package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vfg2006/pharma-sales-api/internal/usecases/insighting"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
	"github.com/vfg2006/pharma-sales-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
	"github.com/vfg2006/pharma-sales-api/pkg/money"
)

// GetStats retorna o resumo do histórico de vendas
func GetStats(service insighting.StatsInsighter, formatter *money.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetStats(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular estatísticas")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, newStatsResponse(stats, formatter))
	}
}

// Predict prevê as vendas dos próximos dias. O corpo é opcional; sem "days"
// (ou "dias") usa o horizonte padrão.
func Predict(service insighting.ForecastInsighter, formatter *money.Formatter, defaultDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := defaultDays

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao ler corpo da requisição", nil)
			return
		}

		if len(bytes.TrimSpace(body)) > 0 {
			var req PredictRequest
			if err := json.Unmarshal(body, &req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", err.Error())
				return
			}
			days = req.Horizon(defaultDays)
		}

		forecast, err := service.GetForecast(r.Context(), days)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("dias", days).Error("Erro ao calcular previsão")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, newForecastResponse(forecast, formatter))
	}
}

// GetTopProducts retorna os produtos mais vendidos
func GetTopProducts(service ranking.RankingService, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := service.GetTopProducts(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular produtos mais vendidos")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, newTopProductsResponse(top))
	}
}
