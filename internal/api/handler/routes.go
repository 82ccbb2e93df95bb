package handler

import (
	"net/http"

	"github.com/vfg2006/pharma-sales-api/internal/api/handler/router"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/insighting"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
	"github.com/vfg2006/pharma-sales-api/pkg/money"
)

func Home(version string) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HomeHandler(version),
		},
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Sales retorna as rotas de estatísticas, previsão e ranking
func Sales(
	insightService insighting.CombinedInsighter,
	rankingService ranking.RankingService,
	formatter *money.Formatter,
	defaults SalesDefaults,
) []router.Route {
	return []router.Route{
		{
			Path:    "/stats",
			Method:  http.MethodGet,
			Handler: GetStats(insightService, formatter),
		},
		{
			Path:    "/predict",
			Method:  http.MethodPost,
			Handler: Predict(insightService, formatter, defaults.ForecastDays),
		},
		{
			Path:    "/top-produtos",
			Method:  http.MethodGet,
			Handler: GetTopProducts(rankingService, defaults.TopProductsLimit),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
