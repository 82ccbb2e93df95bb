package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/pharma-sales-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

// CronJobTypeReport identifica a exportação do relatório em planilha
const CronJobTypeReport = "report"

// ReportExporter é o agendador que pode ser disparado manualmente
type ReportExporter interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportExportService ReportExporter
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeReport:
			if services.ReportExportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "Serviço de exportação de relatórios não disponível", nil)
				return
			}

			// a exportação continua depois que a resposta é enviada
			if !services.ReportExportService.TriggerManualSync(context.WithoutCancel(r.Context())) {
				writeJSON(w, r, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ReportExportService != nil {
			status[CronJobTypeReport] = services.ReportExportService.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
