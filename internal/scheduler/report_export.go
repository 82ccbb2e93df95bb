package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sales-api/infrastructure/report"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/insighting"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
	"github.com/vfg2006/pharma-sales-api/pkg/utils"
)

// ReportExportConfig representa a configuração do agendador de relatórios
type ReportExportConfig struct {
	CronSchedule     string
	OutputDir        string
	ForecastDays     int
	TopProductsLimit int
	Enabled          bool
}

// ReportExportService gera periodicamente a planilha com estatísticas,
// previsão e ranking. O relatório é apenas uma saída: a API nunca o lê.
type ReportExportService struct {
	scheduler      *gocron.Scheduler
	config         ReportExportConfig
	insightService insighting.CombinedInsighter
	rankingService ranking.RankingService
	writer         report.Writer
	now            func() time.Time

	exportRunning   bool
	exportMutex     sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastReportPath  string
	lastError       string
}

// NewReportExportService cria uma nova instância do serviço de exportação
func NewReportExportService(
	insightService insighting.CombinedInsighter,
	rankingService ranking.RankingService,
	writer report.Writer,
	appConfig *config.Config,
) *ReportExportService {
	exportConfig := ReportExportConfig{
		CronSchedule:     appConfig.ReportExport.CronSchedule,
		OutputDir:        appConfig.ReportExport.OutputDir,
		ForecastDays:     appConfig.Analytics.DefaultForecastDays,
		TopProductsLimit: appConfig.Analytics.TopProductsLimit,
		Enabled:          appConfig.ReportExport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"output_dir":    exportConfig.OutputDir,
		"forecast_days": exportConfig.ForecastDays,
		"enabled":       exportConfig.Enabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportExportService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         exportConfig,
		insightService: insightService,
		rankingService: rankingService,
		writer:         writer,
		now:            time.Now,
	}
}

// Start inicia o agendador
func (s *ReportExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Exportação de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de exportação de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runGuarded(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// runGuarded executa a exportação ignorando disparos sobrepostos
func (s *ReportExportService) runGuarded(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("Exportação de relatório já em andamento, ignorando")
		return
	}
	defer s.release()

	if _, err := s.export(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao exportar relatório de vendas")
	}
}

func (s *ReportExportService) tryAcquire() bool {
	s.exportMutex.Lock()
	defer s.exportMutex.Unlock()

	if s.exportRunning {
		return false
	}
	s.exportRunning = true
	return true
}

func (s *ReportExportService) release() {
	s.exportMutex.Lock()
	s.exportRunning = false
	s.exportMutex.Unlock()
}

// RunOnce exporta um relatório imediatamente e devolve o caminho do arquivo
func (s *ReportExportService) RunOnce(ctx context.Context) (string, error) {
	if !s.tryAcquire() {
		return "", fmt.Errorf("exportação de relatório já em andamento")
	}
	defer s.release()

	return s.export(ctx)
}

func (s *ReportExportService) export(ctx context.Context) (string, error) {
	startTime := s.now()
	s.setStarted(startTime)

	path, err := s.buildAndWrite(ctx, startTime)
	s.setFinished(path, err)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"duration": time.Since(startTime).String(),
	}).Info("Relatório de vendas exportado")

	return path, nil
}

func (s *ReportExportService) buildAndWrite(ctx context.Context, generatedAt time.Time) (string, error) {
	stats, err := s.insightService.GetStats(ctx)
	if err != nil {
		return "", fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}

	forecast, err := s.insightService.GetForecast(ctx, s.config.ForecastDays)
	if err != nil {
		return "", fmt.Errorf("erro ao calcular previsão: %w", err)
	}

	top, err := s.rankingService.GetTopProducts(ctx, s.config.TopProductsLimit)
	if err != nil {
		return "", fmt.Errorf("erro ao calcular ranking de produtos: %w", err)
	}

	s.exportMutex.Lock()
	outputDir := s.config.OutputDir
	s.exportMutex.Unlock()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de relatórios: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar identificador do relatório: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("relatorio-%s-%s.xlsx", generatedAt.Format("20060102"), id))

	err = s.writer.Write(&report.Report{
		GeneratedAt: generatedAt,
		Stats:       stats,
		Forecast:    forecast,
		TopProducts: top,
	}, path)
	if err != nil {
		return "", err
	}

	return path, nil
}

func (s *ReportExportService) setStarted(at time.Time) {
	s.exportMutex.Lock()
	defer s.exportMutex.Unlock()
	s.lastStartedAt = at
}

func (s *ReportExportService) setFinished(path string, err error) {
	s.exportMutex.Lock()
	defer s.exportMutex.Unlock()

	s.lastCompletedAt = s.now()
	s.lastReportPath = path
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// SetOutputDir troca o diretório de saída das próximas exportações
func (s *ReportExportService) SetOutputDir(dir string) {
	s.exportMutex.Lock()
	defer s.exportMutex.Unlock()
	s.config.OutputDir = dir
}

// TriggerManualSync inicia manualmente uma exportação em background.
// Devolve false quando já existe uma exportação em andamento.
func (s *ReportExportService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryAcquire() {
		logrus.Info("Exportação de relatório já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando exportação manual de relatório")
	go func() {
		defer s.release()
		if _, err := s.export(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao exportar relatório de vendas")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportExportService) GetStatus() map[string]any {
	s.exportMutex.Lock()
	defer s.exportMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"output_dir":        s.config.OutputDir,
		"running":           s.exportRunning,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_report_path":  s.lastReportPath,
		"last_error":        s.lastError,
	}
}
