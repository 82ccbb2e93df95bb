package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sales-api/infrastructure/datasource/mocks"
	"github.com/vfg2006/pharma-sales-api/infrastructure/report"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/insighting"
	"github.com/vfg2006/pharma-sales-api/internal/usecases/ranking"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func salesHistory() domain.TransactionTable {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return domain.TransactionTable{
		{SaleDate: day(1), Price: decimal.RequireFromString("10.00"), ProductName: "A", SellerName: "Ana", UnitLocation: "Centro"},
		{SaleDate: day(1), Price: decimal.RequireFromString("20.00"), ProductName: "B", SellerName: "Bruno", UnitLocation: "Bairro"},
		{SaleDate: day(2), Price: decimal.RequireFromString("30.00"), ProductName: "A", SellerName: "Bruno", UnitLocation: "Centro"},
	}
}

func newTestService(t *testing.T, loader *mocks.MockLoader, outputDir string) *ReportExportService {
	t.Helper()

	cfg := &config.Config{
		Analytics: config.Analytics{
			DefaultForecastDays: 3,
			TopProductsLimit:    10,
		},
		ReportExport: config.ReportExport{
			CronSchedule: "0 7 * * *",
			OutputDir:    outputDir,
		},
	}

	service := NewReportExportService(
		insighting.NewService(loader),
		ranking.NewTopProductsService(loader),
		report.NewXLSXWriter(),
		cfg,
	)
	service.now = func() time.Time { return time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC) }
	return service
}

func TestReportExportService_RunOnce(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("writes workbook and records status", func(t *testing.T) {
		loader := mocks.NewMockLoader(ctrl)
		// estatísticas, previsão e ranking carregam a fonte separadamente
		loader.EXPECT().Load(gomock.Any()).Return(salesHistory(), nil).Times(3)

		outputDir := filepath.Join(t.TempDir(), "reports")
		service := newTestService(t, loader, outputDir)

		path, err := service.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, outputDir, filepath.Dir(path))
		assert.Regexp(t, regexp.MustCompile(`^relatorio-20240103-[0-9a-z]{8}\.xlsx$`), filepath.Base(path))

		_, err = os.Stat(path)
		require.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, path, status["last_report_path"])
		assert.Equal(t, "", status["last_error"])
		assert.Equal(t, false, status["running"])
	})

	t.Run("load failure is reported and no file is written", func(t *testing.T) {
		loader := mocks.NewMockLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(nil, domain.NewDataSourceError("arquivo ausente"))

		outputDir := filepath.Join(t.TempDir(), "reports")
		service := newTestService(t, loader, outputDir)

		path, err := service.RunOnce(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDataSource)
		assert.Empty(t, path)

		_, statErr := os.Stat(outputDir)
		assert.True(t, os.IsNotExist(statErr))

		status := service.GetStatus()
		assert.Contains(t, status["last_error"], "arquivo ausente")
	})

	t.Run("overlapping run is rejected", func(t *testing.T) {
		loader := mocks.NewMockLoader(ctrl)
		service := newTestService(t, loader, t.TempDir())

		require.True(t, service.tryAcquire())
		defer service.release()

		_, err := service.RunOnce(context.Background())
		assert.Error(t, err)
		assert.False(t, service.TriggerManualSync(context.Background()))
	})
}

func TestReportExportService_StartDisabled(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, mocks.NewMockLoader(ctrl), t.TempDir())

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}

func TestReportExportService_StartInvalidCron(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, mocks.NewMockLoader(ctrl), t.TempDir())
	service.config.Enabled = true
	service.config.CronSchedule = "não é cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
