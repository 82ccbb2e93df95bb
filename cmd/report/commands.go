package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/pharma-sales-api/internal/app"
	"github.com/vfg2006/pharma-sales-api/pkg/utils"
)

// withApp monta a aplicação, executa fn e libera a fonte de dados
func withApp(cmd *cobra.Command, build appBuilder, fn func(a *app.App) error) error {
	a, err := build(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := utils.PrettyJson(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newStatsCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Resumo do histórico de vendas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, func(a *app.App) error {
				stats, err := a.InsightService.GetStats(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, stats)
			})
		},
	}
}

func newPredictCmd(build appBuilder) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Previsão de vendas para os próximos dias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, func(a *app.App) error {
				if !cmd.Flags().Changed("days") {
					days = a.Config.Analytics.DefaultForecastDays
				}

				forecast, err := a.InsightService.GetForecast(cmd.Context(), days)
				if err != nil {
					return err
				}
				return printJSON(cmd, forecast)
			})
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Quantidade de dias a prever")
	return cmd
}

func newTopCmd(build appBuilder) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Produtos mais vendidos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, func(a *app.App) error {
				if !cmd.Flags().Changed("limit") {
					limit = a.Config.Analytics.TopProductsLimit
				}

				top, err := a.RankingService.GetTopProducts(cmd.Context(), limit)
				if err != nil {
					return err
				}
				return printJSON(cmd, top)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Tamanho do ranking")
	return cmd
}

func newExportCmd(build appBuilder) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Gera a planilha com resumo, previsão e ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, func(a *app.App) error {
				if outputDir != "" {
					a.ReportExport.SetOutputDir(outputDir)
				}

				path, err := a.ReportExport.RunOnce(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, map[string]string{"path": path})
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "Diretório de saída (padrão: REPORT_EXPORT_OUTPUT_DIR)")
	return cmd
}
