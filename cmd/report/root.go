package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/pharma-sales-api/internal/app"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

// appBuilder monta a aplicação a partir do ambiente
type appBuilder func(ctx context.Context) (*app.App, error)

func defaultBuilder(ctx context.Context) (*app.App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel)

	return app.New(ctx, cfg)
}

func newRootCmd(out io.Writer, build appBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Estatísticas, previsão e ranking do histórico de vendas da farmácia",
		Long: `Lê o histórico configurado em DATASET_SOURCE/DATASET_PATH e imprime
as mesmas visões expostas pela API em JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetOut(out)
	rootCmd.AddCommand(
		newStatsCmd(build),
		newPredictCmd(build),
		newTopCmd(build),
		newExportCmd(build),
	)

	return rootCmd
}
