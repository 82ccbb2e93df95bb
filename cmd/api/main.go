package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sales-api/internal/api"
	"github.com/vfg2006/pharma-sales-api/internal/app"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.L.WithError(err).Warn("Erro ao fechar a fonte de dados")
		}
	}()

	// Inicia o agendador de exportação em background
	if err := application.ReportExport.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de exportação de relatórios")
	}

	server, err := api.New(
		cfg,
		application.InsightService,
		application.RankingService,
		application.ReportExport,
		application.Formatter,
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
