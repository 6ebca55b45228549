package main

import (
	"context"
	"fmt"

	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/handler"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/server"
	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultshare-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	utils.InitHasherPool(cfg.Security.HashKey)

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	janitor := workers.NewEnvelopeJanitor(
		storages.ShareRepository,
		cfg.Retention.EnvelopeTTL,
		cfg.Retention.SweepInterval,
		log,
	)
	workers.NewWorkers(janitor).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
