package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anorlov/vaultshare/internal/adapter"
	"github.com/anorlov/vaultshare/internal/cli"
	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("vaultshare-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	relayAdapter, err := adapter.NewHTTPRelayAdapter(cfg.Adapter, cfg.Security, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create relay adapter")
	}

	ctx := log.WithContext(context.Background())

	cache, err := store.NewSQLiteVaultCache(ctx, cfg.Storage.CachePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local vault cache")
	}

	services := service.NewClientServices(relayAdapter, cache, cfg, log)

	app := cli.New(services, log)
	app.SetBuildInfo(buildVersion, buildDate, buildCommit)
	if err := app.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
