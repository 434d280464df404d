package main

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-dapp/internal/adapter"
	"github.com/MKhiriev/go-wallet-dapp/internal/config"
	httphandler "github.com/MKhiriev/go-wallet-dapp/internal/handler/http"
	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/metrics"
	"github.com/MKhiriev/go-wallet-dapp/internal/provider"
	"github.com/MKhiriev/go-wallet-dapp/internal/server"
	"github.com/MKhiriev/go-wallet-dapp/internal/service"
	"github.com/MKhiriev/go-wallet-dapp/internal/workers"
	"github.com/MKhiriev/go-wallet-dapp/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("wallet-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("node", cfg.Adapter.NodeURL).
		Str("address", cfg.Server.HTTPAddress).
		Dur("refresh", cfg.Workers.BalanceRefreshInterval).
		Msg("received configs")

	m := metrics.New()

	metadata := provider.ProvideMetadata(cfg.App.Name)
	walletClient, err := provider.ProvideClient(metadata, cfg.App.APIKey, cfg.Adapter, log,
		adapter.WithRequestObserver(m))
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet client")
	}

	coordinator := service.NewEventCoordinator(walletClient, log, service.WithEventRecorder(m))

	version := cfg.App.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	handler := httphandler.NewHandler(coordinator, version, m.Handler(), log)

	bg := workers.NewWorkers(
		workers.NewBalanceRefresher(coordinator, cfg.Workers.BalanceRefreshInterval, log),
	)

	srv, err := server.NewServer(handler.Init(), cfg.Server, bg, coordinator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
