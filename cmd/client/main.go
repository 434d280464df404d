package main

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-dapp/internal/client"
	"github.com/MKhiriev/go-wallet-dapp/internal/config"
	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/provider"
	"github.com/MKhiriev/go-wallet-dapp/internal/service"
	"github.com/MKhiriev/go-wallet-dapp/internal/tui"
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

	log := logger.NewClientLogger("wallet-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	metadata := provider.ProvideMetadata(cfg.App.Name)
	walletClient, err := provider.ProvideClient(metadata, cfg.App.APIKey, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet client")
	}

	coordinator := service.NewEventCoordinator(walletClient, log)

	ui, err := tui.New(coordinator, metadata.Name, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	bg := workers.NewWorkers(
		workers.NewBalanceRefresher(coordinator, cfg.Workers.BalanceRefreshInterval, log),
	)

	app, err := client.NewApp(ui, bg, coordinator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
