package main

import (
	"fmt"

	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/client"
	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/service"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("park-audit-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	monitor := connectivity.NewMonitor(serverAdapter, cfg.Workers.HeartbeatInterval, log)

	services := service.NewClientServices(localStorage.QueueRepository, serverAdapter, monitor, cfg.Workers, log)

	ui, err := tui.New(services, monitor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, monitor, cfg.Agent, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
