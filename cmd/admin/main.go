package main

import (
	"context"
	"fmt"

	"go-folio/internal/adapter"
	"go-folio/internal/client"
	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/query"
	"go-folio/internal/service"
	"go-folio/internal/store"
	"go-folio/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAdminLogger("folio-admin")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	session, err := store.NewSessionStore(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	// The session store doubles as the token source: requests pick up
	// whatever token the last login persisted.
	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api gateway")
	}

	services := service.NewClientServices(session, gateway)
	queries := query.NewQueries(services)

	ui, err := tui.New(services, queries, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(*cfg, services, queries, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init admin app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("admin run error")
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
