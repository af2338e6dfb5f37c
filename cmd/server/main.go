package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"geonotes/internal/config"
	myHTTP "geonotes/internal/handler/http"
	"geonotes/internal/logger"
	"geonotes/internal/server"
	"geonotes/internal/service"
	"geonotes/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is a development convenience; absence is not an error
	_ = godotenv.Load()

	log := logger.NewLogger("geonotes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}
	handler := myHTTP.NewHandler(services, version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
