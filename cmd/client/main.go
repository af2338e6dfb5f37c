package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"geonotes/internal/adapter"
	"geonotes/internal/client"
	"geonotes/internal/config"
	"geonotes/internal/logger"
	"geonotes/internal/service"
	"geonotes/internal/store"
	"geonotes/internal/tui"
	"geonotes/models"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	// the TUI owns the terminal, so logs go to a file
	log := logger.NewFileLogger("geonotes-client", cfg.App.LogFilePath)

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(serverAdapter, storages, log)

	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, serverAdapter, buildInfo, log)

	app := client.NewApp(cfg, ui, serverAdapter, storages, log)
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
