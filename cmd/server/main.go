package main

import (
	"fmt"

	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/handler"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/server"
	"github.com/heart-smiles/heart-smiles-api/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("heart-smiles-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// A missing secret is logged loudly but does not block startup; auth
	// operations fail at call time instead.
	if cfg.App.JWTSecret == "" {
		log.Error().Msg("JWT_SECRET is not set: authenticated endpoints will fail until it is configured")
	}

	services := service.NewServices(cfg.App, log)
	handlers := handler.NewHandlers(services, cfg, log)
	router := handlers.HTTP.Init()

	if cfg.Server.Serverless() {
		// The hosting platform dispatches requests straight to the router;
		// opening a listener of our own is not this process's job.
		log.Info().Msg("serverless environment detected: no listener opened")
		return
	}

	srv, err := server.NewServer(router, cfg.Server, log)
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
