package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/crypto"
	"github.com/MKhiriev/go-kph-client/internal/fakekph"
	"github.com/MKhiriev/go-kph-client/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fakekph")
	cfg, err := config.GetFakeServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	svc := fakekph.NewService(crypto.NewRandomSource(), fakekph.Options{
		DeclineAssociate: cfg.DeclineAssociate,
		LockedMessage:    cfg.LockedMessage,
	})
	if cfg.EntriesFile != "" {
		n, err := svc.LoadEntries(cfg.EntriesFile)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading entries")
		}
		log.Info().Int("entries", n).Msg("entries loaded")
	}

	server := fakekph.NewServer(fakekph.NewHandler(svc, log).Init(), cfg.HTTPAddress, log)
	if err = server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
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
