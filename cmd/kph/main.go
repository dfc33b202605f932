package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-kph-client/internal/adapter"
	"github.com/MKhiriev/go-kph-client/internal/client"
	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/service"
	"github.com/MKhiriev/go-kph-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("kph")
	cfg, err := config.GetClientConfig()
	if err != nil {
		exit(log, err, "error getting configs")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, log)
	if err != nil {
		exit(log, err, "create transport")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		exit(log, err, "create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, transport, log)

	app, err := client.NewApp(services, cfg.App, os.Stdout, log)
	if err != nil {
		exit(log, err, "init client app error")
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		localStorage.Close()
		exit(log, err, "client run error")
	}
}

// exit logs err, reports it on stderr and terminates with status 1, or 2
// for usage errors.
func exit(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "kph: %v\n", err)

	if errors.Is(err, client.ErrUsage) {
		os.Exit(2)
	}
	os.Exit(1)
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
