// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-kph-client/internal/app"
	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/service"
	"github.com/MKhiriev/go-kph-client/internal/store"
)

// App runs a single kph command.
type App struct {
	services *service.ClientServices
	settings config.ClientApp
	out      io.Writer

	// copyToClipboard is clipboard.WriteAll outside of tests.
	copyToClipboard func(string) error

	logger *logger.Logger
}

// NewApp returns an App writing command output to out.
func NewApp(services *service.ClientServices, settings config.ClientApp, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil || services.ProtocolService == nil {
		return nil, errors.New("client services are not initialized")
	}

	return &App{
		services:        services,
		settings:        settings,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	command, operands := args[0], args[1:]
	a.logger.Debug().Str("func", "App.Run").Str("command", command).Msg("running command")

	switch command {
	case "associate":
		return a.associate(ctx)
	case "test":
		return a.test(ctx)
	case "get":
		if len(operands) != 1 {
			return fmt.Errorf("%w: %w", ErrUsage, errMissingURL)
		}
		return a.get(ctx, operands[0])
	case "forget":
		return a.forget(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (a *App) associate(ctx context.Context) error {
	cfg, err := a.services.SessionService.Associate(ctx)
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf(app.MsgAssociated, cfg.ID))
	return nil
}

func (a *App) test(ctx context.Context) error {
	ok, err := a.services.SessionService.Test(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrNotAssociated
	}
	if err != nil {
		return err
	}

	if !ok {
		a.println(app.MsgAssociationRejected)
		return nil
	}
	a.println(app.MsgAssociationValid)
	return nil
}

func (a *App) get(ctx context.Context, url string) error {
	cfg, err := a.services.SessionService.Ensure(ctx)
	if err != nil {
		return err
	}

	entries, err := a.services.ProtocolService.GetLogins(ctx, cfg, url)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		a.println(noticeStyle.Render(fmt.Sprintf(app.MsgNoEntries, url)))
		return nil
	}

	for _, e := range entries {
		a.println(renderEntry(e, a.settings.ShowPasswords))
	}

	if a.settings.CopyPassword {
		if err = a.copyToClipboard(entries[0].Password); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.println(noticeStyle.Render(fmt.Sprintf(app.MsgPasswordCopied, entries[0].Name)))
	}
	return nil
}

func (a *App) forget(ctx context.Context) error {
	err := a.services.SessionService.Forget(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		a.println(app.MsgNothingToForget)
		return nil
	}
	if err != nil {
		return err
	}

	a.println(app.MsgForgotten)
	return nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}
