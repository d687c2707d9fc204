package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"FinSound/internal/domain/repository"
	"FinSound/internal/handler/cli"
	"FinSound/pkg/config"
	xhttp "FinSound/pkg/http"
	applogger "FinSound/pkg/logger"
)

// App encapsulates the application lifecycle for both run modes.
type App struct {
	cfg     *config.Config
	logger  *applogger.Logger
	menu    *cli.Menu
	handler xhttp.Handler
	out     repository.AudioOutput
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	menu *cli.Menu,
	handler xhttp.Handler,
	out repository.AudioOutput,
) *App {
	if l == nil {
		l = applogger.NewNop()
	}
	return &App{cfg: cfg, logger: l, menu: menu, handler: handler, out: out}
}

// Run starts the configured mode and blocks until it ends or the process is interrupted.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch a.cfg.Mode {
	case config.ModeServe:
		err = a.serve(ctx)
	default:
		err = a.interactive(ctx)
	}

	if cerr := a.out.Close(); cerr != nil {
		a.logger.Warn("audio output close error", applogger.Error(cerr))
		err = errors.Join(err, cerr)
	}
	return err
}

// interactive runs the menu until it exits. An interrupt returns without
// waiting for the menu, which may be blocked on terminal input.
func (a *App) interactive(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- a.menu.Run(ctx) }()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.logger.Info("interrupted")
		return nil
	}
}

func (a *App) serve(ctx context.Context) error {
	srv := xhttp.NewServer(a.handler, a.logger,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(a.cfg.Server.SlowThreshold),
	)
	if err := srv.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("shutdown signal received")

	if err := srv.Stop(context.Background()); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}
