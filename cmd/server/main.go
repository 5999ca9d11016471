package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/exec-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/exec-notes/internal/app"
	"github.com/evgeniy-krivenko/exec-notes/internal/config"
	"github.com/evgeniy-krivenko/exec-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/exec-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, slogx.Setup{
		Level:   cfg.App.LogLevel,
		Pretty:  cfg.App.Pretty,
		Service: "exec-notes-server",
	}); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	backends, err := app.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build backends: %v", err)
	}
	defer func() {
		if err := backends.Close(); err != nil {
			slogx.Error(ctx, "close backends", slogx.Err(err))
		}
	}()

	notesSvc, err := notes.New(notes.NewOptions(
		backends.Resolve,
		notes.WithNotificationLimit(cfg.Sync.NotificationLimit),
	))
	if err != nil {
		return fmt.Errorf("init notes service: %v", err)
	}

	srv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		notesSvc.Handler(),
		gwserver.WithMiddlewares(slogx.Middleware, ctxtr.AuthMiddleware(cfg.Auth.Token)),
		gwserver.WithLogger(slogx.Component("http")),
		gwserver.WithHealth(backends.Health),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
