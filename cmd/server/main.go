package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/map-veto/internal/config"
	"github.com/DoyleJ11/map-veto/internal/engine"
	"github.com/DoyleJ11/map-veto/internal/httpapi"
	"github.com/DoyleJ11/map-veto/internal/i18n"
	"github.com/DoyleJ11/map-veto/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, logger)
	err = multierr.Append(err, ignoreSyncErr(logger.Sync()))
	if err != nil {
		logger.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	tr, err := i18n.New(cfg.UI.DefaultLang)
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_LANG: %w", err)
	}

	s, err := httpapi.NewServer(logger, tr, engine.CryptoCoin{}, cfg.UI.StaticDir)
	if err != nil {
		return err
	}

	// Build the router *with* the server injected
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpapi.SetupRoutes(s),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Sync on a terminal stderr returns EINVAL/ENOTTY; nothing was lost.
func ignoreSyncErr(err error) error {
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
