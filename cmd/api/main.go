package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"golang.org/x/sync/errgroup"

	"fixify/api"
	"fixify/chat"
	"fixify/config"
	"fixify/identity"
	"fixify/job"
	"fixify/store"
)

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(context.Background(), *configPath, logger); err != nil {
		logger.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var slots store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPGStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		slots = pg
		logger.Info("using postgres slot store")
	} else {
		slots = store.NewMemoryStore()
		logger.Info("no database configured, using in-memory slot store")
	}

	tokens := identity.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	ids := identity.NewService(identity.NewRepository(slots), tokens)
	jobs := job.NewRegistry(job.NewRepository(slots))
	chatLog := chat.NewLog(chat.NewRepository(slots))

	if cfg.Seed {
		if err := jobs.EnsureSeed(ctx); err != nil {
			return err
		}
		if err := chatLog.EnsureSeed(ctx); err != nil {
			return err
		}
	}

	srv := api.NewServer(ids, tokens, jobs, chatLog, logger)
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Router(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", slog.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
