package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "tour-campaigns/internal/adapter/http"
	"tour-campaigns/internal/adapter/memory"
	"tour-campaigns/internal/adapter/postgres"
	"tour-campaigns/internal/adapter/usecase"
	"tour-campaigns/internal/config"
	"tour-campaigns/internal/config/configs"
	"tour-campaigns/internal/core/port"
	"tour-campaigns/internal/db"
)

// store bundles the repositories the use case needs together with a
// function releasing their resources.
type store struct {
	campaigns port.CampaignRepository
	tours     port.TourRepository
	users     port.UserRepository
	close     func()
}

// main is the entry point of the campaign service. It loads configuration,
// opens the configured store (optionally migrating and seeding it), then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout, cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store init error", slog.String("driver", cfg.Store.DriverName()), slog.Any("error", err))
		return
	}
	defer st.close()

	svc := usecase.NewCampaignUseCase(st.campaigns, st.tours, st.users, logger,
		usecase.WithPageSize(port.PageSizeConfig{
			Default: cfg.Campaign.DefaultPageSize,
			Max:     cfg.Campaign.MaxPageSize,
		}),
	)

	handler := httpadapter.NewHandler(svc, logger, cfg.Campaign.RetentionDays)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore builds the repositories for the configured driver.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*store, error) {
	if cfg.Store.DriverName() == configs.StoreDriverMemory {
		campaigns := memory.NewCampaignRepository()
		dir := memory.NewDirectory()
		if cfg.Psql.Seed {
			demo := db.DemoData(time.Now().UTC())
			for _, u := range demo.Users {
				dir.AddUser(u)
			}
			for _, t := range demo.Tours {
				dir.AddTour(t)
			}
			campaigns.Insert(demo.Campaigns...)
			logger.Info("demo data loaded", slog.Int("campaigns", len(demo.Campaigns)))
		}
		return &store{campaigns: campaigns, tours: dir, users: dir, close: func() {}}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if cfg.Psql.Seed {
		demo := db.DemoData(time.Now().UTC())
		if err = db.Seed(ctx, pool, demo); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded", slog.Int("campaigns", len(demo.Campaigns)))
	}
	return &store{
		campaigns: postgres.NewCampaignRepository(pool),
		tours:     postgres.NewTourRepository(pool),
		users:     postgres.NewUserRepository(pool),
		close:     pool.Close,
	}, nil
}
