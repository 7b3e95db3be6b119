package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eventdesk-lab/eventdesk/internal/accounts"
	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/auth"
	corecfg "github.com/eventdesk-lab/eventdesk/internal/core/config"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage/memory"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage/postgres"
	"github.com/eventdesk-lab/eventdesk/internal/docs"
	"github.com/eventdesk-lab/eventdesk/internal/events"
	"github.com/eventdesk-lab/eventdesk/internal/metrics"
	"github.com/eventdesk-lab/eventdesk/internal/migrations"
	"github.com/eventdesk-lab/eventdesk/internal/server"
	"golang.org/x/sync/errgroup"
)

// stores bundles the storage backends selected by database.type.
type stores struct {
	events   storage.EventStore
	accounts storage.AccountStore
	health   server.HealthChecker
	close    func() error
}

func main() {
	configPath := flag.String("config", "eventdesk.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 1. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	slog.Info("Loaded config",
		"address", cfg.Server.Addr(),
		"mode", cfg.Server.Mode,
		"storage", cfg.Database.Type,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(ctx context.Context, cfg *corecfg.Config) error {
	// 2. Initialize Storage
	st, err := openStores(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	// 3. Accounts
	accountSvc := accounts.NewService(st.accounts, accounts.NewPasswordEncoder(cfg.Auth.BcryptCost))
	if cfg.Seed.Enabled {
		created, err := accountSvc.Seed(ctx, seedAccounts(cfg.Seed.Accounts))
		if err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		slog.Info("Seed accounts applied", "created", created, "configured", len(cfg.Seed.Accounts))
	}

	// 4. Auth, Events and Docs
	m := metrics.New()
	tokens := auth.NewTokenService(auth.TokenConfig{
		SigningKey:      cfg.Auth.SigningKey,
		ResourceID:      cfg.Auth.ResourceID,
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	})
	authHandler := auth.NewHandler(auth.ClientCredentials{
		ID:     cfg.Auth.ClientID,
		Secret: cfg.Auth.ClientSecret,
	}, tokens, accountSvc, m)

	eventSvc := events.NewService(st.events, events.NewValidator(), m)
	eventHandler := events.NewHandler(eventSvc, cfg.Server.MaxBodySizeMB)

	guide, err := docs.Load()
	if err != nil {
		return fmt.Errorf("failed to load api guide: %w", err)
	}
	docsHandler, err := docs.NewHandler(guide)
	if err != nil {
		return fmt.Errorf("failed to build api guide: %w", err)
	}

	// 5. Initialize Server
	srv := server.New(server.Options{
		Addr:            cfg.Server.Addr(),
		Mode:            cfg.Server.Mode,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Metrics:         m,
		Store:           st.health,
		StoreName:       cfg.Database.Type,
	})
	authHandler.RegisterRoutes(srv.Engine)
	docsHandler.RegisterRoutes(srv.Engine)
	eventHandler.RegisterRoutes(srv.Engine.Group("", auth.Authenticate(tokens, accountSvc)))

	// 6. Serve until a signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down...")
		return nil
	})
	return g.Wait()
}

func openStores(cfg corecfg.DatabaseConfig) (*stores, error) {
	if cfg.Type == "memory" {
		slog.Warn("Using in-memory storage; data is lost on restart")
		s := memory.NewStore()
		return &stores{events: s, accounts: s, health: s, close: s.Close}, nil
	}

	db, err := postgres.OpenDB(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	adapter, err := postgres.Prepare(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &stores{
		events:   adapter,
		accounts: postgres.NewAccountAdapter(adapter.DB()),
		health:   adapter,
		close:    adapter.Close,
	}, nil
}

func seedAccounts(cfgs []corecfg.SeedAccountConfig) []accounts.SeedAccount {
	seeds := make([]accounts.SeedAccount, 0, len(cfgs))
	for _, c := range cfgs {
		roles := make([]v1.AccountRole, 0, len(c.Roles))
		for _, r := range c.Roles {
			roles = append(roles, v1.AccountRole(r))
		}
		seeds = append(seeds, accounts.SeedAccount{
			Email:    c.Email,
			Password: c.Password,
			Roles:    roles,
		})
	}
	return seeds
}
