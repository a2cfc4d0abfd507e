// combatsim runs scripted combat scenarios and logs their reports.
//
// Usage:
//
//	go run ./cmd/combatsim -dir scenarios
//	go run ./cmd/combatsim scenarios/axe_frenzy.yaml scenarios/dual_wield.yaml
//	WARBAND_CONFIG=config/combatsim.yaml go run ./cmd/combatsim -seed-catalog
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/warband/internal/ai"
	"github.com/udisondev/warband/internal/config"
	"github.com/udisondev/warband/internal/data"
	"github.com/udisondev/warband/internal/db"
	"github.com/udisondev/warband/internal/scenario"
	"github.com/udisondev/warband/internal/world"
)

const ConfigPath = "config/combatsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dir := flag.String("dir", "scenarios", "directory with scenario .yaml files (used when no files are given)")
	seedCatalog := flag.Bool("seed-catalog", false, "write the embedded catalog to the database before loading (catalog_source: db)")
	flag.Parse()

	cfgPath := ConfigPath
	if p := os.Getenv("WARBAND_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("combatsim starting",
		"log_level", cfg.LogLevel,
		"tick", cfg.Tick,
		"catalog_source", cfg.CatalogSource)

	catalog, err := loadCatalog(ctx, cfg, *seedCatalog)
	if err != nil {
		return err
	}
	weapons, talents, enemies, nodes := catalog.Counts()
	slog.Info("catalog ready",
		"weapons", weapons,
		"talents", talents,
		"enemies", enemies,
		"nodes", nodes)

	paths := flag.Args()
	if len(paths) == 0 {
		paths, err = filepath.Glob(filepath.Join(*dir, "*.yaml"))
		if err != nil {
			return fmt.Errorf("listing scenarios in %s: %w", *dir, err)
		}
	}
	if len(paths) == 0 {
		slog.Warn("no scenarios to run", "dir", *dir)
		return nil
	}

	scripts := make([]*scenario.Script, len(paths))
	for i, path := range paths {
		if scripts[i], err = scenario.LoadFile(path); err != nil {
			return err
		}
	}

	opts := world.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.Player = cfg.Player
	opts.Abilities = cfg.Abilities
	opts.Buffs = cfg.Buffs
	runner := scenario.NewRunner(catalog, opts, cfg.Tick)

	reports := make([]*scenario.Report, len(scripts))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, s := range scripts {
		g.Go(func() error {
			rep, err := runner.Run(gctx, s)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("running scenarios: %w", err)
	}

	logger := slog.Default()
	for _, rep := range reports {
		rep.Log(logger)
	}
	slog.Info("combatsim finished", "scenarios", len(reports))
	return nil
}

func loadCatalog(ctx context.Context, cfg config.Simulator, seed bool) (*data.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogFile:
		return data.LoadFile(cfg.CatalogPath)
	case config.CatalogDatabase:
		return loadDatabaseCatalog(ctx, cfg.Database.DSN(), seed)
	default:
		return data.Default()
	}
}

func loadDatabaseCatalog(ctx context.Context, dsn string, seed bool) (*data.Catalog, error) {
	if _, err := db.RunMigrations(ctx, dsn); err != nil {
		return nil, fmt.Errorf("migrating catalog database: %w", err)
	}

	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	repo := database.Catalog()
	if seed {
		f, err := data.DefaultFile()
		if err != nil {
			return nil, err
		}
		if err := repo.Save(ctx, f); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	catalog, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from database: %w", err)
	}
	return catalog, nil
}
