package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"sitesettings/internal/adapters/cli"
	"sitesettings/internal/application"
	"sitesettings/internal/config"
	"sitesettings/internal/domain"
	"sitesettings/internal/infrastructure/database"
	"sitesettings/internal/infrastructure/filestore"
	"sitesettings/internal/infrastructure/i18n"
	"sitesettings/internal/infrastructure/memory"
	"sitesettings/internal/infrastructure/sqlite"
	"sitesettings/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx := context.Background()
	kv, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ storage (%s): %v", cfg.StorageDriver, err)
	}
	defer closeStorage()

	translator, err := i18n.NewTranslator(cfg.DefaultLanguage)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	store := application.NewSettingsStore(ctx, kv,
		application.WithStorageKey(cfg.SettingsKey),
		application.WithDefaultLanguage(cfg.DefaultLanguage),
	)
	localization := application.NewLocalization(store, translator)
	defer localization.Close()

	ctx = application.WithSettings(ctx, store)
	ctx = application.WithLocalization(ctx, localization)

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		code := domain.Code(err)
		if code != "" {
			fmt.Fprintf(os.Stderr, "error: %v (%s)\n", err, code)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		closeStorage()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	handler := cli.NewHandler(application.SettingsFrom(ctx), application.LocalizationFrom(ctx), stdout, stderr)
	return handler.Run(ctx, args)
}

// openStorage builds the KeyValueStore selected by cfg. The returned close
// function is safe to call more than once.
func openStorage(ctx context.Context, cfg *config.Config) (output.KeyValueStore, func(), error) {
	noop := func() {}
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewStore(), noop, nil
	case config.DriverFile:
		s, err := filestore.NewStore(cfg.StoragePath)
		return s, noop, err
	case config.DriverSQLite:
		s, err := sqlite.Open(sqlite.Config{Path: cfg.StoragePath})
		if err != nil {
			return nil, noop, err
		}
		return s, once(func() { _ = s.Close() }), nil
	case config.DriverPostgres:
		repo, err := database.Open(ctx, database.Config{URL: cfg.DatabaseURL, MigrationsPath: cfg.MigrationsPath})
		if err != nil {
			return nil, noop, err
		}
		return repo, once(repo.Close), nil
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func once(fn func()) func() {
	done := false
	return func() {
		if !done {
			done = true
			fn()
		}
	}
}
