package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
)

type config struct {
	DatabaseDSN   string `long:"database-dsn" env:"MIGRATIONS_DATABASE_DSN" default:"clickhouse://localhost:9000/default" description:"Database DSN (clickhouse://... or pgx5://...)"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" description:"Path to migration files, defaults to migrations/<backend>"`
	Down          bool   `long:"down" env:"MIGRATIONS_DOWN" description:"Roll back every migration instead of applying them"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg); err != nil {
		log.Fatalf("migration run failed: %v", err)
	}
}

// migrationsDir picks the bundled directory matching the DSN scheme when none
// is configured.
func migrationsDir(cfg config) (string, error) {
	if cfg.MigrationsDir != "" {
		return cfg.MigrationsDir, nil
	}
	switch {
	case strings.HasPrefix(cfg.DatabaseDSN, "clickhouse://"):
		return filepath.Join("migrations", "clickhouse"), nil
	case strings.HasPrefix(cfg.DatabaseDSN, "pgx5://"):
		return filepath.Join("migrations", "postgres"), nil
	default:
		return "", fmt.Errorf("unsupported database dsn scheme in %q", redact(cfg.DatabaseDSN))
	}
}

func redact(dsn string) string {
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return "<invalid>"
	}
	return scheme + "://..."
}

func runMigrations(ctx context.Context, cfg config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := migrationsDir(cfg)
	if err != nil {
		return err
	}
	dir, err := filepath.Abs(rel)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(dir))
	m, err := migrate.New(sourceURL, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("migration source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("migration database close error: %v", dbErr)
		}
	}()

	go func() {
		<-ctx.Done()
		m.GracefulStop <- true
	}()

	apply := m.Up
	if cfg.Down {
		apply = m.Down
	}
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return nil
		}
		return err
	}

	log.Println("migrations applied successfully")
	return nil
}
