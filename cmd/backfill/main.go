package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/evm-indexer/internal/app"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/repository"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/service/indexer"
	"github.com/goodnatureofminers/evm-indexer/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Coin        model.Coin        `long:"coin" env:"EVM_BACKFILL_COIN" default:"ETH" description:"coin name"`
	Network     model.Network     `long:"network" env:"EVM_BACKFILL_NETWORK" required:"true" description:"network name"`
	From        uint64            `long:"from" env:"EVM_BACKFILL_FROM" required:"true" description:"first height to index"`
	To          uint64            `long:"to" env:"EVM_BACKFILL_TO" required:"true" description:"height to stop before"`
	Workers     int               `long:"workers" env:"EVM_BACKFILL_WORKERS" default:"4" description:"worker count"`
	MetricsAddr string            `long:"metrics-addr" env:"EVM_BACKFILL_METRICS_ADDR" description:"address for metrics server"`
	RPC         app.RPCOptions    `group:"RPC Options" env-namespace:"EVM_BACKFILL"`
	Store       repository.Config `group:"Store Options" env-namespace:"EVM_BACKFILL"`
	Log         app.LogOptions    `group:"Log Options" env-namespace:"EVM_BACKFILL"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	app.ServeMetrics(ctx, cfg.MetricsAddr, logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("evm backfill failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.To <= cfg.From {
		return fmt.Errorf("--to %d must be greater than --from %d", cfg.To, cfg.From)
	}

	repo, err := repository.Open(ctx, cfg.Store, cfg.Network)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	source, closeSource, err := app.DialSource(ctx, cfg.RPC, cfg.Coin, cfg.Network)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer closeSource()

	rangeIndexer, err := indexer.NewRangeIndexerService(source, repo, metrics.NewRangeIndexer(cfg.Coin, cfg.Network), cfg.Network, logger)
	if err != nil {
		return err
	}

	report := indexer.NewBackfillService(rangeIndexer, cfg.Workers, cfg.Network, logger).Run(ctx, cfg.From, cfg.To)
	if report.Err != nil {
		return report.Err
	}
	if len(report.Failed) > 0 {
		for _, failed := range report.Failed {
			logger.Warn("height left unindexed", zap.Uint64("height", failed.Height), zap.Error(failed.Err))
		}
		return fmt.Errorf("%d heights left unindexed, first at %d", len(report.Failed), report.Failed[0].Height)
	}
	return nil
}
