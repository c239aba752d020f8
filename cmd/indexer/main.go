package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/app"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/repository"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/service/indexer"
	"github.com/goodnatureofminers/evm-indexer/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Coin          model.Coin        `long:"coin" env:"EVM_INDEXER_COIN" default:"ETH" description:"coin name"`
	Network       model.Network     `long:"network" env:"EVM_INDEXER_NETWORK" required:"true" description:"network name"`
	WSURL         string            `long:"ws-url" env:"EVM_INDEXER_WS_URL" description:"websocket endpoint for new head notifications"`
	Workers       int               `long:"workers" env:"EVM_INDEXER_WORKERS" default:"4" description:"catch-up worker count"`
	PollInterval  time.Duration     `long:"poll-interval" env:"EVM_INDEXER_POLL_INTERVAL" default:"15s" description:"chainhead poll interval"`
	MaxReorgDepth uint64            `long:"max-reorg-depth" env:"EVM_INDEXER_MAX_REORG_DEPTH" default:"128" description:"deepest reorg rolled back automatically, 0 for unbounded"`
	MetricsAddr   string            `long:"metrics-addr" env:"EVM_INDEXER_METRICS_ADDR" default:":2112" description:"address for metrics server"`
	RPC           app.RPCOptions    `group:"RPC Options" env-namespace:"EVM_INDEXER"`
	Store         repository.Config `group:"Store Options" env-namespace:"EVM_INDEXER"`
	Log           app.LogOptions    `group:"Log Options" env-namespace:"EVM_INDEXER"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("evm indexer failed", zap.Error(err))
	}
	logger.Info("evm indexer stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
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

	blockSignal, err := startBlockSignal(ctx, cfg.WSURL, logger.Named("blockSignal"))
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}

	svc, err := indexer.NewChainheadSynchronizerService(
		source,
		repo,
		metrics.NewSynchronizer(cfg.Coin, cfg.Network),
		metrics.NewRangeIndexer(cfg.Coin, cfg.Network),
		indexer.SynchronizerConfig{
			Workers:       cfg.Workers,
			PollInterval:  cfg.PollInterval,
			MaxReorgDepth: cfg.MaxReorgDepth,
		},
		cfg.Coin,
		cfg.Network,
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}
