// Package app holds process wiring shared by the indexer binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/ethereum"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogOptions configures the process logger.
type LogOptions struct {
	Level  string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level (debug, info, warn, error)"`
	Format string `long:"log-format" env:"LOG_FORMAT" default:"console" choice:"console" choice:"json" description:"Log encoding"`
}

// NewLogger builds a development style logger for console output and a
// production one for json.
func NewLogger(opts LogOptions) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var cfg zap.Config
	switch opts.Format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// RPCOptions configures the ledger node connection.
type RPCOptions struct {
	URL          string        `long:"rpc-url" env:"RPC_URL" default:"http://127.0.0.1:8545" description:"Ledger node JSON-RPC endpoint"`
	RateLimit    int           `long:"rpc-rate-limit" env:"RPC_RATE_LIMIT" default:"0" description:"Maximum RPC requests per second, 0 for unlimited"`
	Timeout      time.Duration `long:"rpc-timeout" env:"RPC_TIMEOUT" default:"30s" description:"Timeout of a single RPC request"`
	MethodLabels string        `long:"method-labels" env:"METHOD_LABELS" description:"YAML file with additional method id labels"`
}

// DialSource connects to the ledger node and returns a block source together
// with a function releasing the connection.
func DialSource(ctx context.Context, opts RPCOptions, coin model.Coin, network model.Network) (*ethereum.Source, func(), error) {
	labels, err := model.LoadMethodLabels(opts.MethodLabels)
	if err != nil {
		return nil, nil, err
	}

	var limiter ratelimit.Limiter
	if opts.RateLimit > 0 {
		limiter = ratelimit.New(opts.RateLimit)
	}

	client, err := ethereum.Dial(ctx, opts.URL, limiter, opts.Timeout, metrics.NewRPCClient(coin, network))
	if err != nil {
		return nil, nil, err
	}
	return ethereum.NewSource(client, labels, network, coin), client.Close, nil
}

// ServeMetrics serves /metrics and /healthz on addr until ctx is done.
func ServeMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
}
