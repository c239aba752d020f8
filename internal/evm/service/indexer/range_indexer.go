package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/internal/metrics"
	"go.uber.org/zap"
)

// HeightError records why a single height was left unindexed.
type HeightError struct {
	Height uint64
	Err    error
}

func (e HeightError) Error() string {
	return fmt.Sprintf("height %d: %v", e.Height, e.Err)
}

func (e HeightError) Unwrap() error {
	return e.Err
}

// RangeResult summarizes one IndexRange call. Err is set when the range was
// interrupted by context cancellation.
type RangeResult struct {
	Start   uint64
	End     uint64
	Indexed int
	Skipped int
	Failed  []HeightError
	Err     error
}

// RangeIndexerService fetches and persists every missing height of a range.
// It holds no state between calls.
type RangeIndexerService struct {
	logger  *zap.Logger
	source  Source
	repo    Repository
	metrics RangeIndexerMetrics
}

func NewRangeIndexerService(
	source Source,
	repo Repository,
	metrics RangeIndexerMetrics,
	network model.Network,
	logger *zap.Logger,
) (*RangeIndexerService, error) {
	if metrics == nil {
		return nil, errors.New("range indexer metrics is required")
	}

	return &RangeIndexerService{
		logger:  logger.Named("rangeIndexer").With(zap.String("network", string(network))),
		source:  source,
		repo:    repo,
		metrics: metrics,
	}, nil
}

// IndexRange indexes [start, end) in increasing order. A failed height is
// recorded and the range continues with the next one.
func (s *RangeIndexerService) IndexRange(ctx context.Context, start, end uint64) RangeResult {
	started := time.Now()
	result := RangeResult{Start: start, End: end}
	s.logger.Info("indexing range", zap.Uint64("start", start), zap.Uint64("end", end))

	for height := start; height < end; height++ {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}

		heightStarted := time.Now()
		indexed, transactions, err := s.indexHeight(ctx, height)
		switch {
		case err != nil && ctx.Err() != nil:
			result.Err = ctx.Err()
		case err != nil:
			s.metrics.ObserveHeight(metrics.HeightFailed, 0, heightStarted)
			s.logger.Warn("index height failed", zap.Uint64("height", height), zap.Error(err))
			result.Failed = append(result.Failed, HeightError{Height: height, Err: err})
		case indexed:
			s.metrics.ObserveHeight(metrics.HeightIndexed, transactions, heightStarted)
			s.logger.Debug("indexed block", zap.Uint64("height", height), zap.Int("transactions", transactions))
			result.Indexed++
		default:
			s.metrics.ObserveHeight(metrics.HeightSkipped, 0, heightStarted)
			s.logger.Debug("block already indexed", zap.Uint64("height", height))
			result.Skipped++
		}
		if result.Err != nil {
			break
		}
	}

	s.metrics.ObserveRange(len(result.Failed) > 0 || result.Err != nil, started)
	return result
}

// indexHeight persists the block at height unless it is stored already.
// Transactions are written before the block record.
func (s *RangeIndexerService) indexHeight(ctx context.Context, height uint64) (bool, int, error) {
	found, err := s.repo.HasBlock(ctx, height)
	if err != nil {
		return false, 0, fmt.Errorf("check block: %w", err)
	}
	if found {
		return false, 0, nil
	}

	block, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return false, 0, fmt.Errorf("fetch block: %w", err)
	}

	for _, tx := range block.Transactions {
		if err := s.repo.SaveTransaction(ctx, tx); err != nil {
			return false, 0, fmt.Errorf("save transaction %s: %w", tx.TxID, err)
		}
	}
	if err := s.repo.SaveBlock(ctx, *block); err != nil {
		return false, 0, fmt.Errorf("save block: %w", err)
	}
	return true, len(block.Transactions), nil
}
