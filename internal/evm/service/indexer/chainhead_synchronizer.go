package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/clock"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// ChainheadSynchronizerService catches the store up with the network and then
// follows the chainhead, rolling back reorganized blocks at the boundary of
// the previously scheduled range.
type ChainheadSynchronizerService struct {
	logger        *zap.Logger
	source        Source
	repo          Repository
	indexer       RangeIndexer
	reorg         ReorgHandler
	metrics       SynchronizerMetrics
	workerCount   int
	followWorkers int
	followQueue   int
	pollInterval  time.Duration
	wait          func(context.Context, time.Duration, <-chan struct{}) (bool, error)
	blockSignal   <-chan struct{}
}

// NewChainheadSynchronizerService wires a synchronizer together with its range
// indexer and reorg handler. blockSignal may be nil.
func NewChainheadSynchronizerService(
	source Source,
	repo Repository,
	metrics SynchronizerMetrics,
	rangeMetrics RangeIndexerMetrics,
	cfg SynchronizerConfig,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*ChainheadSynchronizerService, error) {
	if metrics == nil {
		return nil, errors.New("synchronizer metrics is required")
	}
	cfg = cfg.withDefaults()

	rangeIndexer, err := NewRangeIndexerService(source, repo, rangeMetrics, network, logger)
	if err != nil {
		return nil, err
	}

	return &ChainheadSynchronizerService{
		logger: logger.Named("synchronizer").With(
			zap.String("coin", string(coin)),
			zap.String("network", string(network)),
		),
		source:        source,
		repo:          repo,
		indexer:       rangeIndexer,
		reorg:         NewReorgHandlerService(source, repo, cfg.MaxReorgDepth, network, logger),
		metrics:       metrics,
		workerCount:   cfg.Workers,
		followWorkers: followWorkerCount,
		followQueue:   followQueueSize,
		pollInterval:  cfg.PollInterval,
		wait:          clock.WaitSignal,
		blockSignal:   blockSignal,
	}, nil
}

// Run catches up and then polls until ctx is canceled. Scheduled ranges are
// given the chance to observe cancellation before Run returns ctx.Err().
func (s *ChainheadSynchronizerService) Run(ctx context.Context) error {
	catchUp := workerpool.New(ctx, s.workerCount, s.workerCount)
	follow := workerpool.New(ctx, s.followWorkers, s.followQueue)
	defer func() {
		catchUp.Close()
		follow.Close()
	}()

	previous, err := s.catchUp(ctx, catchUp)
	if err != nil {
		return err
	}

	for {
		if _, err := s.wait(ctx, s.pollInterval, s.blockSignal); err != nil {
			return err
		}

		started := time.Now()
		next, err := s.poll(ctx, follow, previous)
		s.metrics.ObservePoll(err, started)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("poll cycle failed", zap.Uint64("previous", previous), zap.Error(err))
		}
		previous = next
	}
}

// catchUp schedules [local, network) across the catch-up pool and returns the
// network height. Reading either height is retried until it succeeds.
func (s *ChainheadSynchronizerService) catchUp(ctx context.Context, pool *workerpool.Pool) (uint64, error) {
	var local, network uint64
	for {
		var err error
		local, network, err = s.heights(ctx)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		s.logger.Warn("read chainheads failed, backing off", zap.Error(err), zap.Duration("sleep", s.pollInterval))
		if sleepErr := clock.SleepWithContext(ctx, s.pollInterval); sleepErr != nil {
			return 0, sleepErr
		}
	}

	s.metrics.SetHeights(network, network)
	ranges := partition(local, network, s.workerCount)
	s.logger.Info("catching up",
		zap.Uint64("local", local),
		zap.Uint64("network", network),
		zap.Int("ranges", len(ranges)),
	)
	for _, r := range ranges {
		if err := s.schedule(ctx, pool, r); err != nil {
			return 0, err
		}
	}
	return network, nil
}

func (s *ChainheadSynchronizerService) heights(ctx context.Context) (uint64, uint64, error) {
	local, err := s.repo.MaxIndexedHeight(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("max indexed height: %w", err)
	}
	network, err := s.source.LatestHeight(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("latest height: %w", err)
	}
	return local, network, nil
}

// poll runs one steady-state cycle. previous is the exclusive end of the last
// scheduled range; the returned height is the one to use next cycle.
func (s *ChainheadSynchronizerService) poll(ctx context.Context, pool *workerpool.Pool, previous uint64) (uint64, error) {
	latest, err := s.source.LatestHeight(ctx)
	if err != nil {
		return previous, fmt.Errorf("latest height: %w", err)
	}

	diverged, err := s.boundaryDiverged(ctx, previous)
	if err != nil {
		return previous, fmt.Errorf("check boundary: %w", err)
	}

	start := previous
	var reorgErr error
	if diverged {
		start, reorgErr = s.handleReorg(ctx, previous-1)
	}

	next := start
	if latest > next {
		next = latest
	}
	s.metrics.SetHeights(latest, next)

	if latest > start {
		if err := s.schedule(ctx, pool, heightRange{start: start, end: latest}); err != nil {
			return start, err
		}
	}
	if reorgErr != nil {
		return next, fmt.Errorf("handle reorg: %w", reorgErr)
	}
	return next, nil
}

// boundaryDiverged reports whether the highest height scheduled last cycle is
// stored with a hash the network no longer agrees with.
func (s *ChainheadSynchronizerService) boundaryDiverged(ctx context.Context, previous uint64) (bool, error) {
	if previous == 0 {
		return false, nil
	}
	boundary := previous - 1

	stored, err := s.repo.GetBlock(ctx, boundary)
	if errors.Is(err, chain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	hash, err := s.source.BlockHash(ctx, boundary)
	if err != nil {
		return false, err
	}
	return hash.String() != stored.Hash.String(), nil
}

func (s *ChainheadSynchronizerService) handleReorg(ctx context.Context, suspect uint64) (uint64, error) {
	s.logger.Warn("reorg detected", zap.Uint64("height", suspect))

	resume, err := s.reorg.HandleReorg(ctx, suspect)
	s.metrics.ObserveReorg(removedHeights(suspect, resume, err), err)
	if err != nil {
		s.logger.Error("reorg handling failed", zap.Uint64("resume", resume), zap.Error(err))
	}
	return resume, err
}

// removedHeights counts the heights a HandleReorg call deleted.
func removedHeights(suspect, resume uint64, err error) uint64 {
	if err == nil {
		return suspect - resume
	}
	if resume > suspect {
		return 0
	}
	return suspect + 1 - resume
}

func (s *ChainheadSynchronizerService) schedule(ctx context.Context, pool *workerpool.Pool, r heightRange) error {
	return pool.Submit(ctx, func(ctx context.Context) {
		result := s.indexer.IndexRange(ctx, r.start, r.end)
		s.logResult(result)
	})
}

func (s *ChainheadSynchronizerService) logResult(result RangeResult) {
	fields := []zap.Field{
		zap.Uint64("start", result.Start),
		zap.Uint64("end", result.End),
		zap.Int("indexed", result.Indexed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Failed)),
	}
	switch {
	case result.Err != nil:
		s.logger.Info("range interrupted", append(fields, zap.Error(result.Err))...)
	case len(result.Failed) > 0:
		s.logger.Warn("range left gaps", append(fields, zap.Error(result.Failed[0]))...)
	default:
		s.logger.Info("range indexed", fields...)
	}
}
