package indexer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// BackfillReport aggregates the range results of one backfill run.
type BackfillReport struct {
	Start   uint64
	End     uint64
	Ranges  int
	Indexed int
	Skipped int
	Failed  []HeightError
	Err     error
}

// BackfillService heals gaps by re-indexing an explicit height interval and
// waiting for it to finish.
type BackfillService struct {
	logger      *zap.Logger
	indexer     RangeIndexer
	workerCount int
}

func NewBackfillService(indexer RangeIndexer, workers int, network model.Network, logger *zap.Logger) *BackfillService {
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &BackfillService{
		logger:      logger.Named("backfill").With(zap.String("network", string(network))),
		indexer:     indexer,
		workerCount: workers,
	}
}

// Run indexes [start, end). Cancellation stops remaining ranges and is
// reported in BackfillReport.Err.
func (s *BackfillService) Run(ctx context.Context, start, end uint64) BackfillReport {
	report := BackfillReport{Start: start, End: end}
	if end <= start {
		report.Err = fmt.Errorf("empty interval [%d, %d)", start, end)
		return report
	}

	ranges := partition(start, end, s.workerCount)
	report.Ranges = len(ranges)
	s.logger.Info("backfill started",
		zap.Uint64("start", start),
		zap.Uint64("end", end),
		zap.Int("ranges", len(ranges)),
	)

	var mu sync.Mutex
	report.Err = workerpool.Process(ctx, s.workerCount, ranges, func(ctx context.Context, r heightRange) error {
		result := s.indexer.IndexRange(ctx, r.start, r.end)

		mu.Lock()
		report.Indexed += result.Indexed
		report.Skipped += result.Skipped
		report.Failed = append(report.Failed, result.Failed...)
		mu.Unlock()

		return result.Err
	}, nil)

	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].Height < report.Failed[j].Height
	})

	s.logger.Info("backfill finished",
		zap.Int("indexed", report.Indexed),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failed)),
		zap.Error(report.Err),
	)
	return report
}
