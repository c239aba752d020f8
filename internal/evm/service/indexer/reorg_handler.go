package indexer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"go.uber.org/zap"
)

// ReorgHandlerService rolls the store back to the highest height whose hash
// agrees with the network.
type ReorgHandlerService struct {
	logger   *zap.Logger
	source   Source
	repo     Repository
	maxDepth uint64
}

// NewReorgHandlerService builds a handler; maxDepth 0 leaves the walk unbounded.
func NewReorgHandlerService(source Source, repo Repository, maxDepth uint64, network model.Network, logger *zap.Logger) *ReorgHandlerService {
	return &ReorgHandlerService{
		logger:   logger.Named("reorgHandler").With(zap.String("network", string(network))),
		source:   source,
		repo:     repo,
		maxDepth: maxDepth,
	}
}

// HandleReorg walks down from suspect, deleting every stored block and its
// transactions whose hash differs from the network, and returns the first
// height where both agree.
//
// On error the returned height is where re-indexing has to resume: every
// stored height at or above it may have been removed.
func (s *ReorgHandlerService) HandleReorg(ctx context.Context, suspect uint64) (uint64, error) {
	probe := suspect
	for {
		match, err := s.hashesMatch(ctx, probe)
		if err != nil {
			return probe + 1, err
		}
		if match {
			s.logger.Info("reorg resolved",
				zap.Uint64("suspect", suspect),
				zap.Uint64("common_height", probe),
				zap.Uint64("removed", suspect-probe),
			)
			return probe, nil
		}

		if s.maxDepth > 0 && suspect-probe >= s.maxDepth {
			return probe + 1, &chain.DeepReorgError{Suspect: suspect, MaxDepth: s.maxDepth}
		}

		if err := s.repo.RemoveBlock(ctx, probe); err != nil {
			return probe + 1, fmt.Errorf("remove block %d: %w", probe, err)
		}
		if err := s.repo.RemoveTransactions(ctx, probe); err != nil {
			return probe, fmt.Errorf("remove transactions %d: %w", probe, err)
		}
		s.logger.Debug("removed reorged block", zap.Uint64("height", probe))

		if probe == 0 {
			return 0, chain.ErrReorgPastGenesis
		}
		probe--
	}
}

func (s *ReorgHandlerService) hashesMatch(ctx context.Context, height uint64) (bool, error) {
	stored, err := s.repo.GetBlock(ctx, height)
	if err != nil {
		return false, fmt.Errorf("get stored block %d: %w", height, err)
	}
	network, err := s.source.BlockHash(ctx, height)
	if err != nil {
		return false, fmt.Errorf("get network hash %d: %w", height, err)
	}
	return stored.Hash.String() == network.String(), nil
}
