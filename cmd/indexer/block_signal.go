package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

const resubscribeBackoff = 30 * time.Second

// startBlockSignal subscribes to new heads over a websocket endpoint and
// coalesces them into wake-ups of the poll loop. An empty url disables it.
func startBlockSignal(ctx context.Context, url string, logger *zap.Logger) (<-chan struct{}, error) {
	if url == "" {
		return nil, nil
	}

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}

	heads := make(chan *types.Header, 16)
	sub := event.ResubscribeErr(resubscribeBackoff, func(ctx context.Context, lastErr error) (event.Subscription, error) {
		if lastErr != nil {
			logger.Warn("new head subscription dropped, resubscribing", zap.Error(lastErr))
		}
		return client.SubscribeNewHead(ctx, heads)
	})

	notify := make(chan struct{}, 1)
	go func() {
		defer client.Close()
		defer sub.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				if err != nil {
					logger.Warn("new head subscription failed", zap.Error(err))
				}
				return
			case head := <-heads:
				logger.Debug("new head", zap.Uint64("height", head.Number.Uint64()))
				select {
				case notify <- struct{}{}:
				default:
				}
			}
		}
	}()

	return notify, nil
}
