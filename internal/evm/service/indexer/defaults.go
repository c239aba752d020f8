package indexer

import "time"

const (
	defaultWorkerCount  = 4
	defaultPollInterval = 15 * time.Second

	followWorkerCount = 1
	followQueueSize   = 64
)

// SynchronizerConfig tunes the chainhead synchronizer. Zero values select
// defaults, except MaxReorgDepth where 0 means unbounded.
type SynchronizerConfig struct {
	Workers       int
	PollInterval  time.Duration
	MaxReorgDepth uint64
}

func (c SynchronizerConfig) withDefaults() SynchronizerConfig {
	if c.Workers <= 0 {
		c.Workers = defaultWorkerCount
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	return c
}
