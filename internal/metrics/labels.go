// Package metrics holds the Prometheus collectors of the indexer.
package metrics

import "github.com/goodnatureofminers/evm-indexer/internal/evm/model"

const namespace = "evmindexer"

const unknown = "unknown"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func chainLabels(coin model.Coin, network model.Network) (string, string) {
	c, n := string(coin), string(network)
	if c == "" {
		c = unknown
	}
	if n == "" {
		n = unknown
	}
	return c, n
}
