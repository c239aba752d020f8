package pebble

import (
	"encoding/binary"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

// Key layout, all scoped by network:
//
//	b/<network>/<height>          block record
//	t/<network>/<txid>            transaction record
//	h/<network>/<height><txid>    height index of transactions
//
// Heights are 8-byte big-endian so lexical order is numeric order.
const (
	blockPrefix  = 'b'
	txPrefix     = 't'
	heightPrefix = 'h'
)

func networkPrefix(kind byte, network model.Network) []byte {
	key := make([]byte, 0, len(network)+3)
	key = append(key, kind, '/')
	key = append(key, network...)
	return append(key, '/')
}

func blockKey(network model.Network, height uint64) []byte {
	return binary.BigEndian.AppendUint64(networkPrefix(blockPrefix, network), height)
}

func txKey(network model.Network, txid model.HexBlob) []byte {
	return append(networkPrefix(txPrefix, network), txid.String()...)
}

func heightIndexPrefix(network model.Network, height uint64) []byte {
	return binary.BigEndian.AppendUint64(networkPrefix(heightPrefix, network), height)
}

func heightIndexKey(network model.Network, height uint64, txid model.HexBlob) []byte {
	return append(heightIndexPrefix(network, height), txid.String()...)
}

// upperBound returns the smallest key greater than every key with prefix.
func upperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
