package model

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const methodIDLength = 10

// HexBlob is an arbitrary byte string rendered as 0x-prefixed lowercase hex.
// It carries transaction ids, block hashes, call data and log topics.
type HexBlob struct {
	value string
}

// NewHexBlob normalizes s, adding a missing 0x prefix.
func NewHexBlob(s string) (HexBlob, error) {
	normalized := strings.ToLower(withHexPrefix(s))
	if _, err := hexutil.Decode(normalized); err != nil {
		return HexBlob{}, &ValidationError{Kind: "hex", Value: s, Reason: err.Error()}
	}
	return HexBlob{value: normalized}, nil
}

// MustHexBlob is NewHexBlob that panics on invalid input.
func MustHexBlob(s string) HexBlob {
	h, err := NewHexBlob(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HexBlobFromBytes encodes raw bytes.
func HexBlobFromBytes(b []byte) HexBlob {
	return HexBlob{value: hexutil.Encode(b)}
}

func (h HexBlob) String() string {
	if h.value == "" {
		return "0x"
	}
	return h.value
}

// IsEmpty reports whether the blob holds no bytes.
func (h HexBlob) IsEmpty() bool {
	return h.value == "" || h.value == "0x"
}

// MethodID returns the 4-byte selector prefix of call data.
func (h HexBlob) MethodID() string {
	s := h.String()
	if len(s) < methodIDLength {
		return s
	}
	return s[:methodIDLength]
}
