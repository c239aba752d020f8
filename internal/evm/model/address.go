package model

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const addressLength = 42

// NullAddress is the conventional recipient of a contract deployment.
var NullAddress = Address{value: "0x0000000000000000000000000000000000000000"}

// Address is a 20-byte account address rendered as 0x-prefixed lowercase hex.
type Address struct {
	value string
}

// NewAddress normalizes s into an Address. Empty input yields NullAddress.
func NewAddress(s string) (Address, error) {
	if s == "" {
		return NullAddress, nil
	}

	normalized := strings.ToLower(withHexPrefix(s))
	if len(normalized) != addressLength {
		return Address{}, &ValidationError{Kind: "address", Value: s, Reason: "must be 40 hex characters"}
	}
	if !common.IsHexAddress(normalized) {
		return Address{}, &ValidationError{Kind: "address", Value: s, Reason: "not hex encoded"}
	}

	return Address{value: normalized}, nil
}

// MustAddress is NewAddress for constants and tests; it panics on invalid input.
func MustAddress(s string) Address {
	a, err := NewAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the 0x-prefixed lowercase form.
func (a Address) String() string {
	if a.value == "" {
		return NullAddress.value
	}
	return a.value
}

// IsNull reports whether a is the all-zero address.
func (a Address) IsNull() bool {
	return a.value == "" || a.value == NullAddress.value
}

func withHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}
