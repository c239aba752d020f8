// Package safe provides helpers for numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer kinds accepted by the converters.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// magnitude splits v into its sign and absolute value.
func magnitude[T Integer](v T) (negative bool, abs uint64) {
	if v < 0 {
		return true, uint64(-(int64(v) + 1)) + 1
	}
	return false, uint64(v)
}

// Uint32 converts v to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	negative, abs := magnitude(v)
	if negative || abs > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(abs), nil
}

// Uint64 converts v to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	negative, abs := magnitude(v)
	if negative {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return abs, nil
}

// Int64 converts v to int64; used for signed BIGINT columns.
func Int64[T Integer](v T) (int64, error) {
	negative, abs := magnitude(v)
	if negative {
		if abs > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
		return -int64(abs-1) - 1, nil
	}
	if abs > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(abs), nil
}
