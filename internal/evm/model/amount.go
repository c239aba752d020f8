package model

import "math/big"

// Amount is an integer quantity in a coin's smallest unit (wei for ETH).
type Amount struct {
	value *big.Int
	coin  Coin
}

// NewAmount copies value so later mutation by the caller is not observed.
func NewAmount(value *big.Int, coin Coin) Amount {
	v := new(big.Int)
	if value != nil {
		v.Set(value)
	}
	return Amount{value: v, coin: coin}
}

// Int returns a copy of the base-unit value.
func (a Amount) Int() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.value)
}

func (a Amount) Coin() Coin {
	return a.coin
}

// String renders the base-unit integer.
func (a Amount) String() string {
	if a.value == nil {
		return "0"
	}
	return a.value.String()
}
