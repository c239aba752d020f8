package model

type Coin string
type Network string

var (
	ETH Coin = "ETH"
)

var (
	Mainnet Network = "mainnet"
	Sepolia Network = "sepolia"
	Holesky Network = "holesky"
)

var coinDecimals = map[Coin]int{
	ETH: 18,
}

// Decimals returns the number of decimals of the coin's smallest unit, 0 if unknown.
func (c Coin) Decimals() int {
	return coinDecimals[c]
}
