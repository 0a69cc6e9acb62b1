package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "eth-gas-gateway"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
)

// Reserved function names that select a built-in mode when no contract is given.
const (
	FunctionGetLatestBlocks = "getLatestBlocks"
	FunctionGetEthPrice     = "getEthPrice"
	FunctionGetGasPrice     = "getGasPrice"
	FunctionBalanceOf       = "balanceOf"
)

// Block window for getLatestBlocks
const (
	DefaultBlockCount = 5
	MinBlockCount     = 1
	MaxBlockCount     = 100
)

// Unit scaling
const (
	EtherDecimals            = 18
	GweiDecimals             = 9
	DefaultBalanceOfDecimals = 6
)

// Price index defaults
const (
	DefaultPriceAssetID   = "ethereum"
	USDCurrency           = "usd"
	DefaultPriceBaseURL   = "https://api.coingecko.com"
	CoinGeckoAPIKeyHeader = "x-cg-demo-api-key"
)
