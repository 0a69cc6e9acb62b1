package interfaces

import (
	"context"
	"math/big"

	"github.com/cyphera/eth-gas-gateway/internal/types/business"
)

// ChainReader issues read operations against an Ethereum JSON-RPC endpoint.
// Errors are returned as *apierrors.Error values.
type ChainReader interface {
	CurrentBlockHeight(ctx context.Context) (uint64, error)
	// BlockAt returns nil without an error when the node has no such block.
	BlockAt(ctx context.Context, number uint64) (*business.BlockSummary, error)
	CurrentFee(ctx context.Context) (*business.FeeSnapshot, error)
	Call(ctx context.Context, call business.ContractCall) ([]business.Value, error)
	EstimateGas(ctx context.Context, call business.ContractCall) (*big.Int, error)
}

// PriceReader fetches spot prices from a price index
type PriceReader interface {
	SpotPriceUSD(ctx context.Context, asset string) (string, error)
}
