package business

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// BlockSummary is a projection of a chain block
type BlockSummary struct {
	Number           uint64
	Timestamp        time.Time
	TransactionCount int
	Hash             common.Hash
	Miner            common.Address
}

// FeeSnapshot is a point-in-time read of the network gas price in wei
type FeeSnapshot struct {
	GasPrice *big.Int
}

// ContractCall describes a single contract method invocation
type ContractCall struct {
	Address common.Address
	ABI     *abi.ABI
	Method  *abi.Method
	Args    []json.RawMessage
	From    *common.Address
}

// MethodName returns the name the method was declared with in the ABI
func (c ContractCall) MethodName() string {
	if c.Method == nil {
		return ""
	}
	return c.Method.RawName
}
