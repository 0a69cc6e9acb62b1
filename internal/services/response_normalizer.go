package services

import (
	"fmt"
	"math/big"

	"github.com/cyphera/eth-gas-gateway/internal/constants"
	"github.com/cyphera/eth-gas-gateway/internal/helpers"
	"github.com/cyphera/eth-gas-gateway/internal/types/business"
	"github.com/cyphera/eth-gas-gateway/internal/types/responses"
)

const (
	zeroAmount = "0"
	zeroGwei   = "0 gwei"

	// RFC 3339 in UTC with millisecond precision
	blockTimestampLayout = "2006-01-02T15:04:05.000Z"
)

func informational(message string, result interface{}) *responses.GasEstimateResponse {
	return &responses.GasEstimateResponse{
		Message:           message,
		EstimatedGas:      zeroAmount,
		GasPrice:          zeroGwei,
		EstimatedFeeInETH: zeroAmount,
		Result:            result,
	}
}

// NormalizeLatestBlocks builds the latest-blocks envelope
func NormalizeLatestBlocks(blocks []business.BlockSummary) *responses.GasEstimateResponse {
	result := make([]responses.BlockSummary, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, responses.BlockSummary{
			Number:       b.Number,
			Timestamp:    b.Timestamp.UTC().Format(blockTimestampLayout),
			Transactions: b.TransactionCount,
			Hash:         b.Hash.Hex(),
			Validator:    b.Miner.Hex(),
		})
	}
	return informational(fmt.Sprintf("Latest %d Ethereum blocks.", len(result)), result)
}

// NormalizeSpotPrice builds the spot-price envelope
func NormalizeSpotPrice(price string) *responses.GasEstimateResponse {
	return informational("Current Ethereum price in USD.", price)
}

// NormalizeNetworkFee builds the network-fee envelope
func NormalizeNetworkFee(fee *business.FeeSnapshot) *responses.GasEstimateResponse {
	resp := informational("Current Ethereum network gas price.", nil)
	resp.GasPrice = helpers.FormatGwei(fee.GasPrice)
	return resp
}

// NormalizeReadCall builds the read-call envelope
func NormalizeReadCall(functionName, methodName string, values []business.Value, balanceOfDecimals int) *responses.GasEstimateResponse {
	message := fmt.Sprintf("Function %s is a view or pure function and does not consume gas.", functionName)
	return informational(message, FormatReadResult(methodName, values, balanceOfDecimals))
}

// NormalizeWriteEstimate builds the write-estimate envelope: fee = gas * price
func NormalizeWriteEstimate(gas *big.Int, fee *business.FeeSnapshot) *responses.GasEstimateResponse {
	total := new(big.Int).Mul(gas, fee.GasPrice)
	return &responses.GasEstimateResponse{
		EstimatedGas:      gas.String(),
		GasPrice:          helpers.FormatGwei(fee.GasPrice),
		EstimatedFeeInETH: helpers.FormatEther(total),
	}
}

// FormatReadResult renders decoded outputs. A single unsigned balanceOf result
// is scaled by balanceOfDecimals; other integers stay exact decimal strings.
// Returns nil when the method has no outputs.
func FormatReadResult(methodName string, values []business.Value, balanceOfDecimals int) interface{} {
	switch len(values) {
	case 0:
		return nil
	case 1:
		v := values[0]
		if v.Kind == business.KindUint && methodName == constants.FunctionBalanceOf {
			return helpers.FormatUnits(v.Int, balanceOfDecimals)
		}
		return v.Interface()
	default:
		out := make([]interface{}, len(values))
		for i, v := range values {
			out[i] = v.Interface()
		}
		return out
	}
}
