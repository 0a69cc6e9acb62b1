// Package ethereum reads chain state and simulates contract calls over
// JSON-RPC using go-ethereum.
package ethereum

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/cyphera/eth-gas-gateway/internal/interfaces"
	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"github.com/cyphera/eth-gas-gateway/internal/types/business"
	"github.com/davecgh/go-spew/spew"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// JSON-RPC method names used as metric labels
const (
	methodBlockNumber = "eth_blockNumber"
	methodGetBlock    = "eth_getBlockByNumber"
	methodGasPrice    = "eth_gasPrice"
	methodCall        = "eth_call"
	methodEstimateGas = "eth_estimateGas"
)

// Backend is the subset of ethclient.Client the reader depends on
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
}

// Config holds the node connection settings
type Config struct {
	RPCURL  string
	Timeout time.Duration
}

// Reader implements interfaces.ChainReader. It is safe for concurrent use.
type Reader struct {
	backend Backend
	metrics interfaces.MetricsRecorder
	closer  func()
}

var _ interfaces.ChainReader = (*Reader)(nil)

// NewReader dials the node once. Timeout bounds every HTTP round trip.
func NewReader(ctx context.Context, cfg Config, metrics interfaces.MetricsRecorder) (*Reader, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("rpc url is required")
	}

	rpcClient, err := rpc.DialOptions(ctx, cfg.RPCURL, rpc.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to dial ethereum node")
	}

	client := ethclient.NewClient(rpcClient)
	reader := NewReaderWithBackend(client, metrics)
	reader.closer = client.Close
	return reader, nil
}

// NewReaderWithBackend wraps an existing backend
func NewReaderWithBackend(backend Backend, metrics interfaces.MetricsRecorder) *Reader {
	return &Reader{backend: backend, metrics: metrics}
}

// Close releases the underlying connection
func (r *Reader) Close() {
	if r.closer != nil {
		r.closer()
	}
}

func (r *Reader) observe(method string, start time.Time, err error) {
	if r.metrics != nil {
		r.metrics.RecordChainCall(method, time.Since(start), err)
	}
}

// CurrentBlockHeight returns the latest block number
func (r *Reader) CurrentBlockHeight(ctx context.Context) (uint64, error) {
	start := time.Now()
	height, err := r.backend.BlockNumber(ctx)
	r.observe(methodBlockNumber, start, err)
	if err != nil {
		return 0, chainError(err)
	}
	return height, nil
}

// BlockAt returns a summary of block number, or nil when the node does not have it
func (r *Reader) BlockAt(ctx context.Context, number uint64) (*business.BlockSummary, error) {
	start := time.Now()
	block, err := r.backend.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if errors.Is(err, geth.NotFound) {
		r.observe(methodGetBlock, start, nil)
		return nil, nil
	}
	r.observe(methodGetBlock, start, err)
	if err != nil {
		return nil, chainError(err)
	}
	if block == nil {
		return nil, nil
	}

	return &business.BlockSummary{
		Number:           block.NumberU64(),
		Timestamp:        time.Unix(int64(block.Time()), 0).UTC(),
		TransactionCount: len(block.Transactions()),
		Hash:             block.Hash(),
		Miner:            block.Coinbase(),
	}, nil
}

// CurrentFee returns the node's suggested legacy gas price
func (r *Reader) CurrentFee(ctx context.Context) (*business.FeeSnapshot, error) {
	start := time.Now()
	price, err := r.backend.SuggestGasPrice(ctx)
	r.observe(methodGasPrice, start, err)
	if err != nil {
		return nil, chainError(err)
	}
	if price == nil {
		return nil, apierrors.New(apierrors.KindFeeUnavailable, apierrors.MsgFeeUnavailable)
	}
	return &business.FeeSnapshot{GasPrice: price}, nil
}

// Call executes a read-only method at the latest block and decodes its outputs
func (r *Reader) Call(ctx context.Context, call business.ContractCall) ([]business.Value, error) {
	data, err := packCall(call)
	if err != nil {
		return nil, err
	}

	to := call.Address
	start := time.Now()
	output, err := r.backend.CallContract(ctx, geth.CallMsg{To: &to, Data: data}, nil)
	r.observe(methodCall, start, err)
	if err != nil {
		return nil, chainError(err)
	}

	decoded, err := call.Method.Outputs.Unpack(output)
	if err != nil {
		return nil, chainError(pkgerrors.Wrapf(err, "failed to decode %s output", call.MethodName()))
	}

	if logger.Log.Core().Enabled(zapcore.DebugLevel) {
		logger.Debug("Decoded contract call output",
			zap.String("contract", call.Address.Hex()),
			zap.String("method", call.Method.Sig),
			zap.String("output", spew.Sdump(decoded)))
	}

	return ToValues(call.Method.Outputs, decoded), nil
}

// EstimateGas simulates the call and returns the gas it would consume
func (r *Reader) EstimateGas(ctx context.Context, call business.ContractCall) (*big.Int, error) {
	data, err := packCall(call)
	if err != nil {
		return nil, err
	}

	to := call.Address
	msg := geth.CallMsg{To: &to, Data: data}
	if call.From != nil {
		msg.From = *call.From
	}

	start := time.Now()
	gas, err := r.backend.EstimateGas(ctx, msg)
	r.observe(methodEstimateGas, start, err)
	if err != nil {
		logger.Debug("Gas estimation failed",
			zap.String("contract", call.Address.Hex()),
			zap.String("method", call.Method.Sig),
			zap.Error(err))
		return nil, translateEstimateError(err)
	}
	return new(big.Int).SetUint64(gas), nil
}

// packCall encodes the selector and arguments of call
func packCall(call business.ContractCall) ([]byte, error) {
	if call.Method == nil {
		return nil, apierrors.New(apierrors.KindChainError, "no method resolved for contract call")
	}

	args, err := ConvertArgs(call.Method.Inputs, call.Args)
	if err != nil {
		return nil, chainError(err)
	}

	packed, err := call.Method.Inputs.Pack(args...)
	if err != nil {
		return nil, chainError(pkgerrors.Wrapf(err, "failed to encode %s arguments", call.MethodName()))
	}

	data := make([]byte, 0, len(call.Method.ID)+len(packed))
	data = append(data, call.Method.ID...)
	return append(data, packed...), nil
}
