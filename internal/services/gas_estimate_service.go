package services

import (
	"context"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/cyphera/eth-gas-gateway/internal/constants"
	"github.com/cyphera/eth-gas-gateway/internal/interfaces"
	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"github.com/cyphera/eth-gas-gateway/internal/types/business"
	"github.com/cyphera/eth-gas-gateway/internal/types/requests"
	"github.com/cyphera/eth-gas-gateway/internal/types/responses"
	"go.uber.org/zap"
)

const modeRejected = "rejected"

// GasEstimateService classifies a request, performs the remote calls for the
// selected mode and normalizes the result.
type GasEstimateService struct {
	chain             interfaces.ChainReader
	prices            interfaces.PriceReader
	metrics           interfaces.MetricsRecorder
	logger            *zap.Logger
	priceAsset        string
	balanceOfDecimals int
}

var _ interfaces.GasEstimator = (*GasEstimateService)(nil)

// GasEstimateServiceOption configures a GasEstimateService
type GasEstimateServiceOption func(*GasEstimateService)

// WithPriceAsset sets the price index asset id used by getEthPrice
func WithPriceAsset(asset string) GasEstimateServiceOption {
	return func(s *GasEstimateService) {
		if asset != "" {
			s.priceAsset = asset
		}
	}
}

// WithBalanceOfDecimals sets the scale applied to balanceOf results
func WithBalanceOfDecimals(decimals int) GasEstimateServiceOption {
	return func(s *GasEstimateService) {
		s.balanceOfDecimals = decimals
	}
}

// WithMetricsRecorder records the outcome of every dispatch
func WithMetricsRecorder(recorder interfaces.MetricsRecorder) GasEstimateServiceOption {
	return func(s *GasEstimateService) {
		s.metrics = recorder
	}
}

// NewGasEstimateService creates a new gas estimate service
func NewGasEstimateService(chain interfaces.ChainReader, prices interfaces.PriceReader, opts ...GasEstimateServiceOption) *GasEstimateService {
	s := &GasEstimateService{
		chain:             chain,
		prices:            prices,
		logger:            logger.Log,
		priceAsset:        constants.DefaultPriceAssetID,
		balanceOfDecimals: constants.DefaultBalanceOfDecimals,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Estimate handles one request end to end. Returned errors are *apierrors.Error.
func (s *GasEstimateService) Estimate(ctx context.Context, req requests.GasEstimateRequest) (*responses.GasEstimateResponse, error) {
	plan, err := ClassifyRequest(req)
	if err != nil {
		s.record(modeRejected, err)
		return nil, err
	}

	var resp *responses.GasEstimateResponse
	switch plan.Mode {
	case ModeLatestBlocks:
		resp, err = s.latestBlocks(ctx, plan.BlockCount)
	case ModeSpotPrice:
		resp, err = s.spotPrice(ctx)
	case ModeNetworkFee:
		resp, err = s.networkFee(ctx)
	case ModeReadCall:
		resp, err = s.readCall(ctx, plan)
	case ModeWriteEstimate:
		resp, err = s.writeEstimate(ctx, plan.Call)
	}

	s.record(plan.Mode.String(), err)
	if err != nil {
		s.logger.Warn("Gas estimate request failed",
			zap.String("mode", plan.Mode.String()),
			zap.String("function", plan.FunctionName),
			zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (s *GasEstimateService) record(mode string, err error) {
	if s.metrics != nil {
		s.metrics.RecordDispatch(mode, err)
	}
}

// latestBlocks walks back from the chain head. Absent blocks and numbers below
// zero are skipped.
func (s *GasEstimateService) latestBlocks(ctx context.Context, count int) (*responses.GasEstimateResponse, error) {
	height, err := s.chain.CurrentBlockHeight(ctx)
	if err != nil {
		return nil, apierrors.WithPrefix(err, apierrors.PrefixBlocks)
	}

	blocks := make([]business.BlockSummary, 0, count)
	for i := uint64(0); i < uint64(count); i++ {
		if i > height {
			break
		}
		block, err := s.chain.BlockAt(ctx, height-i)
		if err != nil {
			return nil, apierrors.WithPrefix(err, apierrors.PrefixBlocks)
		}
		if block == nil {
			continue
		}
		blocks = append(blocks, *block)
	}

	return NormalizeLatestBlocks(blocks), nil
}

func (s *GasEstimateService) spotPrice(ctx context.Context) (*responses.GasEstimateResponse, error) {
	price, err := s.prices.SpotPriceUSD(ctx, s.priceAsset)
	if err != nil {
		return nil, apierrors.WithPrefix(err, apierrors.PrefixEthPrice)
	}
	return NormalizeSpotPrice(price), nil
}

func (s *GasEstimateService) networkFee(ctx context.Context) (*responses.GasEstimateResponse, error) {
	fee, err := s.currentFee(ctx)
	if err != nil {
		return nil, apierrors.WithPrefix(err, apierrors.PrefixGasPrice)
	}
	return NormalizeNetworkFee(fee), nil
}

// readCall never estimates gas
func (s *GasEstimateService) readCall(ctx context.Context, plan *Plan) (*responses.GasEstimateResponse, error) {
	values, err := s.chain.Call(ctx, plan.Call)
	if err != nil {
		return nil, apierrors.WithPrefix(err, apierrors.PrefixViewFunction)
	}
	return NormalizeReadCall(plan.FunctionName, plan.Call.MethodName(), values, s.balanceOfDecimals), nil
}

func (s *GasEstimateService) writeEstimate(ctx context.Context, call business.ContractCall) (*responses.GasEstimateResponse, error) {
	// Remote messages pass through without a mode prefix on this path.
	gas, err := s.chain.EstimateGas(ctx, call)
	if err != nil {
		return nil, apierrors.WithPrefix(err, "")
	}

	fee, err := s.currentFee(ctx)
	if err != nil {
		return nil, apierrors.WithPrefix(err, "")
	}

	return NormalizeWriteEstimate(gas, fee), nil
}

// currentFee treats a missing price as unavailable
func (s *GasEstimateService) currentFee(ctx context.Context) (*business.FeeSnapshot, error) {
	fee, err := s.chain.CurrentFee(ctx)
	if err != nil {
		return nil, err
	}
	if fee == nil || fee.GasPrice == nil {
		return nil, apierrors.New(apierrors.KindFeeUnavailable, apierrors.MsgFeeUnavailable)
	}
	return fee, nil
}
