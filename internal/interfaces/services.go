package interfaces

import (
	"context"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/types/requests"
	"github.com/cyphera/eth-gas-gateway/internal/types/responses"
)

// GasEstimator handles a gas estimate request end to end
type GasEstimator interface {
	Estimate(ctx context.Context, req requests.GasEstimateRequest) (*responses.GasEstimateResponse, error)
}

// MetricsRecorder receives observations from the chain reader and the dispatcher
type MetricsRecorder interface {
	RecordChainCall(method string, duration time.Duration, err error)
	RecordDispatch(mode string, err error)
}
