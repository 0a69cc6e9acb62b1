package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockChainReaderForTest creates a new mock ChainReader for testing
func NewMockChainReaderForTest(t *testing.T) *MockChainReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainReader(ctrl)
}

// NewMockPriceReaderForTest creates a new mock PriceReader for testing
func NewMockPriceReaderForTest(t *testing.T) *MockPriceReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPriceReader(ctrl)
}

// NewMockGasEstimatorForTest creates a new mock GasEstimator for testing
func NewMockGasEstimatorForTest(t *testing.T) *MockGasEstimator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockGasEstimator(ctrl)
}

// NewMockMetricsRecorderForTest creates a new mock MetricsRecorder for testing
func NewMockMetricsRecorderForTest(t *testing.T) *MockMetricsRecorder {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMetricsRecorder(ctrl)
}

// NewMockBackendForTest creates a new mock ethereum Backend for testing
func NewMockBackendForTest(t *testing.T) *MockBackend {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBackend(ctrl)
}
