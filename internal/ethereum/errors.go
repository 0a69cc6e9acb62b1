package ethereum

import (
	"errors"
	"strings"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var revertMarkers = []string{"execution reverted", "revert", "require"}

// revertData returns the ABI-encoded revert payload attached to a JSON-RPC error
func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	s, ok := dataErr.ErrorData().(string)
	if !ok || s == "" {
		return nil, false
	}
	data, decodeErr := hexutil.Decode(s)
	if decodeErr != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// isRevert reports whether a node error signals that execution reverted
func isRevert(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := revertData(err); ok {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range revertMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// revertDetails is the node message, followed by the decoded Error(string)
// reason when the message does not already carry it.
func revertDetails(err error) string {
	msg := err.Error()
	data, ok := revertData(err)
	if !ok {
		return msg
	}
	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil || reason == "" || strings.Contains(msg, reason) {
		return msg
	}
	return msg + ": " + reason
}

// translateEstimateError classifies an eth_estimateGas failure
func translateEstimateError(err error) error {
	if isRevert(err) {
		return apierrors.WouldRevert(err, revertDetails(err))
	}
	return chainError(err)
}

func chainError(err error) error {
	if apiErr, ok := apierrors.As(err); ok {
		return apiErr
	}
	return apierrors.Wrap(apierrors.KindChainError, err, err.Error())
}
