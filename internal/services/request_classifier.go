package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/cyphera/eth-gas-gateway/internal/constants"
	"github.com/cyphera/eth-gas-gateway/internal/ethereum"
	"github.com/cyphera/eth-gas-gateway/internal/helpers"
	"github.com/cyphera/eth-gas-gateway/internal/types/business"
	"github.com/cyphera/eth-gas-gateway/internal/types/requests"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Mode is the handling path selected for a request
type Mode int

const (
	ModeLatestBlocks Mode = iota + 1
	ModeSpotPrice
	ModeNetworkFee
	ModeReadCall
	ModeWriteEstimate
)

func (m Mode) String() string {
	switch m {
	case ModeLatestBlocks:
		return "latest-blocks"
	case ModeSpotPrice:
		return "spot-price"
	case ModeNetworkFee:
		return "network-fee"
	case ModeReadCall:
		return "read-call"
	case ModeWriteEstimate:
		return "write-estimate"
	default:
		return "unknown"
	}
}

// Plan is the outcome of classification. BlockCount is set for latest-blocks,
// Call for read-call and write-estimate.
type Plan struct {
	Mode         Mode
	FunctionName string
	BlockCount   int
	Call         business.ContractCall
}

// ClassifyRequest selects the handling mode for req without any remote calls.
// Reserved names win over contract interaction when no address and no ABI are
// supplied.
func ClassifyRequest(req requests.GasEstimateRequest) (*Plan, error) {
	if !req.HasContractAddress() && !req.HasABI() {
		switch req.FunctionName {
		case constants.FunctionGetLatestBlocks:
			count, err := parseBlockCount(req.Arg(0))
			if err != nil {
				return nil, err
			}
			return &Plan{Mode: ModeLatestBlocks, FunctionName: req.FunctionName, BlockCount: count}, nil
		case constants.FunctionGetEthPrice:
			return &Plan{Mode: ModeSpotPrice, FunctionName: req.FunctionName}, nil
		case constants.FunctionGetGasPrice:
			return &Plan{Mode: ModeNetworkFee, FunctionName: req.FunctionName}, nil
		}
	}

	if !req.HasContractAddress() || !req.HasABI() || req.FunctionName == "" {
		return nil, apierrors.New(apierrors.KindMissingParameters, apierrors.MsgMissingParameters)
	}

	contract, ok := helpers.ParseAddress(req.ContractAddress)
	if !ok {
		return nil, apierrors.New(apierrors.KindInvalidAddress, apierrors.MsgInvalidContract)
	}

	parsed, err := ethereum.ParseABI(req.ABI)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.KindInvalidABI, err, apierrors.PrefixInvalidABI+err.Error())
	}

	method, ok := ethereum.LookupMethod(parsed, req.FunctionName)
	if !ok {
		return nil, apierrors.FunctionNotFound(req.FunctionName)
	}

	if !addressArgsValid(method.Inputs, req.Args) {
		return nil, apierrors.New(apierrors.KindInvalidAddress, apierrors.MsgInvalidArgAddress)
	}

	call := business.ContractCall{
		Address: contract,
		ABI:     parsed,
		Method:  method,
		Args:    req.Args,
	}
	if from, ok := helpers.ParseAddress(req.From); ok {
		call.From = &from
	}

	mode := ModeWriteEstimate
	if ethereum.IsReadOnly(method) {
		mode = ModeReadCall
	}

	return &Plan{Mode: mode, FunctionName: req.FunctionName, Call: call}, nil
}

// addressArgsValid checks every argument declared as an address
func addressArgsValid(inputs abi.Arguments, args []json.RawMessage) bool {
	for i, input := range inputs {
		if i >= len(args) || input.Type.T != abi.AddressTy {
			continue
		}
		var s string
		if err := json.Unmarshal(args[i], &s); err != nil || !helpers.IsAddressValid(s) {
			return false
		}
	}
	return true
}

// parseBlockCount reads args[0] the way parseInt would. JSON numbers are
// truncated by value, strings contribute their leading integer digits. A
// missing, null, false or empty value selects the default.
func parseBlockCount(raw json.RawMessage) (int, error) {
	rangeErr := apierrors.New(apierrors.KindBlockRangeInvalid, apierrors.MsgBlockRangeInvalid)

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return constants.DefaultBlockCount, nil
	}

	var value interface{}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return 0, rangeErr
	}

	var count float64
	switch v := value.(type) {
	case nil:
		return constants.DefaultBlockCount, nil
	case bool:
		if !v {
			return constants.DefaultBlockCount, nil
		}
		return 0, rangeErr
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, rangeErr
		}
		count = math.Trunc(f)
	case string:
		if v == "" {
			return constants.DefaultBlockCount, nil
		}
		digits := leadingInteger(v)
		if digits == "" {
			return 0, rangeErr
		}
		n, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return 0, rangeErr
		}
		count = n
	default:
		return 0, rangeErr
	}

	if count < constants.MinBlockCount || count > constants.MaxBlockCount {
		return 0, rangeErr
	}
	return int(count), nil
}

// leadingInteger returns the optional sign and digits that start s, or "" when
// there are no digits
func leadingInteger(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return ""
	}
	return s[:end]
}
