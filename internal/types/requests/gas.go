package requests

import (
	"bytes"
	"encoding/json"
)

// GasEstimateRequest is the body accepted by the gas estimate endpoint.
// ABI and Args stay raw so large integers never round-trip through float64.
type GasEstimateRequest struct {
	ContractAddress string            `json:"contractAddress"`
	ABI             json.RawMessage   `json:"abi,omitempty"`
	FunctionName    string            `json:"functionName" binding:"required"`
	Args            []json.RawMessage `json:"args"`
	From            string            `json:"from"`
}

// HasContractAddress reports whether a contract address was supplied.
func (r GasEstimateRequest) HasContractAddress() bool {
	return r.ContractAddress != ""
}

// HasABI reports whether an ABI was supplied. JSON null, false, 0 and "" count
// as absent; any array or object, even an empty one, counts as present.
func (r GasEstimateRequest) HasABI() bool {
	trimmed := bytes.TrimSpace(r.ABI)
	if len(trimmed) == 0 {
		return false
	}

	var value interface{}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return true
	}

	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// Arg returns the i-th argument, or nil when it was not supplied.
func (r GasEstimateRequest) Arg(i int) json.RawMessage {
	if i < 0 || i >= len(r.Args) {
		return nil
	}
	return r.Args[i]
}
