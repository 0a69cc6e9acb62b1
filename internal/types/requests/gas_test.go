package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGasEstimateRequest_HasABI(t *testing.T) {
	tests := []struct {
		name string
		abi  string
		want bool
	}{
		{name: "missing", abi: ``, want: false},
		{name: "null", abi: `null`, want: false},
		{name: "empty string", abi: `""`, want: false},
		{name: "false", abi: `false`, want: false},
		{name: "zero", abi: `0`, want: false},
		{name: "zero float", abi: `0.0`, want: false},
		{name: "empty array", abi: `[]`, want: true},
		{name: "array", abi: `[{"type":"function","name":"totalSupply"}]`, want: true},
		{name: "object", abi: `{}`, want: true},
		{name: "non-empty string", abi: `"[]"`, want: true},
		{name: "true", abi: `true`, want: true},
		{name: "number", abi: `1`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GasEstimateRequest{FunctionName: "getGasPrice", ABI: json.RawMessage(tt.abi)}
			assert.Equal(t, tt.want, req.HasABI())
		})
	}
}

func TestGasEstimateRequest_BindsFalsyABI(t *testing.T) {
	var req GasEstimateRequest
	err := json.Unmarshal([]byte(`{"functionName":"getGasPrice","abi":""}`), &req)
	assert.NoError(t, err)
	assert.False(t, req.HasABI())
}
