package ethereum

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/cyphera/eth-gas-gateway/internal/types/business"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"data","type":"bytes"}],"outputs":[{"name":"","type":"bool"}]},
	{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"type":"function","name":"setLimits","stateMutability":"nonpayable","inputs":[{"name":"delta","type":"int256"},{"name":"small","type":"int8"},{"name":"flag","type":"bool"},{"name":"salt","type":"bytes32"},{"name":"recipients","type":"address[]"},{"name":"pair","type":"uint16[2]"}],"outputs":[]},
	{"type":"function","name":"submit","stateMutability":"payable","inputs":[{"name":"order","type":"tuple","components":[{"name":"maker","type":"address"},{"name":"amount","type":"uint256"}]}],"outputs":[]},
	{"type":"function","name":"getOrder","stateMutability":"view","inputs":[],"outputs":[{"name":"order","type":"tuple","components":[{"name":"maker","type":"address"},{"name":"amount","type":"uint256"}]},{"name":"ids","type":"uint256[]"},{"name":"tag","type":"bytes4"}]}
]`

const (
	holder  = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	spender = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func mustParseABI(t *testing.T) *abi.ABI {
	t.Helper()
	parsed, err := ParseABI(json.RawMessage(testABI))
	require.NoError(t, err)
	return parsed
}

func rawArgs(t *testing.T, values ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(values))
	for i, v := range values {
		require.True(t, json.Valid([]byte(v)), v)
		out[i] = json.RawMessage(v)
	}
	return out
}

func TestParseABI_Invalid(t *testing.T) {
	_, err := ParseABI(json.RawMessage(`{"not":"an abi"}`))
	assert.Error(t, err)

	parsed, err := ParseABI(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, parsed.Methods)
}

func TestLookupMethod(t *testing.T) {
	parsed := mustParseABI(t)

	tests := []struct {
		name    string
		lookup  string
		wantSig string
		found   bool
	}{
		{name: "by name", lookup: "balanceOf", wantSig: "balanceOf(address)", found: true},
		{name: "overload resolves to first declaration", lookup: "transfer", wantSig: "transfer(address,uint256)", found: true},
		{name: "by signature", lookup: "transfer(address, uint256, bytes)", wantSig: "transfer(address,uint256,bytes)", found: true},
		{name: "generated overload name is not a declared name", lookup: "transfer0"},
		{name: "unknown", lookup: "approve"},
		{name: "unknown signature", lookup: "approve(address,uint256)"},
		{name: "empty", lookup: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := LookupMethod(parsed, tt.lookup)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantSig, m.Sig)
			}
		})
	}
}

func TestIsReadOnly(t *testing.T) {
	parsed := mustParseABI(t)

	for name, want := range map[string]bool{
		"balanceOf":   true,
		"totalSupply": true,
		"transfer":    false,
		"submit":      false,
	} {
		m, ok := LookupMethod(parsed, name)
		require.True(t, ok, name)
		assert.Equal(t, want, IsReadOnly(m), name)
	}
	assert.False(t, IsReadOnly(nil))
}

func TestConvertArgs_PacksForEveryInputKind(t *testing.T) {
	parsed := mustParseABI(t)

	tests := []struct {
		method string
		args   []string
	}{
		{method: "balanceOf", args: []string{`"` + holder + `"`}},
		{method: "transfer", args: []string{`"` + spender + `"`, `"1000000000000000000000000"`}},
		{method: "transfer", args: []string{`"` + spender + `"`, `1e18`}},
		{method: "transfer", args: []string{`"` + spender + `"`, `1.0`}},
		{method: "transfer", args: []string{`"` + spender + `"`, `2.50e1`}},
		{method: "transfer", args: []string{`"` + spender + `"`, `"0xde0b6b3a7640000"`}},
		{method: "transfer(address,uint256,bytes)", args: []string{`"` + spender + `"`, `5`, `"0xdeadbeef"`}},
		{method: "setLimits", args: []string{`"-42"`, `-128`, `"true"`, `"0x` + repeat("ab", 32) + `"`, `["` + holder + `","` + spender + `"]`, `[1, "65535"]`}},
		{method: "submit", args: []string{`{"maker":"` + holder + `","amount":"7"}`}},
		{method: "submit", args: []string{`["` + holder + `", 7]`}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m, ok := LookupMethod(parsed, tt.method)
			require.True(t, ok)

			converted, err := ConvertArgs(m.Inputs, rawArgs(t, tt.args...))
			require.NoError(t, err)

			_, err = m.Inputs.Pack(converted...)
			assert.NoError(t, err)
		})
	}
}

func TestConvertArgs_GoTypes(t *testing.T) {
	parsed := mustParseABI(t)
	m, _ := LookupMethod(parsed, "setLimits")

	converted, err := ConvertArgs(m.Inputs, rawArgs(t,
		`"-42"`, `-128`, `false`, `"0x`+repeat("00", 32)+`"`, `[]`, `[1, 2]`))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(-42), converted[0])
	assert.Equal(t, int8(-128), converted[1])
	assert.Equal(t, false, converted[2])
	assert.Equal(t, [32]byte{}, converted[3])
	assert.Equal(t, []common.Address{}, converted[4])
	assert.Equal(t, [2]uint16{1, 2}, converted[5])
}

func TestParseInteger_IntegralNumbers(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `1.0`, want: "1"},
		{raw: `-3.000`, want: "-3"},
		{raw: `1.5e2`, want: "150"},
		{raw: `"1e18"`, want: "1000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, err := parseInteger(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestConvertArgs_Errors(t *testing.T) {
	parsed := mustParseABI(t)

	tests := []struct {
		name    string
		method  string
		args    []string
		wantErr string
	}{
		{name: "too few", method: "transfer", args: []string{`"` + spender + `"`}, wantErr: "argument count mismatch: expected 2, got 1"},
		{name: "bad address", method: "balanceOf", args: []string{`"0x1234"`}, wantErr: "invalid address"},
		{name: "negative uint", method: "transfer", args: []string{`"` + spender + `"`, `-1`}, wantErr: "out of range for uint256"},
		{name: "fraction", method: "transfer", args: []string{`"` + spender + `"`, `1.5`}, wantErr: "expected integer"},
		{name: "quoted decimal", method: "transfer", args: []string{`"` + spender + `"`, `"1.0"`}, wantErr: "expected integer"},
		{name: "int8 overflow", method: "setLimits", args: []string{`1`, `128`, `true`, `"0x` + repeat("00", 32) + `"`, `[]`, `[1,2]`}, wantErr: "out of range for int8"},
		{name: "short bytes32", method: "setLimits", args: []string{`1`, `1`, `true`, `"0x00"`, `[]`, `[1,2]`}, wantErr: "expected 32 bytes, got 1"},
		{name: "fixed array length", method: "setLimits", args: []string{`1`, `1`, `true`, `"0x` + repeat("00", 32) + `"`, `[]`, `[1]`}, wantErr: "expected 2 elements, got 1"},
		{name: "bool", method: "setLimits", args: []string{`1`, `1`, `"yes"`, `"0x` + repeat("00", 32) + `"`, `[]`, `[1,2]`}, wantErr: "expected bool"},
		{name: "tuple component missing", method: "submit", args: []string{`{"maker":"` + holder + `"}`}, wantErr: "missing tuple component amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := LookupMethod(parsed, tt.method)
			require.True(t, ok)

			_, err := ConvertArgs(m.Inputs, rawArgs(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToValues(t *testing.T) {
	parsed := mustParseABI(t)

	decimals, _ := LookupMethod(parsed, "decimals")
	packed, err := decimals.Outputs.Pack(uint8(6))
	require.NoError(t, err)
	decoded, err := decimals.Outputs.Unpack(packed)
	require.NoError(t, err)

	values := ToValues(decimals.Outputs, decoded)
	require.Len(t, values, 1)
	assert.Equal(t, business.KindUint, values[0].Kind)
	assert.Equal(t, "6", values[0].Interface())

	getOrder, _ := LookupMethod(parsed, "getOrder")
	order := struct {
		Maker  common.Address
		Amount *big.Int
	}{Maker: common.HexToAddress(holder), Amount: big.NewInt(7)}
	packed, err = getOrder.Outputs.Pack(order, []*big.Int{big.NewInt(1), big.NewInt(2)}, [4]byte{0xca, 0xfe, 0xba, 0xbe})
	require.NoError(t, err)
	decoded, err = getOrder.Outputs.Unpack(packed)
	require.NoError(t, err)

	values = ToValues(getOrder.Outputs, decoded)
	require.Len(t, values, 3)

	assert.Equal(t, business.KindTuple, values[0].Kind)
	assert.Equal(t, []string{"maker", "amount"}, values[0].Names)
	assert.Equal(t, []interface{}{holder, "7"}, values[0].Interface())

	assert.Equal(t, business.KindList, values[1].Kind)
	assert.Equal(t, []interface{}{"1", "2"}, values[1].Interface())

	assert.Equal(t, business.KindBytes, values[2].Kind)
	assert.Equal(t, "0xcafebabe", values[2].Interface())
}

func TestToValue_UnexpectedGoType(t *testing.T) {
	addressType, err := abi.NewType("address", "", nil)
	require.NoError(t, err)

	v := ToValue(addressType, "not an address")
	assert.Equal(t, business.KindRaw, v.Kind)
	assert.Equal(t, "not an address", v.Interface())
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
