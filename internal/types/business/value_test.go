package business

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestValue_Interface(t *testing.T) {
	huge, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	addr := common.HexToAddress("0xdac17f958d2ee523a2206206994597c13d831ec7")

	tests := []struct {
		name  string
		value Value
		want  interface{}
	}{
		{name: "uint keeps precision", value: UintValue(huge), want: huge.String()},
		{name: "negative int", value: IntValue(big.NewInt(-7)), want: "-7"},
		{name: "nil int", value: IntValue(nil), want: "0"},
		{name: "address is checksummed", value: AddressValue(addr), want: "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
		{name: "bool", value: BoolValue(true), want: true},
		{name: "string", value: StringValue("USDT"), want: "USDT"},
		{name: "bytes", value: BytesValue([]byte{0xde, 0xad}), want: "0xdead"},
		{name: "raw", value: RawValue(3.5), want: 3.5},
		{
			name:  "list",
			value: ListValue([]Value{UintValue(big.NewInt(1)), StringValue("a")}),
			want:  []interface{}{"1", "a"},
		},
		{
			name:  "tuple",
			value: TupleValue([]string{"amount", "ok"}, []Value{UintValue(big.NewInt(2)), BoolValue(false)}),
			want:  []interface{}{"2", false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Interface())
		})
	}
}

