package helpers

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    *big.Int
		decimals int
		want     string
	}{
		{name: "six decimals whole", value: big.NewInt(1_000_000), decimals: 6, want: "1.0"},
		{name: "six decimals fraction", value: big.NewInt(1_234_500), decimals: 6, want: "1.2345"},
		{name: "below one", value: big.NewInt(5), decimals: 6, want: "0.000005"},
		{name: "zero", value: big.NewInt(0), decimals: 18, want: "0.0"},
		{name: "nil is zero", value: nil, decimals: 9, want: "0.0"},
		{name: "no decimals", value: big.NewInt(42), decimals: 0, want: "42.0"},
		{name: "negative", value: big.NewInt(-1_500_000), decimals: 6, want: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnits(tt.value, tt.decimals))
		})
	}
}

func TestFormatEther(t *testing.T) {
	// 21000 gas at 50 gwei
	fee := new(big.Int).Mul(big.NewInt(21000), big.NewInt(50_000_000_000))
	assert.Equal(t, "0.00105", FormatEther(fee))

	large, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.True(t, ok)
	assert.Equal(t, "123456789012.34567890123456789", FormatEther(large))
}

func TestFormatGwei(t *testing.T) {
	assert.Equal(t, "50.0 gwei", FormatGwei(big.NewInt(50_000_000_000)))
	assert.Equal(t, "12.345678901 gwei", FormatGwei(big.NewInt(12_345_678_901)))
	assert.Equal(t, "0.000000001 gwei", FormatGwei(big.NewInt(1)))
}
