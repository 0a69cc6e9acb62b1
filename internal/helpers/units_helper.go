package helpers

import (
	"math/big"
	"strings"

	"github.com/cyphera/eth-gas-gateway/internal/constants"
)

// FormatUnits renders an integer amount of smallest units as a decimal string
// scaled down by 10^decimals. The fraction keeps at least one digit and drops
// trailing zeros, so 1000000 with 6 decimals is "1.0".
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		value = new(big.Int)
	}
	if decimals < 0 {
		decimals = 0
	}

	negative := value.Sign() < 0
	digits := new(big.Int).Abs(value).String()

	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-decimals]
	fraction := strings.TrimRight(digits[len(digits)-decimals:], "0")
	if fraction == "" {
		fraction = "0"
	}

	result := whole + "." + fraction
	if negative {
		result = "-" + result
	}
	return result
}

// FormatEther renders a wei amount in ether.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, constants.EtherDecimals)
}

// FormatGwei renders a wei amount in gwei with the unit suffix, e.g. "50.0 gwei".
func FormatGwei(wei *big.Int) string {
	return FormatUnits(wei, constants.GweiDecimals) + " gwei"
}
