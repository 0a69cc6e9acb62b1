package helpers

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsAddressValid checks if the provided string is a valid Ethereum address.
// It verifies:
// 1. The address is 40 hex characters, optionally prefixed with "0x"
// 2. A mixed-case address matches its EIP-55 checksum
func IsAddressValid(address string) bool {
	hexPart := strings.TrimPrefix(address, "0x")
	if len(hexPart) != 2*common.AddressLength {
		return false
	}

	hasLower, hasUpper := false, false
	for _, c := range hexPart {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
			hasLower = true
		case c >= 'A' && c <= 'F':
			hasUpper = true
		default:
			return false
		}
	}

	if hasLower && hasUpper {
		return common.HexToAddress(hexPart).Hex() == "0x"+hexPart
	}
	return true
}

// ParseAddress returns the address for a valid input and false otherwise.
func ParseAddress(address string) (common.Address, bool) {
	if !IsAddressValid(address) {
		return common.Address{}, false
	}
	return common.HexToAddress(address), true
}
