package utils

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidHexValue is returned for quantities that are not unsigned
// base-16 numbers.
var ErrInvalidHexValue = errors.New("invalid hex value")

// HexPrefix is the prefix of JSON-RPC quantities.
const HexPrefix = "0x"

// ParseHexQuantity parses an unsigned base-16 number with an optional "0x"
// prefix. Quantities wider than 64 bits are supported.
func ParseHexQuantity(value string) (*big.Int, error) {
	digits := strings.TrimPrefix(value, HexPrefix)
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHexValue, value)
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHexValue, value)
	}

	return n, nil
}
