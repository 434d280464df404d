package utils

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidAddress is returned for strings that are not 20-byte hex
// addresses.
var ErrInvalidAddress = errors.New("invalid address")

const addressHexLen = 40

// ChecksumAddress returns the EIP-55 mixed-case form of a 20-byte hex
// address. The input may be in any case, with or without the "0x" prefix.
func ChecksumAddress(address string) (string, error) {
	lower := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(address, HexPrefix), "0X"))
	if len(lower) != addressHexLen {
		return "", ErrInvalidAddress
	}
	if _, err := hex.DecodeString(lower); err != nil {
		return "", ErrInvalidAddress
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(lower))
	hash := hasher.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}

	return HexPrefix + string(out), nil
}

// ShortAddress renders an address as "0x1234…abcd" for narrow views.
// Inputs shorter than the shortened form are returned unchanged.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
