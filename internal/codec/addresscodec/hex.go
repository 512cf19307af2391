// Package addresscodec provides hex encode/decode helpers for fixed-length
// identifiers (account IDs, hashes) used across the wire codec.
//
// Classic XRPL base58-check addresses are out of scope here; AccountIDs
// travel as raw big-endian bytes, encoded to hex for JSON/RPC boundaries.
package addresscodec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexUpper decodes a hex string of any case into raw bytes.
func DecodeHexUpper(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, fmt.Errorf("addresscodec: invalid hex string: %w", err)
	}
	return b, nil
}

// EncodeHexUpper encodes raw bytes as an uppercase hex string.
func EncodeHexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// DecodeFixed decodes a hex string that must decode to exactly n bytes.
func DecodeFixed(s string, n int) ([]byte, error) {
	b, err := DecodeHexUpper(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("addresscodec: expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}
