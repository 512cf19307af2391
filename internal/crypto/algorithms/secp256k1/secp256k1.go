//go:build xrpl_ecdsa

// Package secp256k1 provides optional ECDSA signature verification for
// XRPL secp256k1 keys. It is only compiled when the xrpl_ecdsa build tag
// is set; see verify_disabled.go for the default (disabled) behaviour.
package secp256k1

import (
	"crypto/sha256"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	crypto "github.com/goxrpld/lab/internal/crypto"
)

// Available reports whether this build includes ECDSA verification.
const Available = true

var (
	// ErrInvalidPublicKey is returned when the public key cannot be parsed.
	ErrInvalidPublicKey = errors.New("secp256k1: invalid public key")
	// ErrSignatureNotCanonical is returned for malformed or non-canonical DER signatures.
	ErrSignatureNotCanonical = errors.New("secp256k1: signature is not canonical")
)

// Verify checks an ECDSA signature over sha256(message) using a compressed
// secp256k1 public key. It requires the DER signature to be at least
// canonical (see crypto.ECDSACanonicality) to reject malleable signatures.
func Verify(message, pubKey, sig []byte) error {
	if crypto.ECDSACanonicality(sig) == crypto.CanonicityNone {
		return ErrSignatureNotCanonical
	}

	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return ErrInvalidPublicKey
	}

	parsedSig, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return ErrSignatureNotCanonical
	}

	digest := sha256.Sum256(message)
	if !parsedSig.Verify(digest[:], pk) {
		return errors.New("secp256k1: signature verification failed")
	}
	return nil
}
