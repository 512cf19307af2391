//go:build xrpl_ecdsa

package secp256k1_test

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	decredsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/goxrpld/lab/internal/crypto/algorithms/secp256k1"
)

func genKey(t *testing.T) *decredsecp256k1.PrivateKey {
	t.Helper()
	var seed [32]byte
	_, err := rand.Read(seed[:])
	require.NoError(t, err)
	priv := decredsecp256k1.PrivKeyFromBytes(seed[:])
	return priv
}

func sign(priv *decredsecp256k1.PrivateKey, msg []byte) []byte {
	digest := sha256.Sum256(msg)
	sig := ecdsa.Sign(priv, digest[:])
	return sig.Serialize()
}

func TestVerify_PositiveAndNegative(t *testing.T) {
	priv := genKey(t)
	pub := priv.PubKey().SerializeCompressed()
	msg := []byte("xrpl consensus lab vector")
	sig := sign(priv, msg)

	require.NoError(t, secp256k1.Verify(msg, pub, sig))

	t.Run("tampered message fails", func(t *testing.T) {
		require.Error(t, secp256k1.Verify([]byte("tampered"), pub, sig))
	})

	t.Run("wrong key fails", func(t *testing.T) {
		other := genKey(t)
		require.Error(t, secp256k1.Verify(msg, other.PubKey().SerializeCompressed(), sig))
	})

	t.Run("malformed signature fails", func(t *testing.T) {
		require.Error(t, secp256k1.Verify(msg, pub, []byte{0x01, 0x02}))
	})
}

func TestAvailable(t *testing.T) {
	require.True(t, secp256k1.Available)
}
