package crypto

import "encoding/binary"

// HashPrefix provides domain separation for sha512_half hashing.
// Each prefix puts a distinct class of object in its own hash "space" so
// that, for instance, a transaction id and a leaf-node hash can never
// collide even given identical trailing bytes.
type HashPrefix uint32

const (
	// HashPrefixTransactionID is the prefix for transaction id calculation (TXN\0).
	HashPrefixTransactionID HashPrefix = 0x54584E00

	// HashPrefixLeafNode is the prefix for account-state leaf hashing (MLN\0).
	HashPrefixLeafNode HashPrefix = 0x4D4C4E00

	// HashPrefixInnerNode is the prefix for state-tree inner node hashing (MIN\0).
	HashPrefixInnerNode HashPrefix = 0x4D494E00

	// HashPrefixLedgerMaster is the prefix for ledger header hashing (LWR\0).
	HashPrefixLedgerMaster HashPrefix = 0x4C575200

	// HashPrefixTxSign is the prefix for single-signer signing data (STX\0).
	HashPrefixTxSign HashPrefix = 0x53545800

	// HashPrefixProposal is the prefix for consensus proposal signing (PRP\0).
	HashPrefixProposal HashPrefix = 0x50525000
)

// Bytes returns the hash prefix as a 4-byte big-endian slice.
func (hp HashPrefix) Bytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(hp))
	return b
}

// PrependHashPrefix prepends the given domain-separation prefix to data.
func PrependHashPrefix(prefix HashPrefix, data []byte) []byte {
	prefixBytes := prefix.Bytes()
	result := make([]byte, len(prefixBytes)+len(data))
	copy(result, prefixBytes)
	copy(result[len(prefixBytes):], data)
	return result
}
