// Package ledger implements the ledger and account-state model: immutable
// ledger headers, the mutable account map, and canonical hashing over
// sorted state (spec §3, §4.C).
package ledger

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/goxrpld/lab/internal/crypto"
	cryptocommon "github.com/goxrpld/lab/internal/crypto/common"
)

// AccountIDSize is the width in bytes of an AccountID.
const AccountIDSize = crypto.AccountIDSize

// AccountID is a 20-byte account identifier.
type AccountID [AccountIDSize]byte

// String renders the account ID as uppercase hex.
func (a AccountID) String() string {
	return fmt.Sprintf("%X", a[:])
}

// Less reports whether a sorts before b in ascending byte order.
func (a AccountID) Less(b AccountID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// IsZero reports whether a is the all-zero account (native XRP itself).
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// SortAccountIDs sorts ids in place in ascending byte order.
func SortAccountIDs(ids []AccountID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}

// Drops is the native asset's smallest unit; 1,000,000 drops = 1 XRP.
type Drops uint64

// XRP is the number of drops in one XRP.
const XRP Drops = 1_000_000

// Hash256 is a 32-byte digest, produced by sha512_half.
type Hash256 [32]byte

// String renders the hash as uppercase hex.
func (h Hash256) String() string {
	return fmt.Sprintf("%X", h[:])
}

// LedgerSeq is a 32-bit ledger sequence number.
type LedgerSeq uint32

// Sha512Half computes the canonical hash primitive: the first 32 bytes of
// SHA-512 over the given bytes.
func Sha512Half(b []byte) Hash256 {
	return Hash256(cryptocommon.Sha512Half(b))
}

// AmountKind discriminates the two Amount variants.
type AmountKind uint8

const (
	AmountXRP AmountKind = iota
	AmountIssued
)

// Amount is a tagged union: either a native XRP amount in drops, or an
// issued-currency amount (currency code, issuer, mantissa, exponent).
type Amount struct {
	Kind     AmountKind
	Drops    Drops
	Currency [20]byte
	Issuer   AccountID
	Mantissa uint64
	Exponent int8
}

// NewXRPAmount constructs a native XRP amount.
func NewXRPAmount(drops Drops) Amount {
	return Amount{Kind: AmountXRP, Drops: drops}
}

// NewIssuedAmount constructs an issued-currency amount.
func NewIssuedAmount(currency [20]byte, issuer AccountID, mantissa uint64, exponent int8) Amount {
	return Amount{Kind: AmountIssued, Currency: currency, Issuer: issuer, Mantissa: mantissa, Exponent: exponent}
}

// IsXRP reports whether this amount is native XRP.
func (a Amount) IsXRP() bool {
	return a.Kind == AmountXRP
}
