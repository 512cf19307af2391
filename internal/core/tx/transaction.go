// Package tx implements the transaction pipeline: canonical binary
// decoding, typed validation, state mutation, and fee accounting
// (spec §4.D).
package tx

import (
	"github.com/goxrpld/lab/internal/codec/txcodec"
	"github.com/goxrpld/lab/internal/core/ledger"
)

// Transaction is a decoded, tagged transaction. Exactly one of the
// type-specific payload fields is non-nil, matching txcodec.Header.Type.
type Transaction struct {
	Type     txcodec.TxType
	Account  ledger.AccountID
	Fee      ledger.Drops
	Sequence uint32

	Payment              *PaymentFields
	AccountSet           *AccountSetFields
	TrustSet             *TrustSetFields
	OfferCreate          *OfferCreateFields
	OfferCancel          *OfferCancelFields
	EscrowCreate         *EscrowCreateFields
	CheckCreate          *CheckCreateFields
	PaymentChannelCreate *PaymentChannelCreateFields
}

// PaymentFields carries a Payment's type-specific fields. Payments here are
// XRP-only, which keeps the blob fixed-length without a variable-width
// Issued Amount encoding.
type PaymentFields struct {
	Destination ledger.AccountID
	Amount      ledger.Drops
}

// AccountSetFields is empty: spec §8 scenario 1's worked AccountSet blob
// carries no trailing segment beyond the common header.
type AccountSetFields struct{}

// TrustSetFields carries a trust line's limit amount.
type TrustSetFields struct {
	LimitCurrency [20]byte
	LimitIssuer   ledger.AccountID
	LimitMantissa uint64
	LimitExponent int8
}

// OfferCreateFields carries an offer's exchange amounts.
type OfferCreateFields struct {
	TakerPays uint64
	TakerGets uint64
}

// OfferCancelFields identifies the offer being cancelled.
type OfferCancelFields struct {
	OfferSequence uint32
}

// EscrowCreateFields carries an escrow's locked amount and expiry.
type EscrowCreateFields struct {
	Amount      uint64
	CancelAfter uint32
}

// CheckCreateFields carries a check's destination and cap.
type CheckCreateFields struct {
	Destination ledger.AccountID
	SendMax     uint64
}

// PaymentChannelCreateFields carries a payment channel's destination,
// locked amount, and settlement delay.
type PaymentChannelCreateFields struct {
	Destination ledger.AccountID
	Amount      uint64
	SettleDelay uint32
}

// TypeName returns the human-readable TransactionType string used in
// tx_json responses (spec §6).
func (t *Transaction) TypeName() string {
	return t.Type.String()
}
