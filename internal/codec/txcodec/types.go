// Package txcodec implements the canonical, length-strict binary transaction
// blob contract described in spec §4.A/§4.D/§6: big-endian fields, fixed
// widths per transaction type, no padding. It is intentionally not wire
// compatible with the reference XRPL binary format (see spec §9 Open
// Questions) — the length-based contract here is this engine's own.
package txcodec

// TxType identifies a transaction variant. Values mirror the reference
// ledger's type codes for familiarity; they carry no wire-compatibility
// guarantee (spec §9).
type TxType uint16

const (
	TxPayment              TxType = 0
	TxEscrowCreate         TxType = 1
	TxAccountSet           TxType = 3
	TxOfferCreate          TxType = 7
	TxOfferCancel          TxType = 8
	TxPaymentChannelCreate TxType = 13
	TxCheckCreate          TxType = 16
	TxTrustSet             TxType = 20
)

func (t TxType) String() string {
	switch t {
	case TxPayment:
		return "Payment"
	case TxEscrowCreate:
		return "EscrowCreate"
	case TxAccountSet:
		return "AccountSet"
	case TxOfferCreate:
		return "OfferCreate"
	case TxOfferCancel:
		return "OfferCancel"
	case TxPaymentChannelCreate:
		return "PaymentChannelCreate"
	case TxCheckCreate:
		return "CheckCreate"
	case TxTrustSet:
		return "TrustSet"
	default:
		return "Unknown"
	}
}

// HeaderLen is the length in bytes of the common header:
// tx_type(2) | account(20) | fee(8) | sequence(4).
const HeaderLen = 2 + 20 + 8 + 4

// trailingLen is the length in bytes of each type's additional fields,
// beyond the common header. AccountSet carries none: spec §8 scenario 1's
// worked blob is exactly the common header with no further segment.
var trailingLen = map[TxType]int{
	TxPayment:              20 + 8,      // destination, amount (XRP drops)
	TxAccountSet:           0,           // header only
	TxTrustSet:             20 + 20 + 8 + 1, // limit currency, limit issuer, mantissa, exponent
	TxOfferCreate:          8 + 8,       // taker_pays, taker_gets
	TxOfferCancel:          4,           // offer_sequence
	TxEscrowCreate:         8 + 4,       // amount, cancel_after
	TxCheckCreate:          20 + 8,      // destination, send_max
	TxPaymentChannelCreate: 20 + 8 + 4,  // destination, amount, settle_delay
}

// ExpectedLength returns the total fixed blob length for a known tx type,
// and false for unknown types.
func ExpectedLength(t TxType) (int, bool) {
	extra, ok := trailingLen[t]
	if !ok {
		return 0, false
	}
	return HeaderLen + extra, true
}

// KnownType reports whether t is a recognized transaction type.
func KnownType(t TxType) bool {
	_, ok := trailingLen[t]
	return ok
}
