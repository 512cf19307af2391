package tx

import "errors"

// ValidationError kinds (spec §4.D, §7). Each maps to a stable engine
// result code surfaced in the Receipt.
var (
	ErrAccountNotFound = errors.New("tx: account not found")
	ErrBadSequence     = errors.New("tx: sequence mismatch")
	ErrInsufficientFee = errors.New("tx: fee below base fee")
	ErrUnsupportedType = errors.New("tx: unsupported transaction type")
	ErrUnfundedPayment = errors.New("tx: balance insufficient for fee plus effect")
)
