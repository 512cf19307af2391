package tx

import (
	"fmt"

	"github.com/goxrpld/lab/internal/codec/txcodec"
	"github.com/goxrpld/lab/internal/core/ledger"
)

// Validate checks account existence, sequence equality, fee sufficiency,
// and balance sufficiency for the fee plus any type-specific debited
// effect against the given account state and base fee (spec §4.D). It
// performs no state mutation.
func Validate(t *Transaction, state *ledger.AccountState, baseFee ledger.Drops) error {
	account, ok := state.Get(t.Account)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, t.Account)
	}
	if t.Sequence != account.Sequence {
		return fmt.Errorf("%w: expected %d, got %d", ErrBadSequence, account.Sequence, t.Sequence)
	}
	if t.Fee < baseFee {
		return fmt.Errorf("%w: fee %d below base fee %d", ErrInsufficientFee, t.Fee, baseFee)
	}
	if required := t.Fee + effectAmount(t); account.Balance < required {
		return fmt.Errorf("%w: balance %d below required %d", ErrUnfundedPayment, account.Balance, required)
	}
	return validateTypeSpecific(t)
}

// effectAmount returns the Drops a successful Apply would debit from the
// transacting account beyond the fee, for the transaction types that move
// value out of the account (spec §4.D). Types with no value-moving effect
// return 0.
func effectAmount(t *Transaction) ledger.Drops {
	switch t.Type {
	case txcodec.TxPayment:
		return t.Payment.Amount
	case txcodec.TxEscrowCreate:
		return ledger.Drops(t.EscrowCreate.Amount)
	case txcodec.TxPaymentChannelCreate:
		return ledger.Drops(t.PaymentChannelCreate.Amount)
	default:
		return 0
	}
}

func validateTypeSpecific(t *Transaction) error {
	if !txcodec.KnownType(t.Type) {
		return ErrUnsupportedType
	}
	// The fixed blob length already enforced by txcodec.DecodeHeader rules
	// out malformed payloads for known types; nothing further to check.
	return nil
}
