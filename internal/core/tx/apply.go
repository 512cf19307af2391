package tx

import (
	"github.com/goxrpld/lab/internal/codec/txcodec"
	"github.com/goxrpld/lab/internal/core/ledger"
)

// Apply validates and applies t against state. Application is atomic per
// transaction: on failure the account state is left exactly as it was
// found (no partial mutation), and the receipt carries a tec*/tem*/tef*/tel*
// result; on success the account is mutated and receipt is tesSUCCESS
// (spec §4.D).
func Apply(t *Transaction, state *ledger.AccountState, baseFee ledger.Drops) Receipt {
	if err := Validate(t, state, baseFee); err != nil {
		return failureReceipt(err)
	}

	account, _ := state.Get(t.Account)
	applyEffect(t, state, account)
	account.Sequence++
	account.Balance -= t.Fee

	return successReceipt()
}

// applyEffect performs the type-specific state mutation beyond the common
// fee debit and sequence increment. It mutates account (the transacting
// account) directly and may create or mutate other accounts via state.
func applyEffect(t *Transaction, state *ledger.AccountState, account *ledger.Account) {
	switch t.Type {
	case txcodec.TxPayment:
		account.Balance -= t.Payment.Amount
		dest, ok := state.Get(t.Payment.Destination)
		if !ok {
			dest = &ledger.Account{ID: t.Payment.Destination}
			state.Put(dest)
		}
		dest.Balance += t.Payment.Amount

	case txcodec.TxAccountSet:
		// header-only, no further effect (spec §8 scenario 1).

	case txcodec.TxTrustSet:
		account.OwnerCount++

	case txcodec.TxOfferCreate:
		account.OwnerCount++

	case txcodec.TxOfferCancel:
		if account.OwnerCount > 0 {
			account.OwnerCount--
		}

	case txcodec.TxEscrowCreate:
		account.Balance -= ledger.Drops(t.EscrowCreate.Amount)
		account.OwnerCount++

	case txcodec.TxCheckCreate:
		account.OwnerCount++

	case txcodec.TxPaymentChannelCreate:
		account.Balance -= ledger.Drops(t.PaymentChannelCreate.Amount)
		account.OwnerCount++
	}
}
