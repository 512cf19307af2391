package ledger

// AccountFlags is a bitset of account settings, set via AccountSet.
type AccountFlags uint32

const (
	// FlagRequireDestTag requires incoming payments to specify a destination tag.
	FlagRequireDestTag AccountFlags = 1 << iota
	// FlagDisallowXRP disallows XRP payments to this account.
	FlagDisallowXRP
	// FlagDefaultRipple enables rippling by default on trust lines.
	FlagDefaultRipple
)

// Account is a ledger account's mutable state (spec §3).
type Account struct {
	ID                AccountID
	Balance           Drops
	Sequence          uint32
	Flags             AccountFlags
	OwnerCount        uint32
	PreviousTxnID     Hash256
	PreviousTxnLgrSeq LedgerSeq

	// RegularKey and EmailHash are ambient supplements (SPEC_FULL §3):
	// inert slots settable by AccountSet, carrying no further behavior
	// beyond being stored and returned by account_info.
	RegularKey *AccountID
	EmailHash  [16]byte
}

// Reserve computes the minimum balance this account must retain given its
// owner count, per the node's fee schedule.
func Reserve(ownerCount uint32, reserveBase, reserveIncrement Drops) Drops {
	return reserveBase + Drops(ownerCount)*reserveIncrement
}

// MeetsReserve reports whether the account's balance satisfies its reserve
// requirement under the given fee schedule.
func (a *Account) MeetsReserve(reserveBase, reserveIncrement Drops) bool {
	return a.Balance >= Reserve(a.OwnerCount, reserveBase, reserveIncrement)
}

// HasFlag reports whether the given flag is set.
func (a *Account) HasFlag(f AccountFlags) bool {
	return a.Flags&f != 0
}

// SetFlag sets the given flag.
func (a *Account) SetFlag(f AccountFlags) {
	a.Flags |= f
}

// ClearFlag clears the given flag.
func (a *Account) ClearFlag(f AccountFlags) {
	a.Flags &^= f
}

// Clone returns a deep copy of the account, used when the pipeline needs to
// roll back a failed transaction's mutations.
func (a *Account) Clone() *Account {
	clone := *a
	if a.RegularKey != nil {
		rk := *a.RegularKey
		clone.RegularKey = &rk
	}
	return &clone
}
