package ledger

// GenesisAccount describes one account to seed into the open ledger at
// startup, used by standalone/simulation runs.
type GenesisAccount struct {
	ID       AccountID
	Balance  Drops
	Sequence uint32
}

// SeedAccounts installs the given accounts into the manager's open ledger.
// Intended for startup/test seeding only; it bypasses transaction
// application and its fee/sequence invariants.
func (m *LedgerManager) SeedAccounts(accounts []GenesisAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ga := range accounts {
		m.open.AccountState.Put(&Account{
			ID:       ga.ID,
			Balance:  ga.Balance,
			Sequence: ga.Sequence,
		})
	}
}
