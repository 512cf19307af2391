package tx

import (
	"bytes"
	"sort"

	"github.com/goxrpld/lab/internal/core/ledger"
)

// Hash computes the canonical transaction hash over its encoded blob.
func Hash(t *Transaction) ledger.Hash256 {
	return ledger.Sha512Half(Encode(t))
}

// Submit decodes, validates, and applies blob against the manager's open
// ledger account state, recording the applied transaction's hash on
// success. It is the entry point used by the RPC `submit` method
// (spec §6).
func Submit(m *ledger.LedgerManager, blob []byte, baseFee ledger.Drops) (*Transaction, Receipt, error) {
	t, err := Decode(blob)
	if err != nil {
		return nil, Receipt{}, err
	}

	open := m.Open()
	receipt := Apply(t, open.AccountState, baseFee)
	if receipt.Success {
		m.RecordApplied(Hash(t))
	}
	return t, receipt, nil
}

// CanonicalOrder sorts transactions by account-id then sequence, with ties
// (same account, same sequence — which Apply's BadSequence check rejects
// after the first) broken by lexical tx hash (spec §4.D).
func CanonicalOrder(txs []*Transaction) []*Transaction {
	ordered := append([]*Transaction(nil), txs...)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Account != b.Account {
			return bytes.Compare(a.Account[:], b.Account[:]) < 0
		}
		if a.Sequence != b.Sequence {
			return a.Sequence < b.Sequence
		}
		ha, hb := Hash(a), Hash(b)
		return bytes.Compare(ha[:], hb[:]) < 0
	})
	return ordered
}

// ApplyAll applies a set of transactions to state in canonical order,
// returning one receipt per transaction in that same order.
func ApplyAll(txs []*Transaction, state *ledger.AccountState, baseFee ledger.Drops) []Receipt {
	ordered := CanonicalOrder(txs)
	receipts := make([]Receipt, len(ordered))
	for i, t := range ordered {
		receipts[i] = Apply(t, state, baseFee)
	}
	return receipts
}
