package ledger

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// OpenLedger is the mutable, in-progress ledger accepting new transactions.
type OpenLedger struct {
	Sequence            LedgerSeq
	ParentHash          Hash256
	CloseTimeResolution uint32
	AccountState        *AccountState
	AppliedTxHashes     []Hash256
}

// ClosedLedger is an immutable, sealed ledger: a frozen account-state
// snapshot plus its header and the transactions applied into it.
type ClosedLedger struct {
	Header       Header
	AccountState *AccountState
	TxHashes     []Hash256
}

// LedgerManager exclusively owns the current open ledger and the account
// state mapping (spec §3 Ownership model). Its accessors hold an internal
// mutex only for their own duration; the RPC server serializes method
// calls with a mutex of its own (spec §5), and no lock is held across a
// consensus tick.
type LedgerManager struct {
	mu         sync.Mutex
	open       *OpenLedger
	lastClosed *ClosedLedger

	bySeq  *lru.Cache[LedgerSeq, *ClosedLedger]
	byHash *lru.Cache[Hash256, *ClosedLedger]
}

// NewLedgerManager creates a manager with a fresh open ledger descending
// from a synthetic genesis parent, sized history caches per historyDepth.
func NewLedgerManager(historyDepth int) (*LedgerManager, error) {
	if historyDepth < 1 {
		return nil, fmt.Errorf("ledger: history depth must be at least 1")
	}
	bySeq, err := lru.New[LedgerSeq, *ClosedLedger](historyDepth)
	if err != nil {
		return nil, fmt.Errorf("ledger: creating sequence cache: %w", err)
	}
	byHash, err := lru.New[Hash256, *ClosedLedger](historyDepth)
	if err != nil {
		return nil, fmt.Errorf("ledger: creating hash cache: %w", err)
	}

	m := &LedgerManager{
		bySeq:  bySeq,
		byHash: byHash,
		open: &OpenLedger{
			Sequence:            1,
			CloseTimeResolution: 10,
			AccountState:        NewAccountState(),
		},
	}
	return m, nil
}

// Open returns the current open ledger. Callers must not retain the
// returned pointer across a Close call.
func (m *LedgerManager) Open() *OpenLedger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// LastClosed returns the most recently closed ledger, or nil if none has
// closed yet.
func (m *LedgerManager) LastClosed() *ClosedLedger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastClosed
}

// Lock acquires the manager's internal mutex, the same one its accessors
// take, so no accessor may be called while it is held. Unlock must be
// called exactly once. The RPC server does not call either.
func (m *LedgerManager) Lock()   { m.mu.Lock() }
func (m *LedgerManager) Unlock() { m.mu.Unlock() }

// ByHash looks up a closed ledger by its header hash.
func (m *LedgerManager) ByHash(h Hash256) (*ClosedLedger, bool) {
	return m.byHash.Get(h)
}

// BySeq looks up a closed ledger by sequence.
func (m *LedgerManager) BySeq(seq LedgerSeq) (*ClosedLedger, bool) {
	return m.bySeq.Get(seq)
}

// Close seals the current open ledger: snapshots account state, computes
// the canonical hashes, and opens a fresh ledger inheriting the live
// account map (spec §4.C).
func (m *LedgerManager) Close(closeTime uint32, totalCoins Drops) *ClosedLedger {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.open.AccountState.Clone()
	stateHash := snapshot.ComputeStateHash()
	txHash := ComputeTransactionHash(m.open.AppliedTxHashes)

	var parentCloseTime uint32
	if m.lastClosed != nil {
		parentCloseTime = m.lastClosed.Header.CloseTime
	}

	header := Header{
		Sequence:            m.open.Sequence,
		ParentHash:          m.open.ParentHash,
		CloseTime:           closeTime,
		ParentCloseTime:     parentCloseTime,
		CloseTimeResolution: m.open.CloseTimeResolution,
		TotalCoins:          totalCoins,
		AccountStateHash:    stateHash,
		TransactionHash:     txHash,
	}
	header.Hash = header.ComputeHash()

	closed := &ClosedLedger{
		Header:       header,
		AccountState: snapshot,
		TxHashes:     append([]Hash256(nil), m.open.AppliedTxHashes...),
	}

	m.lastClosed = closed
	m.bySeq.Add(header.Sequence, closed)
	m.byHash.Add(header.Hash, closed)

	m.open = &OpenLedger{
		Sequence:            header.Sequence + 1,
		ParentHash:          header.Hash,
		CloseTimeResolution: m.open.CloseTimeResolution,
		AccountState:        m.open.AccountState,
	}

	return closed
}

// RecordApplied appends an applied transaction's hash to the open ledger,
// in the canonical application order (spec §4.D).
func (m *LedgerManager) RecordApplied(h Hash256) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open.AppliedTxHashes = append(m.open.AppliedTxHashes, h)
}
