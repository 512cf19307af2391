// Package consensus implements the phased voting FSM that drives
// validators through open→establish→accept→closed until a threshold of
// agreement elects the next ledger's transaction set (spec §4.E).
package consensus

import (
	"bytes"
	"sort"

	"github.com/goxrpld/lab/internal/core/ledger"
)

// Phase is the current phase within a consensus round.
type Phase int

const (
	// PhaseOpen accepts new proposals and locally admitted transactions.
	PhaseOpen Phase = iota
	// PhaseEstablish compares proposals toward a stable working set.
	PhaseEstablish
	// PhaseAccept checks whether the working set has supermajority support.
	PhaseAccept
	// PhaseClosed is terminal: the round produced an accepted_set.
	PhaseClosed
)

// String returns the phase's lowercase name.
func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseEstablish:
		return "establish"
	case PhaseAccept:
		return "accept"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ValidatorID identifies a validator within a round.
type ValidatorID string

// TxHash is a transaction hash, as carried in a proposal's position.
type TxHash = ledger.Hash256

// TxSet is a candidate set of transaction hashes forming one proposal's
// position, or a round's working/accepted set.
type TxSet map[TxHash]struct{}

// NewTxSet builds a TxSet from a slice of hashes.
func NewTxSet(hashes ...TxHash) TxSet {
	s := make(TxSet, len(hashes))
	for _, h := range hashes {
		s[h] = struct{}{}
	}
	return s
}

// Contains reports whether h is a member of the set.
func (s TxSet) Contains(h TxHash) bool {
	_, ok := s[h]
	return ok
}

// sortedHashes returns the set's members in ascending byte order, the
// canonical representation used for equality and tie-breaking.
func (s TxSet) sortedHashes() []TxHash {
	out := make([]TxHash, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}

// Key returns the canonical byte-string representation of the set, used
// both for equality checks (stability across evaluations) and as the sort
// key in the lexicographic tie-break rule (spec §4.E).
func (s TxSet) Key() string {
	var buf bytes.Buffer
	for _, h := range s.sortedHashes() {
		buf.Write(h[:])
	}
	return buf.String()
}

// Equal reports whether two sets contain the same hashes.
func (s TxSet) Equal(other TxSet) bool {
	return s.Key() == other.Key()
}

// LessThan implements the lexicographic tie-break: s wins over other when
// s.Key() sorts before other.Key().
func (s TxSet) LessThan(other TxSet) bool {
	return s.Key() < other.Key()
}

// Proposal is one validator's current candidate set for a round. At most
// one live proposal per validator per round; a later Proposal (by
// Timestamp) supersedes an earlier one from the same validator.
type Proposal struct {
	Validator ValidatorID
	RoundID   uint32
	Position  TxSet
	Timestamp uint32
}

// RoundState is the full state of one consensus round in progress.
// It holds no process-wide mutable state: every field a tick needs travels
// in this struct or the ConsensusConfig passed alongside it (spec §9).
type RoundState struct {
	RoundID       uint32
	Phase         Phase
	Proposals     map[ValidatorID]*Proposal
	TickCount     uint32
	StartTimeMs   uint32
	currentMs     uint32
	WorkingSet    TxSet
	AcceptedSet   TxSet
	stableStreak  int
	lastWorkingKey string
}

// NewRound creates a fresh round in PhaseOpen.
func NewRound(roundID uint32, startTimeMs uint32) *RoundState {
	return &RoundState{
		RoundID:     roundID,
		Phase:       PhaseOpen,
		Proposals:   make(map[ValidatorID]*Proposal),
		StartTimeMs: startTimeMs,
		currentMs:   startTimeMs,
	}
}

// Submit records or supersedes a validator's proposal for this round.
func (r *RoundState) Submit(p *Proposal) {
	existing, ok := r.Proposals[p.Validator]
	if !ok || p.Timestamp >= existing.Timestamp {
		r.Proposals[p.Validator] = p
	}
}
