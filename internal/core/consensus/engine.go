package consensus

import (
	"errors"

	"github.com/goxrpld/lab/internal/config"
)

// ErrConsensusStalled is returned when max_iterations is exhausted without
// reaching Accept. Non-fatal: the round is discarded and a new one opens
// (spec §4.E, §7).
var ErrConsensusStalled = errors.New("consensus: round stalled, max_iterations exhausted")

// Result reports what a single Tick call did to the round.
type Result int

const (
	// ResultContinuing means the round is still in progress.
	ResultContinuing Result = iota
	// ResultAccepted means the round reached PhaseClosed this tick.
	ResultAccepted
	// ResultAborted means Accept's threshold check failed and the round
	// must be discarded; the caller should open a fresh round.
	ResultAborted
)

// thresholdPercent computes the current establish-phase support threshold
// as an integer percentage: 50, stepped +5 every consensus_round_ticks
// ticks, capped at final_threshold*100 (spec §4.E).
func thresholdPercent(ticks uint32, cfg config.ConsensusConfig) int {
	maxPct := int(cfg.FinalThreshold * 100)
	steps := int(ticks / cfg.ConsensusRoundTicks)
	pct := 50 + 5*steps
	if pct > maxPct {
		return maxPct
	}
	return pct
}

// Tick is the engine's sole state-transition entry point, where the tick
// itself is the event (spec §9). It advances state in place and returns a
// Result describing what happened.
func Tick(state *RoundState, cfg config.ConsensusConfig, activeValidators int, nowMs uint32) Result {
	state.TickCount++
	state.currentMs = nowMs

	switch state.Phase {
	case PhaseOpen:
		elapsedTicks := state.TickCount >= cfg.OpenPhaseTicks
		elapsedMs := nowMs-state.StartTimeMs >= cfg.OpenPhaseMs
		if elapsedTicks || elapsedMs {
			state.Phase = PhaseEstablish
		}
		return ResultContinuing

	case PhaseEstablish:
		working := computeWorkingSet(state, cfg, activeValidators)
		key := working.Key()
		if key == state.lastWorkingKey {
			state.stableStreak++
		} else {
			state.stableStreak = 1
		}
		state.WorkingSet = working
		state.lastWorkingKey = key

		if state.stableStreak >= 2 || state.TickCount >= cfg.EstablishPhaseTicks {
			state.Phase = PhaseAccept
		}
		return ResultContinuing

	case PhaseAccept:
		if hasFinalSupport(state, activeValidators, cfg) {
			state.Phase = PhaseClosed
			state.AcceptedSet = state.WorkingSet
			return ResultAccepted
		}
		return ResultAborted

	case PhaseClosed:
		return ResultAccepted

	default:
		return ResultContinuing
	}
}

// computeWorkingSet includes each candidate hash whose support meets the
// current threshold, evaluated with integer percentage math:
// supporters*100 >= threshold_percent*active_validators (spec §4.E).
// Ties in support are irrelevant to membership (a hash is either in or
// out); the lexicographic tie-break applies when comparing whole
// candidate sets, exposed via TxSet.LessThan for callers that need it.
func computeWorkingSet(state *RoundState, cfg config.ConsensusConfig, activeValidators int) TxSet {
	pct := thresholdPercent(state.TickCount, cfg)
	support := make(map[TxHash]int)
	for _, p := range state.Proposals {
		for h := range p.Position {
			support[h]++
		}
	}

	working := make(TxSet)
	for h, supporters := range support {
		if supporters*100 >= pct*activeValidators {
			working[h] = struct{}{}
		}
	}
	return working
}

// hasFinalSupport reports whether the fraction of validators whose latest
// proposal equals the working set meets final_threshold (spec §4.E).
func hasFinalSupport(state *RoundState, activeValidators int, cfg config.ConsensusConfig) bool {
	if activeValidators == 0 {
		return false
	}
	matching := 0
	for _, p := range state.Proposals {
		if p.Position.Equal(state.WorkingSet) {
			matching++
		}
	}
	finalPct := int(cfg.FinalThreshold * 100)
	return matching*100 >= finalPct*activeValidators
}
