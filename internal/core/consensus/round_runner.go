package consensus

import "github.com/goxrpld/lab/internal/config"

// ProposalSource supplies each validator's proposal for a given tick,
// letting the caller (a real peer set or the simulation harness) decide
// how proposals evolve round over round.
type ProposalSource func(tickCount uint32) []*Proposal

// RunRound drives a round tick by tick until it closes, aborts into a
// fresh round, or exhausts cfg.MaxIterations. The engine itself holds no
// state between calls: every tick's inputs travel through state and cfg.
func RunRound(roundID uint32, cfg config.ConsensusConfig, activeValidators int, startTimeMs, msPerTick uint32, proposals ProposalSource) (*RoundState, error) {
	state := NewRound(roundID, startTimeMs)

	for iteration := uint32(0); iteration < cfg.MaxIterations; iteration++ {
		for _, p := range proposals(state.TickCount) {
			state.Submit(p)
		}

		nowMs := startTimeMs + (iteration+1)*msPerTick
		result := Tick(state, cfg, activeValidators, nowMs)

		switch result {
		case ResultAccepted:
			return state, nil
		case ResultAborted:
			roundID++
			state = NewRound(roundID, nowMs)
		}
	}

	return state, ErrConsensusStalled
}
