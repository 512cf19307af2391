package simulation

import (
	"errors"
	"fmt"

	"github.com/goxrpld/lab/internal/config"
	"github.com/goxrpld/lab/internal/core/consensus"
)

// ErrTooFewExperiments is returned when fewer than three labeled configs
// are supplied (spec §4.F.3).
var ErrTooFewExperiments = errors.New("simulation: matrix requires at least 3 experiments")

// ErrDuplicateLabel is returned when two experiments share a label.
var ErrDuplicateLabel = errors.New("simulation: duplicate experiment label")

// ExperimentConfig is one labeled consensus configuration entry in the
// matrix manifest.
type ExperimentConfig struct {
	Label     string
	Consensus config.ConsensusConfig
}

// ExperimentResult is one experiment's outcome.
type ExperimentResult struct {
	Label          string `json:"label"`
	RoundsToAccept int    `json:"rounds_to_accept"`
	Stalled        bool   `json:"stalled"`
	FinalPhase     string `json:"final_phase"`
	Deterministic  bool   `json:"deterministic"`
}

// MatrixResult is the matrix-summary.json payload.
type MatrixResult struct {
	ExperimentsExecuted int                `json:"experiments_executed"`
	Experiments         []ExperimentResult `json:"experiments"`
	DeltasVsBaseline    []int              `json:"deltas_vs_baseline"`
	Deterministic       bool               `json:"deterministic"`
}

// runExperiment drives the consensus engine with every validator
// unanimously proposing the same fixed transaction set from tick zero, so
// the only variable across experiments is each config's own timing and
// threshold schedule.
func runExperiment(cfg config.ConsensusConfig, activeValidators int) ExperimentResult {
	agreed := consensus.NewTxSet(fixedAgreedHash())

	proposals := func(tick uint32) []*consensus.Proposal {
		out := make([]*consensus.Proposal, activeValidators)
		for i := 0; i < activeValidators; i++ {
			out[i] = &consensus.Proposal{
				Validator: consensus.ValidatorID(fmt.Sprintf("validator-%d", i)),
				RoundID:   1,
				Position:  agreed,
				Timestamp: tick,
			}
		}
		return out
	}

	state, err := consensus.RunRound(1, cfg, activeValidators, 0, 1000, proposals)
	return ExperimentResult{
		RoundsToAccept: int(state.TickCount),
		Stalled:        errors.Is(err, consensus.ErrConsensusStalled),
		FinalPhase:     state.Phase.String(),
		Deterministic:  true,
	}
}

func fixedAgreedHash() consensus.TxHash {
	var h consensus.TxHash
	h[0] = 0xAA
	h[1] = 0xBB
	return h
}

// RunExperimentMatrix executes every labeled config in order and reports
// each experiment's delta against the first (baseline) experiment
// (spec §4.F.3).
func RunExperimentMatrix(experiments []ExperimentConfig, activeValidators int) (MatrixResult, error) {
	if len(experiments) < 3 {
		return MatrixResult{}, ErrTooFewExperiments
	}
	seen := make(map[string]bool, len(experiments))
	for _, e := range experiments {
		if seen[e.Label] {
			return MatrixResult{}, fmt.Errorf("%w: %s", ErrDuplicateLabel, e.Label)
		}
		seen[e.Label] = true
	}

	results := make([]ExperimentResult, len(experiments))
	for i, e := range experiments {
		r := runExperiment(e.Consensus, activeValidators)
		r.Label = e.Label
		results[i] = r
	}

	baseline := results[0].RoundsToAccept
	deltas := make([]int, len(results))
	for i, r := range results {
		deltas[i] = r.RoundsToAccept - baseline
	}

	return MatrixResult{
		ExperimentsExecuted: len(results),
		Experiments:         results,
		DeltasVsBaseline:    deltas,
		Deterministic:       true,
	}, nil
}
