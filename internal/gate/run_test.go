package gate

import (
	"testing"

	"github.com/goxrpld/lab/internal/config"
	"github.com/goxrpld/lab/internal/core/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineConsensusConfig() config.ConsensusConfig {
	return config.ConsensusConfig{
		FinalThreshold: 0.80, OpenPhaseTicks: 2, OpenPhaseMs: 2000,
		EstablishPhaseTicks: 4, ConsensusRoundTicks: 1, MaxIterations: 20,
	}
}

func threeExperiments() []simulation.ExperimentConfig {
	base := baselineConsensusConfig()
	fast := base
	fast.ConsensusRoundTicks = 3
	slow := base
	slow.EstablishPhaseTicks = 8
	return []simulation.ExperimentConfig{
		{Label: "baseline", Consensus: base},
		{Label: "fast_threshold", Consensus: fast},
		{Label: "slow_establish", Consensus: slow},
	}
}

func TestRunFromManifest_PassesUnderLooseManifest(t *testing.T) {
	manifest := &Manifest{
		SchemaVersion: 1,
		ManifestType:  "simulation_envelope",
		QueuePressure: simulation.QueuePressureConfig{
			Capacity: 500, DrainRate: 200, BurstSize: 8, RetryPenaltyMs: 5,
			Envelope: simulation.QueuePressureEnvelope{MaxDropRatePct: 100, MaxPeakQueueDepth: 1_000_000, MaxAvgLatencyMs: 1_000_000},
		},
		MinExperimentCount: 3,
	}
	simCfg := config.SimulationConfig{Seed: "xrpl-agent-lab-v1", Nodes: 5, Rounds: 20}

	report := RunFromManifest(manifest, simCfg, threeExperiments())
	assert.True(t, report.Pass, report.Reason)
	assert.Equal(t, 0, report.ExitCode())
}

func TestRunFromManifest_FailsUnderTightManifest(t *testing.T) {
	manifest := &Manifest{
		SchemaVersion:                 1,
		ManifestType:                  "simulation_envelope",
		MinLocalClusterSuccessRatePct: 101,
		QueuePressure: simulation.QueuePressureConfig{
			Capacity: 500, DrainRate: 200, BurstSize: 8, RetryPenaltyMs: 5,
			Envelope: simulation.QueuePressureEnvelope{MaxDropRatePct: 100, MaxPeakQueueDepth: 1_000_000, MaxAvgLatencyMs: 1_000_000},
		},
	}
	simCfg := config.SimulationConfig{Seed: "xrpl-agent-lab-v1", Nodes: 5, Rounds: 20}

	report := RunFromManifest(manifest, simCfg, nil)
	require.False(t, report.Pass)
	assert.Contains(t, report.Reason, "local_cluster_envelope")
}
