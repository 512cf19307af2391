package gate

import (
	"testing"

	"github.com/goxrpld/lab/internal/core/simulation"
	"github.com/stretchr/testify/assert"
)

func TestLocalClusterCheck_PassesAboveFloor(t *testing.T) {
	result := simulation.RunLocalCluster("xrpl-agent-lab-v1", 5, 20)
	check := LocalClusterCheck(result, 0)()
	assert.True(t, check.Pass, check.Reason)
}

func TestLocalClusterCheck_FailsWhenNotDeterministic(t *testing.T) {
	result := simulation.RunLocalCluster("xrpl-agent-lab-v1", 5, 20)
	result.Deterministic = false
	check := LocalClusterCheck(result, 0)()
	assert.False(t, check.Pass)
}

func TestLocalClusterCheck_FailsBelowFloor(t *testing.T) {
	result := simulation.RunLocalCluster("xrpl-agent-lab-v1", 5, 20)
	check := LocalClusterCheck(result, 101)()
	assert.False(t, check.Pass)
}

func TestQueuePressureCheck_PassesUnderLooseEnvelope(t *testing.T) {
	cfg := simulation.QueuePressureConfig{
		Capacity: 200, DrainRate: 50, BurstSize: 8, RetryPenaltyMs: 5,
		Envelope: simulation.QueuePressureEnvelope{MaxDropRatePct: 100, MaxPeakQueueDepth: 1_000_000, MaxAvgLatencyMs: 1_000_000},
	}
	result := simulation.RunQueuePressure("xrpl-agent-lab-v1", 20, cfg)
	check := QueuePressureCheck(result)()
	assert.True(t, check.Pass, check.Reason)
}

func TestQueuePressureCheck_FailsUnderTightEnvelope(t *testing.T) {
	cfg := simulation.QueuePressureConfig{
		Capacity: 50, DrainRate: 10, BurstSize: 8, RetryPenaltyMs: 5,
		Envelope: simulation.QueuePressureEnvelope{MaxDropRatePct: 0, MaxPeakQueueDepth: 1, MaxAvgLatencyMs: 1},
	}
	result := simulation.RunQueuePressure("xrpl-agent-lab-v1", 20, cfg)
	check := QueuePressureCheck(result)()
	assert.False(t, check.Pass)
}

func TestExperimentMatrixCheck_FailsBelowFloor(t *testing.T) {
	matrix := simulation.MatrixResult{Deterministic: true, ExperimentsExecuted: 2, DeltasVsBaseline: []int{0, 1}}
	check := ExperimentMatrixCheck(matrix, 3)()
	assert.False(t, check.Pass)
}

func TestExperimentMatrixCheck_PassesWhenBaselineDeltaZero(t *testing.T) {
	matrix := simulation.MatrixResult{Deterministic: true, ExperimentsExecuted: 3, DeltasVsBaseline: []int{0, 2, 5}}
	check := ExperimentMatrixCheck(matrix, 3)()
	assert.True(t, check.Pass, check.Reason)
}
