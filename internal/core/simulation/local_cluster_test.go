package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLocalCluster_Deterministic(t *testing.T) {
	a := RunLocalCluster("xrpl-agent-lab-v1", 5, 20)
	b := RunLocalCluster("xrpl-agent-lab-v1", 5, 20)
	assert.Equal(t, a, b)
}

func TestRunLocalCluster_DifferentSeedsDiverge(t *testing.T) {
	a := RunLocalCluster("seed-one", 5, 20)
	b := RunLocalCluster("seed-two", 5, 20)
	assert.NotEqual(t, a.Events, b.Events)
}

func TestRunLocalCluster_EventCountsAndOrdering(t *testing.T) {
	result := RunLocalCluster("xrpl-agent-lab-v1", 3, 4)
	require.Len(t, result.Events, 3*4)
	require.Len(t, result.RoundSummaries, 4)

	for i, ev := range result.Events {
		wantRound := i / 3
		wantNode := i % 3
		assert.Equal(t, wantRound, ev.Round)
		assert.Equal(t, wantNode, ev.Node)
	}
}

func TestRunLocalCluster_LatestLedgerSeqAndDeterministicFlag(t *testing.T) {
	result := RunLocalCluster("xrpl-agent-lab-v1", 5, 20)
	assert.Equal(t, localClusterGenesisSeq+20, result.LatestLedgerSeq)
	assert.True(t, result.Deterministic)
	assert.GreaterOrEqual(t, result.SuccessRate, 0)
	assert.LessOrEqual(t, result.SuccessRate, 100)
}

func TestRunLocalCluster_ZeroRounds(t *testing.T) {
	result := RunLocalCluster("seed", 3, 0)
	assert.Equal(t, 0, result.SuccessRate)
	assert.Empty(t, result.Events)
	assert.Empty(t, result.RoundSummaries)
}
