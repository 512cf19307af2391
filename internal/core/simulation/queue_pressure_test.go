package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func looseEnvelope() QueuePressureEnvelope {
	return QueuePressureEnvelope{
		MaxDropRatePct:    100,
		MaxPeakQueueDepth: 1_000_000,
		MaxAvgLatencyMs:   1_000_000,
	}
}

func tightEnvelope() QueuePressureEnvelope {
	return QueuePressureEnvelope{
		MaxDropRatePct:    0,
		MaxPeakQueueDepth: 1,
		MaxAvgLatencyMs:   1,
	}
}

func TestRunQueuePressure_Deterministic(t *testing.T) {
	cfg := QueuePressureConfig{Capacity: 50, DrainRate: 10, BurstSize: 8, RetryPenaltyMs: 5, Envelope: looseEnvelope()}
	a := RunQueuePressure("xrpl-agent-lab-v1", 30, cfg)
	b := RunQueuePressure("xrpl-agent-lab-v1", 30, cfg)
	assert.Equal(t, a, b)
}

func TestRunQueuePressure_PassesUnderLooseEnvelope(t *testing.T) {
	cfg := QueuePressureConfig{Capacity: 200, DrainRate: 50, BurstSize: 8, RetryPenaltyMs: 5, Envelope: looseEnvelope()}
	result := RunQueuePressure("xrpl-agent-lab-v1", 20, cfg)
	assert.Equal(t, "pass", result.Status)
	assert.True(t, result.Deterministic)
	assert.Empty(t, result.RootCauseMetric)
}

func TestRunQueuePressure_FailsUnderTightEnvelopeWithRootCause(t *testing.T) {
	cfg := QueuePressureConfig{Capacity: 50, DrainRate: 10, BurstSize: 8, RetryPenaltyMs: 5, Envelope: tightEnvelope()}
	result := RunQueuePressure("xrpl-agent-lab-v1", 20, cfg)
	assert.Equal(t, "fail", result.Status)
	assert.NotEmpty(t, result.RootCauseMetric)
}

func TestRunQueuePressure_DiagnosticsCoverEveryRound(t *testing.T) {
	cfg := QueuePressureConfig{Capacity: 50, DrainRate: 10, BurstSize: 8, RetryPenaltyMs: 5, Envelope: looseEnvelope()}
	result := RunQueuePressure("xrpl-agent-lab-v1", 12, cfg)
	require.Len(t, result.Diagnostics, 12)
	for i, d := range result.Diagnostics {
		assert.Equal(t, i, d.Round)
		assert.Equal(t, d.Admitted+d.Dropped, d.Arrivals)
	}
}

func TestRunQueuePressure_ZeroRounds(t *testing.T) {
	cfg := QueuePressureConfig{Capacity: 50, DrainRate: 10, BurstSize: 8, RetryPenaltyMs: 5, Envelope: looseEnvelope()}
	result := RunQueuePressure("seed", 0, cfg)
	assert.Equal(t, 0, result.DropRatePct)
	assert.Equal(t, 0, result.AvgLatencyMs)
	assert.Empty(t, result.Diagnostics)
}
