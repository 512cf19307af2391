package simulation

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	return n
}

func TestWriteLocalClusterArtifacts_WritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	result := RunLocalCluster("xrpl-agent-lab-v1", 3, 5)

	require.NoError(t, WriteLocalClusterArtifacts(dir, result))

	summaryBytes, err := os.ReadFile(filepath.Join(dir, "simulation-summary.json"))
	require.NoError(t, err)
	var decoded LocalClusterResult
	require.NoError(t, json.Unmarshal(summaryBytes, &decoded))
	assert.Equal(t, result.Seed, decoded.Seed)
	assert.Equal(t, result.LatestLedgerSeq, decoded.LatestLedgerSeq)

	assert.Equal(t, len(result.Events), countLines(t, filepath.Join(dir, "round-events.ndjson")))
	assert.Equal(t, len(result.RoundSummaries), countLines(t, filepath.Join(dir, "round-summary.ndjson")))
}

func TestWriteQueuePressureArtifacts_WritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := QueuePressureConfig{Capacity: 50, DrainRate: 10, BurstSize: 8, RetryPenaltyMs: 5, Envelope: looseEnvelope()}
	result := RunQueuePressure("xrpl-agent-lab-v1", 10, cfg)

	require.NoError(t, WriteQueuePressureArtifacts(dir, result))

	_, err := os.Stat(filepath.Join(dir, "queue-pressure-summary.json"))
	require.NoError(t, err)
	assert.Equal(t, len(result.Diagnostics), countLines(t, filepath.Join(dir, "queue-pressure-diagnostics.json")))
}

func TestWriteMatrixArtifacts_WritesSummary(t *testing.T) {
	dir := t.TempDir()
	result, err := RunExperimentMatrix(threeExperimentManifest(), 4)
	require.NoError(t, err)

	require.NoError(t, WriteMatrixArtifacts(dir, result))

	b, err := os.ReadFile(filepath.Join(dir, "matrix-summary.json"))
	require.NoError(t, err)
	var decoded MatrixResult
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, result.ExperimentsExecuted, decoded.ExperimentsExecuted)
}
