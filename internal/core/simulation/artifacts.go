package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeJSON encodes v as a single pretty-printed JSON document, grounded on
// the rubin-protocol formal-trace CLI's writeJSON helper (disable HTML
// escaping so account/hash hex strings round-trip unmangled).
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simulation: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("simulation: encode %s: %w", path, err)
	}
	return nil
}

// writeNDJSON emits one compact JSON object per line, grounded on the same
// formal-trace CLI's line-delimited entry stream.
func writeNDJSON[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simulation: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("simulation: encode %s: %w", path, err)
		}
	}
	return nil
}

// WriteLocalClusterArtifacts writes simulation-summary.json, round-
// events.ndjson and round-summary.ndjson into dir (spec §4.F.1).
func WriteLocalClusterArtifacts(dir string, result LocalClusterResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("simulation: mkdir %s: %w", dir, err)
	}
	if err := writeJSON(filepath.Join(dir, "simulation-summary.json"), result); err != nil {
		return err
	}
	if err := writeNDJSON(filepath.Join(dir, "round-events.ndjson"), result.Events); err != nil {
		return err
	}
	return writeNDJSON(filepath.Join(dir, "round-summary.ndjson"), result.RoundSummaries)
}

// WriteQueuePressureArtifacts writes queue-pressure-summary.json and
// queue-pressure-diagnostics.json into dir (spec §4.F.2).
func WriteQueuePressureArtifacts(dir string, result QueuePressureResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("simulation: mkdir %s: %w", dir, err)
	}
	if err := writeJSON(filepath.Join(dir, "queue-pressure-summary.json"), result); err != nil {
		return err
	}
	return writeNDJSON(filepath.Join(dir, "queue-pressure-diagnostics.json"), result.Diagnostics)
}

// WriteMatrixArtifacts writes matrix-summary.json into dir (spec §4.F.3).
func WriteMatrixArtifacts(dir string, result MatrixResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("simulation: mkdir %s: %w", dir, err)
	}
	return writeJSON(filepath.Join(dir, "matrix-summary.json"), result)
}
