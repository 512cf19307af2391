package gate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goxrpld/lab/internal/core/simulation"
)

// Manifest is the pinned evidence declaration a gate run checks artifacts
// against (spec.md §6: "Scenario manifests declare schema_version,
// manifest_type, and per-scenario thresholds").
type Manifest struct {
	SchemaVersion int    `json:"schema_version"`
	ManifestType  string `json:"manifest_type"`

	FixtureDir     string            `json:"fixture_dir"`
	FixtureSHAPins map[string]string `json:"fixture_sha_pins"`

	MinLocalClusterSuccessRatePct int `json:"min_local_cluster_success_rate_pct"`
	MinExperimentCount            int `json:"min_experiment_count"`

	QueuePressure simulation.QueuePressureConfig `json:"queue_pressure"`

	StrictCrypto bool `json:"strict_crypto"`
}

// LoadManifest reads and decodes a gate manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gate: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("gate: decode manifest %s: %w", path, err)
	}
	return &m, nil
}
