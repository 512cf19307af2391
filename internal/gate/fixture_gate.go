package gate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ComputeFixtureDigests computes the SHA-256 of every regular file directly
// under dir, keyed by file name (spec.md §6: "Fixture manifests: SHA-256
// over sorted files").
func ComputeFixtureDigests(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("gate: read fixture dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	digests := make(map[string]string, len(names))
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("gate: read fixture %s: %w", name, err)
		}
		sum := sha256.Sum256(b)
		digests[name] = hex.EncodeToString(sum[:])
	}
	return digests, nil
}

// FixtureSHACheck recomputes every fixture's SHA-256 and compares it
// against the pinned manifest; any mismatch or missing file is a hard fail
// (spec.md §4.H, §6).
func FixtureSHACheck(dir string, pinned map[string]string) Checker {
	return func() CheckResult {
		computed, err := ComputeFixtureDigests(dir)
		if err != nil {
			return CheckResult{Name: "fixture_sha", Pass: false, Reason: err.Error()}
		}

		names := make([]string, 0, len(pinned))
		for name := range pinned {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			want := pinned[name]
			got, ok := computed[name]
			if !ok {
				return CheckResult{Name: "fixture_sha", Pass: false, Reason: fmt.Sprintf("fixture %q missing", name)}
			}
			if got != want {
				return CheckResult{Name: "fixture_sha", Pass: false, Reason: fmt.Sprintf("fixture %q sha mismatch", name)}
			}
		}
		return CheckResult{Name: "fixture_sha", Pass: true}
	}
}
