// Package simulation implements the deterministic simulation harness:
// local cluster, queue-pressure, and consensus experiment matrix scenarios,
// all pure functions of (seed, config) (spec §4.F).
//
// Grounded in the teacher's consensus/csf simulation framework's seeded-rng
// pattern (github.com/goxrpld/lab's ancestor used math/rand seeded once per
// run); this package instead derives per-(round, node) entropy directly
// from sha512_half so that entropy never depends on call order, only on
// the declared seed, round, and node — required by spec §4.F's byte-for-
// byte reproducibility invariant.
package simulation

import (
	"encoding/binary"
	"fmt"

	"github.com/goxrpld/lab/internal/core/ledger"
)

// entropy derives a 256-bit hash H(seed‖r‖n) and returns its first 32 bits
// as an unsigned integer v (spec §4.F.1). The textual encoding
// "seed|r|n" is this implementation's canonical choice for the otherwise
// unspecified concatenation (see DESIGN.md).
func entropy(seed string, round, node int) uint32 {
	input := fmt.Sprintf("%s|%d|%d", seed, round, node)
	h := ledger.Sha512Half([]byte(input))
	return binary.BigEndian.Uint32(h[:4])
}
