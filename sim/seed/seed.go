// Package seed manages the seed material behind every random stream in an
// agentverse simulation run.
//
// The platform's central correctness invariant — same RunConfig + seed +
// versions produces the same aggregated outcome — holds only if every random
// draw inside a run is traceable to a reproducible, domain-isolated stream.
// This package owns that seed material: it validates run seeds, mints fresh
// root seeds, and derives per-domain / per-agent / per-tick sub-seeds on
// demand. Derived seeds are never stored; replay and audit recompute them
// from the parent seed and derivation path.
//
// The package does not generate random numbers. Variate generation belongs
// to the engine, which seeds its own generators from values produced here.
package seed

import (
	"math"
)

// === Seed ===

// Seed is a normalized 32-bit seed value in [0, MaxSeed].
// All seeds in the system — user-supplied, minted, or derived — are
// normalized to this range before use.
type Seed uint32

// MaxSeed is the largest representable seed value (2^32 - 1).
const MaxSeed Seed = math.MaxUint32

// MaxSeedsPerRun bounds the additional-seed set attached to a single run.
const MaxSeedsPerRun = 100

// seedSpace is the modulus for normalization (MaxSeed + 1).
const seedSpace = uint64(MaxSeed) + 1

// Normalize maps an arbitrary finite float to the canonical seed range via
// floor(abs(raw)) mod 2^32. The mapping is the same one applied by
// ValidateSeed, so normalizing an already-valid seed is a no-op.
func Normalize(raw float64) Seed {
	truncated := math.Floor(math.Abs(raw))
	// math.Mod keeps full precision for magnitudes beyond uint64 range.
	return Seed(uint64(math.Mod(truncated, float64(seedSpace))) % seedSpace)
}

// SeedConfig is the seed material attached to a single run: one primary seed
// plus an optional ordered set of additional seeds (ensemble/backtest runs
// derive one sub-universe per additional seed).
type SeedConfig struct {
	Primary    Seed
	Additional []Seed
}
