// Package testutil provides shared test infrastructure for the seed module.
// It loads the pinned derivation fixtures from testdata/golden_seeds.json,
// which record expected derived values for every golden seed so regressions
// in the derivation algorithms are caught bit-for-bit.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenSeeds represents the structure of testdata/golden_seeds.json.
type GoldenSeeds struct {
	Derivations   []GoldenDerivation   `json:"derivations"`
	SubSeedChains []GoldenSubSeedChain `json:"subseed_chains"`
}

// GoldenDerivation pins one (parent, path) derivation to its expected value.
type GoldenDerivation struct {
	GoldenName string `json:"golden_name"`
	Parent     uint32 `json:"parent"`
	Path       string `json:"path"`
	Derived    uint32 `json:"derived"`
}

// GoldenSubSeedChain pins one xorshift32 sub-seed chain.
type GoldenSubSeedChain struct {
	Primary uint32   `json:"primary"`
	Count   int      `json:"count"`
	Seeds   []uint32 `json:"seeds"`
}

// LoadGoldenSeeds loads the golden fixtures from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenSeeds(t *testing.T) *GoldenSeeds {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_seeds.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden seed fixtures: %v", err)
	}

	var fixtures GoldenSeeds
	if err := json.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("Failed to parse golden seed fixtures: %v", err)
	}

	return &fixtures
}
