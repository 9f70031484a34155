package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// === Entropy sources ===

// entropySource yields raw 32-bit values for minting root seeds. Two
// implementations exist: the OS CSPRNG and a time-seeded pseudo-random
// fallback. The choice is made once at generator construction.
type entropySource interface {
	uint32() uint32
	secure() bool
}

// secureSource reads from crypto/rand.
type secureSource struct{}

func (secureSource) uint32() uint32 {
	var buf [4]byte
	// crypto/rand.Read never fails on supported platforms (it blocks or
	// panics instead); availability was probed at construction.
	if _, err := crand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("secure entropy source failed after successful probe: %v", err))
	}
	return binary.BigEndian.Uint32(buf[:])
}

func (secureSource) secure() bool { return true }

// fallbackSource is a time-seeded math/rand stream. It weakens the
// unpredictability of freshly minted root seeds, never the reproducibility
// of an already-chosen seed, so it is acceptable but must be visible to
// callers.
type fallbackSource struct {
	rng *mrand.Rand
}

func newFallbackSource() *fallbackSource {
	return &fallbackSource{rng: mrand.New(mrand.NewSource(time.Now().UnixNano()))}
}

func (f *fallbackSource) uint32() uint32 { return f.rng.Uint32() }
func (f *fallbackSource) secure() bool   { return false }

// === Generator ===

// Generator mints fresh root seeds. It prefers the OS CSPRNG and degrades to
// a pseudo-random fallback when no secure source is available; Secure()
// exposes which path was taken so callers (and audit records) can flag
// fallback-minted seeds.
type Generator struct {
	src entropySource
}

// NewGenerator builds a Generator, probing crypto/rand once and selecting
// the fallback source if the probe fails. Fallback selection is logged at
// warn level because it is an operational signal, not an error.
func NewGenerator() *Generator {
	var probe [4]byte
	if _, err := crand.Read(probe[:]); err != nil {
		logrus.Warnf("secure entropy source unavailable (%v); minting seeds from time-seeded fallback", err)
		return &Generator{src: newFallbackSource()}
	}
	return &Generator{src: secureSource{}}
}

// newGeneratorFromSource is the test seam for forcing a specific source.
func newGeneratorFromSource(src entropySource) *Generator {
	return &Generator{src: src}
}

// Secure reports whether seeds are minted from a cryptographically secure
// source. False means the fallback path is active.
func (g *Generator) Secure() bool {
	return g.src.secure()
}

// Generate mints one fresh root seed.
func (g *Generator) Generate() Seed {
	return Seed(g.src.uint32())
}

// GenerateSeeds mints count pairwise-distinct root seeds by rejection
// sampling: draws repeat until the set is full, so the result is distinct by
// construction. With count capped at MaxSeedsPerRun against a 2^32 space,
// rejections are vanishingly rare.
//
// Returns ErrInvalidCount if count is outside [1, MaxSeedsPerRun].
func (g *Generator) GenerateSeeds(count int) ([]Seed, error) {
	if count < 1 || count > MaxSeedsPerRun {
		return nil, fmt.Errorf("%w: generation count must be in [1, %d], got %d", ErrInvalidCount, MaxSeedsPerRun, count)
	}
	seen := make(map[Seed]struct{}, count)
	out := make([]Seed, 0, count)
	for len(out) < count {
		s := g.Generate()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
