package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubSource replays a scripted value sequence, cycling at the end. Lets the
// tests exercise rejection sampling without touching real entropy.
type stubSource struct {
	values []uint32
	next   int
	flag   bool
}

func (s *stubSource) uint32() uint32 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *stubSource) secure() bool { return s.flag }

func TestGenerator_GenerateInRange(t *testing.T) {
	gen := NewGenerator()
	for i := 0; i < 1000; i++ {
		s := gen.Generate()
		// Seed is uint32, so the range invariant holds by construction; this
		// pins the type rather than re-proving arithmetic.
		assert.LessOrEqual(t, s, MaxSeed)
	}
}

func TestGenerator_SecureByDefault(t *testing.T) {
	// crypto/rand is available everywhere the test suite runs.
	assert.True(t, NewGenerator().Secure())
}

func TestGenerator_FallbackIsFlagged(t *testing.T) {
	gen := newGeneratorFromSource(&stubSource{values: []uint32{1}, flag: false})
	assert.False(t, gen.Secure())

	secureGen := newGeneratorFromSource(&stubSource{values: []uint32{1}, flag: true})
	assert.True(t, secureGen.Secure())
}

func TestGenerateSeeds_PairwiseDistinct(t *testing.T) {
	gen := NewGenerator()
	seeds, err := gen.GenerateSeeds(100)
	assert.NoError(t, err)
	assert.Len(t, seeds, 100)

	seen := make(map[Seed]struct{}, len(seeds))
	for _, s := range seeds {
		_, dup := seen[s]
		assert.False(t, dup, "seed %d returned twice", s)
		seen[s] = struct{}{}
	}
}

func TestGenerateSeeds_RejectionSamplesDuplicates(t *testing.T) {
	// The source repeats 7 before yielding new values; the generator must
	// keep drawing until it has 3 distinct seeds.
	gen := newGeneratorFromSource(&stubSource{values: []uint32{7, 7, 7, 8, 8, 9}, flag: true})
	seeds, err := gen.GenerateSeeds(3)
	assert.NoError(t, err)
	assert.Equal(t, []Seed{7, 8, 9}, seeds)
}

func TestGenerateSeeds_InvalidCount(t *testing.T) {
	gen := NewGenerator()
	for _, count := range []int{0, -5, MaxSeedsPerRun + 1, 1000} {
		_, err := gen.GenerateSeeds(count)
		assert.ErrorIs(t, err, ErrInvalidCount, "count %d", count)
	}
}

func TestGenerateSeeds_BoundaryCounts(t *testing.T) {
	gen := NewGenerator()

	one, err := gen.GenerateSeeds(1)
	assert.NoError(t, err)
	assert.Len(t, one, 1)

	full, err := gen.GenerateSeeds(MaxSeedsPerRun)
	assert.NoError(t, err)
	assert.Len(t, full, MaxSeedsPerRun)
}
