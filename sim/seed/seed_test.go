package seed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want Seed
	}{
		{"zero", 0, 0},
		{"identity on valid seed", 42, 42},
		{"truncates fraction", 3.7, 3},
		{"reflects negative", -3.7, 3},
		{"max seed", 4294967295, MaxSeed},
		{"wraps at 2^32", 4294967296, 0},
		{"wraps beyond 2^32", 4294967301, 5},
		// MaxFloat64 = (2^53-1) * 2^971, which is divisible by 2^32.
		{"huge magnitude", math.MaxFloat64, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_AlwaysInRange(t *testing.T) {
	values := []float64{-1e18, -4294967296.5, -1, -0.1, 0, 0.9, 42, 4294967295.99, 1e12, 1e300}
	for _, v := range values {
		s := Normalize(v)
		assert.LessOrEqual(t, s, MaxSeed, "Normalize(%v) out of range", v)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, v := range []float64{0, 1, 42, 4294967295} {
		once := Normalize(v)
		assert.Equal(t, once, Normalize(float64(once)))
	}
}
