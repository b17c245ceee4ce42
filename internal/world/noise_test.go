package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash2Deterministic(t *testing.T) {
	first := hash2(10, 20, 42)
	for i := 0; i < 100; i++ {
		if h := hash2(10, 20, 42); h != first {
			t.Fatalf("hash2 not deterministic: %d != %d", h, first)
		}
	}
	if hash2(1, 2, 42) == hash2(2, 1, 42) {
		t.Errorf("hash2 should not be symmetric in x and z")
	}
	if hash2(1, 1, 100) == hash2(1, 1, 200) {
		t.Errorf("hash2 should depend on seed")
	}
}

func TestValueNoiseMatchesLatticeAtIntegers(t *testing.T) {
	for x := int64(-3); x <= 3; x++ {
		for z := int64(-3); z <= 3; z++ {
			got := valueNoise2D(float64(x), float64(z), 7)
			assert.InDelta(t, latticeValue(x, z, 7), got, 1e-12, "x=%d z=%d", x, z)
		}
	}
}

func TestGenerateHeightmap(t *testing.T) {
	p := DefaultNoiseParams(1234)
	a := GenerateHeightmap(32, 24, p)
	b := GenerateHeightmap(32, 24, p)

	assert.Equal(t, 32, a.Width)
	assert.Equal(t, 24, a.Depth)
	assert.Len(t, a.Heights, 32*24)
	assert.Equal(t, a.Heights, b.Heights, "same seed must reproduce the same terrain")

	lo, hi := a.Heights[0], a.Heights[0]
	for _, h := range a.Heights {
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
		lo, hi = min(lo, h), max(hi, h)
	}
	assert.Greater(t, hi-lo, float32(0.01), "terrain should not be flat")

	other := GenerateHeightmap(32, 24, DefaultNoiseParams(99))
	assert.NotEqual(t, a.Heights, other.Heights)
}

func TestOctaveNoiseZeroOctaves(t *testing.T) {
	assert.Equal(t, 0.0, octaveNoise2D(1.5, 2.5, 1, 0, 0.5, 2))
}
