package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

func TestNewUnknownKind(t *testing.T) {
	_, err := New("nonexistent", 100, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownKind))
}

func TestNewInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		kind string
		n    int
		args Args
	}{
		{name: "ZeroPoints", kind: KindSinc, n: 0, args: nil},
		{name: "NegativePoints", kind: KindRampUp, n: -3, args: nil},
		{name: "ZeroSigma", kind: KindGaussian, n: 100, args: Args{"sigma": 0}},
		{name: "ZeroTransition", kind: KindFermi, n: 100, args: Args{"transition": 0}},
		{name: "NonPositiveT2Star", kind: KindFID, n: 100, args: Args{"t2_star": 0}},
		{name: "NonPositiveT1", kind: KindSTIR, n: 100, args: Args{"t1": -5}},
		{name: "NegativePulseCount", kind: KindDante, n: 100, args: Args{"num_pulses": -1}},
		{name: "NegativeFraction", kind: KindTrapezoid, n: 100, args: Args{"rise_fraction": -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.kind, tt.n, tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))
		})
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 26)
	assert.True(t, IsKind(KindSinc))
	assert.False(t, IsKind("square-wave"))

	// Sorted and unique.
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1], kinds[i])
	}
}

// TestLengthInvariant verifies len(Generate()) == numPoints for every kind
// across a spread of sample counts, including the single-sample edge.
func TestLengthInvariant(t *testing.T) {
	for _, kind := range Kinds() {
		for _, n := range []int{1, 2, 5, 100, 257} {
			gen, err := New(kind, n, nil)
			require.NoError(t, err, "kind %s n=%d", kind, n)
			assert.Len(t, gen.Generate(), n, "kind %s n=%d", kind, n)
		}
	}
}

// TestOutputFinite verifies no NaN or Inf leaks for default parameters.
func TestOutputFinite(t *testing.T) {
	for _, kind := range Kinds() {
		gen, err := New(kind, 100, nil)
		require.NoError(t, err, "kind %s", kind)
		for i, v := range gen.Generate() {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "kind %s sample %d = %v", kind, i, v)
		}
	}
}

// TestNormalizationRange verifies every kind except bipolar spans exactly
// [-1, 1] for default, non-degenerate parameters.
func TestNormalizationRange(t *testing.T) {
	for _, kind := range Kinds() {
		if kind == KindBipolar {
			continue
		}
		gen, err := New(kind, 100, nil)
		require.NoError(t, err, "kind %s", kind)

		samples := gen.Generate()
		lo, hi := samples[0], samples[0]
		for _, v := range samples {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		assert.InDelta(t, -1, lo, 1e-12, "kind %s min", kind)
		assert.InDelta(t, 1, hi, 1e-12, "kind %s max", kind)
	}
}

// TestDeterminism verifies that two instances built from identical
// (kind, args) produce bit-for-bit identical sequences.
func TestDeterminism(t *testing.T) {
	args := Args{"bandwidth": 6, "sigma": 0.4, "num_pulses": 9}
	for _, kind := range Kinds() {
		a, err := New(kind, 128, args)
		require.NoError(t, err)
		b, err := New(kind, 128, args)
		require.NoError(t, err)
		assert.Equal(t, a.Generate(), b.Generate(), "kind %s", kind)
	}
}

// TestMemoization verifies repeated Generate calls return the same slice
// without recomputation.
func TestMemoization(t *testing.T) {
	gen, err := New(KindSinc, 64, nil)
	require.NoError(t, err)

	first := gen.Generate()
	second := gen.Generate()
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0])
}

func TestArgsDefaults(t *testing.T) {
	a := Args{"bandwidth": 2.5, "num_pulses": 7}
	assert.Equal(t, 2.5, a.Float("bandwidth", 4))
	assert.Equal(t, 4.0, a.Float("missing", 4))
	assert.Equal(t, 7, a.Int("num_pulses", 12))
	assert.Equal(t, 12, a.Int("missing", 12))

	var nilArgs Args
	assert.Equal(t, 1.0, nilArgs.Float("anything", 1))
}
