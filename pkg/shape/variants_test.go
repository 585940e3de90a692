package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangularFivePoints(t *testing.T) {
	gen, err := NewRectangular(5)
	require.NoError(t, err)

	// Raw [0,1,1,1,0] rescales to [-1,1,1,1,-1].
	want := []float64{-1, 1, 1, 1, -1}
	got := gen.Generate()
	require.Len(t, got, 5)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "index %d", i)
	}
}

func TestSincCenterPeak(t *testing.T) {
	// Odd point count places a sample exactly at t=0, where the zero guard
	// must yield the pre-window peak of 1.0 rather than NaN.
	for _, kind := range []string{KindSinc, KindHammingSinc} {
		gen, err := New(kind, 101, nil)
		require.NoError(t, err)

		samples := gen.Generate()
		center := samples[50]
		assert.False(t, math.IsNaN(center), "kind %s", kind)
		assert.InDelta(t, 1.0, center, 1e-12, "kind %s center is the normalized max", kind)
	}
}

func TestTriggerWindow(t *testing.T) {
	gen, err := NewTrigger(20)
	require.NoError(t, err)

	samples := gen.Generate()
	require.Len(t, samples, 20)

	// Exactly 10 samples centered at index 10 sit at the normalized maximum.
	for i, v := range samples {
		if i >= 5 && i < 15 {
			assert.InDelta(t, 1, v, 1e-12, "index %d", i)
		} else {
			assert.InDelta(t, -1, v, 1e-12, "index %d", i)
		}
	}
}

func TestTriggerClippedAtBounds(t *testing.T) {
	// Shorter than the pulse window: the pulse clips instead of wrapping.
	gen, err := NewTrigger(6)
	require.NoError(t, err)
	assert.Len(t, gen.Generate(), 6)
}

func TestFlagSingleSample(t *testing.T) {
	gen, err := NewFlag(9)
	require.NoError(t, err)

	samples := gen.Generate()
	for i, v := range samples {
		if i == 4 {
			assert.InDelta(t, 1, v, 1e-12)
		} else {
			assert.InDelta(t, -1, v, 1e-12)
		}
	}
}

func TestRampUpFourPoints(t *testing.T) {
	gen, err := NewRampUp(4)
	require.NoError(t, err)

	want := []float64{-1, -1.0 / 3, 1.0 / 3, 1}
	got := gen.Generate()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "index %d", i)
	}
}

func TestRampDownIsMirroredRampUp(t *testing.T) {
	up, err := NewRampUp(50)
	require.NoError(t, err)
	down, err := NewRampDown(50)
	require.NoError(t, err)

	u, d := up.Generate(), down.Generate()
	for i := range u {
		assert.InDelta(t, u[i], d[len(d)-1-i], 1e-12)
	}
}

func TestBipolarUnnormalized(t *testing.T) {
	gen, err := NewBipolar(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, -1, -1}, gen.Generate())

	// Odd count: the extra sample lands in the negative half.
	gen, err = NewBipolar(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, -1, -1, -1}, gen.Generate())
}

func TestTrapezoidSegments(t *testing.T) {
	tests := []struct {
		name                    string
		n                       int
		rise, plateau, fall     float64
		wantRise, wantPl, wantF int
	}{
		{name: "Nominal", n: 10, rise: 0.2, plateau: 0.6, fall: 0.2, wantRise: 2, wantPl: 6, wantF: 2},
		{name: "OverfullRescaled", n: 10, rise: 0.5, plateau: 0.5, fall: 0.5, wantRise: 3, wantPl: 3, wantF: 4},
		{name: "ZeroFractions", n: 10, rise: 0, plateau: 0, fall: 0, wantRise: 0, wantPl: 0, wantF: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewTrapezoid(tt.n, tt.rise, tt.plateau, tt.fall)
			require.NoError(t, err)

			rise, plateau, fall := gen.Segments()
			assert.Equal(t, tt.wantRise, rise)
			assert.Equal(t, tt.wantPl, plateau)
			assert.Equal(t, tt.wantF, fall)
			assert.LessOrEqual(t, rise+plateau+fall, tt.n)
			assert.Len(t, gen.Generate(), tt.n)
		})
	}
}

func TestTrapezoidPlateauValues(t *testing.T) {
	gen, err := NewTrapezoid(10, 0.2, 0.6, 0.2)
	require.NoError(t, err)

	samples := gen.Generate()
	// Plateau samples sit at the normalized maximum.
	for i := 2; i < 8; i++ {
		assert.InDelta(t, 1, samples[i], 1e-12, "index %d", i)
	}
	assert.InDelta(t, -1, samples[0], 1e-12)
	assert.InDelta(t, -1, samples[9], 1e-12)
}

func TestTrapezoidDegenerate(t *testing.T) {
	// All-zero fractions give a constant raw lobe, which normalizes to zeros.
	gen, err := NewTrapezoid(8, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), gen.Generate())
}

func TestDantePulseTrain(t *testing.T) {
	gen, err := NewDante(1000, 12, 0.08, 0.32)
	require.NoError(t, err)

	samples := gen.Generate()
	require.Len(t, samples, 1000)

	// Count maximal runs above the baseline; the 12 pulses are narrower than
	// their spacing so they must not merge.
	const baseline = -1
	runs := 0
	inRun := false
	for _, v := range samples {
		above := v > baseline+1e-9
		if above && !inRun {
			runs++
		}
		inRun = above
	}
	assert.Equal(t, 12, runs)
}

func TestDanteAmplitudeRippleDeterministic(t *testing.T) {
	a, err := NewDante(1000, 12, 0.08, 0.32)
	require.NoError(t, err)
	b, err := NewDante(1000, 12, 0.08, 0.32)
	require.NoError(t, err)
	assert.Equal(t, a.Generate(), b.Generate())
}

func TestDanteZeroPulses(t *testing.T) {
	gen, err := NewDante(100, 0, 0.08, 0.32)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 100), gen.Generate())
}

func TestHyperbolicSecantAntisymmetry(t *testing.T) {
	gen, err := NewHyperbolicSecant(101, DefaultHSBeta, DefaultHSMu)
	require.NoError(t, err)

	samples := gen.Generate()
	// sech*tanh is odd in t, so the normalized curve crosses zero at center.
	assert.InDelta(t, 0, samples[50], 1e-9)
}

func TestFIDStartsAtPeakPhaseZero(t *testing.T) {
	gen, err := NewFID(200, 50, 100, 0)
	require.NoError(t, err)

	samples := gen.Generate()
	// At t=0 with zero phase the raw signal is at its global maximum.
	assert.InDelta(t, 1, samples[0], 1e-12)
}

func TestEchoPeaksAtEchoTime(t *testing.T) {
	// Zero frequency isolates the T2* envelope, which peaks at TE.
	gen, err := NewEcho(201, 80, 50, 50, 0, 0)
	require.NoError(t, err)

	samples := gen.Generate()
	peak, peakIdx := samples[0], 0
	for i, v := range samples {
		if v > peak {
			peak, peakIdx = v, i
		}
	}
	assert.Equal(t, 100, peakIdx)
	assert.InDelta(t, 1, peak, 1e-12)
}

func TestSTIRMonotoneRecovery(t *testing.T) {
	// TI=200 with T1=1000 inverts the recovery factor, so the raw signal is
	// negative and relaxes toward zero: the normalized curve rises.
	gen, err := NewSTIR(100, 1000, 200)
	require.NoError(t, err)

	samples := gen.Generate()
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i], samples[i-1], "index %d", i)
	}
	assert.InDelta(t, -1, samples[0], 1e-12)
	assert.InDelta(t, 1, samples[len(samples)-1], 1e-12)
}

func TestEPILineCount(t *testing.T) {
	gen, err := NewEPI(800, 8)
	require.NoError(t, err)

	samples := gen.Generate()
	// Each line contributes one positive and one negative excursion; count
	// zero crossings of the normalized curve around its midline.
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}
	assert.GreaterOrEqual(t, crossings, 15)
}
