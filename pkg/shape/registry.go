package shape

import (
	"slices"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

// Kind names accepted by [New]. Each names exactly one generator variant.
const (
	KindRectangular      = "rectangular"
	KindSinc             = "sinc"
	KindGaussian         = "gaussian"
	KindHammingSinc      = "hamming-sinc"
	KindChess            = "chess"
	KindAdiabatic        = "adiabatic"
	KindSLR              = "slr"
	KindVerse            = "verse"
	KindFermi            = "fermi"
	KindSPSP             = "spsp"
	KindComposite        = "composite"
	KindDante            = "dante"
	KindHyperbolicSecant = "hyperbolic-secant"
	KindBIR              = "bir"
	KindFID              = "fid"
	KindEcho             = "echo"
	KindSTIR             = "stir"
	KindTrigger          = "trigger"
	KindFlag             = "flag"
	KindTrapezoid        = "trapezoid"
	KindRampUp           = "ramp-up"
	KindRampDown         = "ramp-down"
	KindRadial           = "radial"
	KindSpiral           = "spiral"
	KindEPI              = "epi"
	KindBipolar          = "bipolar"
)

// Args is the free-form numeric argument record a catalog entry carries for
// its generator. Missing keys fall back to the variant's documented default.
type Args map[string]float64

// Float returns the named argument, or def if absent.
func (a Args) Float(name string, def float64) float64 {
	if v, ok := a[name]; ok {
		return v
	}
	return def
}

// Int returns the named argument truncated to int, or def if absent.
func (a Args) Int(name string, def int) int {
	if v, ok := a[name]; ok {
		return int(v)
	}
	return def
}

// Factory builds a generator from a sample count and an argument record.
type Factory func(numPoints int, args Args) (Generator, error)

// registry maps kind names to factories. A static map rather than reflection:
// adding a variant means adding a constructor and one entry here.
var registry = map[string]Factory{
	KindRectangular: func(n int, _ Args) (Generator, error) { return NewRectangular(n) },
	KindSinc: func(n int, a Args) (Generator, error) {
		return NewSinc(n, a.Float("bandwidth", DefaultSincBandwidth))
	},
	KindGaussian: func(n int, a Args) (Generator, error) {
		return NewGaussian(n, a.Float("sigma", DefaultGaussianSigma))
	},
	KindHammingSinc: func(n int, a Args) (Generator, error) {
		return NewHammingSinc(n, a.Float("bandwidth", DefaultHammingSincBandwidth))
	},
	KindChess: func(n int, a Args) (Generator, error) {
		return NewChess(n, a.Float("sigma", DefaultChessSigma), a.Float("omega", DefaultChessOmega))
	},
	KindAdiabatic: func(n int, a Args) (Generator, error) {
		return NewAdiabatic(n, a.Float("beta", DefaultAdiabaticBeta))
	},
	KindSLR: func(n int, a Args) (Generator, error) {
		return NewSLR(n, a.Float("multiplier", DefaultSLRMultiplier))
	},
	KindVerse: func(n int, _ Args) (Generator, error) { return NewVerse(n) },
	KindFermi: func(n int, a Args) (Generator, error) {
		return NewFermi(n, a.Float("transition", DefaultFermiTransition), a.Float("plateau_width", DefaultFermiPlateauWidth))
	},
	KindSPSP: func(n int, a Args) (Generator, error) {
		return NewSPSP(n, a.Float("spatial_freq", DefaultSPSPSpatialFreq), a.Float("spectral_freq", DefaultSPSPSpectralFreq))
	},
	KindComposite: func(n int, _ Args) (Generator, error) { return NewComposite(n) },
	KindDante: func(n int, a Args) (Generator, error) {
		return NewDante(n, a.Int("num_pulses", DefaultDantePulses),
			a.Float("pulse_width", DefaultDantePulseWidth), a.Float("spacing", DefaultDanteSpacing))
	},
	KindHyperbolicSecant: func(n int, a Args) (Generator, error) {
		return NewHyperbolicSecant(n, a.Float("beta", DefaultHSBeta), a.Float("mu", DefaultHSMu))
	},
	KindBIR: func(n int, a Args) (Generator, error) {
		return NewBIR(n, a.Float("n", DefaultBIROrder))
	},
	KindFID: func(n int, a Args) (Generator, error) {
		return NewFID(n, a.Float("t2_star", DefaultFIDT2Star),
			a.Float("frequency", DefaultFIDFrequency), a.Float("phase", DefaultFIDPhase))
	},
	KindEcho: func(n int, a Args) (Generator, error) {
		return NewEcho(n, a.Float("t2", DefaultEchoT2), a.Float("t2_star", DefaultEchoT2Star),
			a.Float("echo_time", DefaultEchoTime), a.Float("frequency", DefaultEchoFrequency),
			a.Float("phase", DefaultEchoPhase))
	},
	KindSTIR: func(n int, a Args) (Generator, error) {
		return NewSTIR(n, a.Float("t1", DefaultSTIRT1), a.Float("ti", DefaultSTIRTI))
	},
	KindTrigger: func(n int, _ Args) (Generator, error) { return NewTrigger(n) },
	KindFlag:    func(n int, _ Args) (Generator, error) { return NewFlag(n) },
	KindTrapezoid: func(n int, a Args) (Generator, error) {
		return NewTrapezoid(n, a.Float("rise_fraction", DefaultTrapezoidRise),
			a.Float("plateau_fraction", DefaultTrapezoidPlateau), a.Float("fall_fraction", DefaultTrapezoidFall))
	},
	KindRampUp:   func(n int, _ Args) (Generator, error) { return NewRampUp(n) },
	KindRampDown: func(n int, _ Args) (Generator, error) { return NewRampDown(n) },
	KindRadial: func(n int, a Args) (Generator, error) {
		return NewRadial(n, a.Float("phase", DefaultRadialPhase), a.Float("cycles", DefaultRadialCycles))
	},
	KindSpiral: func(n int, a Args) (Generator, error) {
		return NewSpiral(n, a.Float("turns", DefaultSpiralTurns), a.Float("phase", DefaultSpiralPhase))
	},
	KindEPI: func(n int, a Args) (Generator, error) {
		return NewEPI(n, a.Float("lines", DefaultEPILines))
	},
	KindBipolar: func(n int, _ Args) (Generator, error) { return NewBipolar(n) },
}

// New builds a generator for the named kind. It returns an UNKNOWN_KIND error
// for unregistered kinds and an INVALID_PARAMETER error when the arguments
// are rejected by the variant's constructor.
func New(kind string, numPoints int, args Args) (Generator, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownKind, "unknown shape kind: %q", kind)
	}
	return factory(numPoints, args)
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// IsKind reports whether kind names a registered variant.
func IsKind(kind string) bool {
	_, ok := registry[kind]
	return ok
}
