// Package shape generates parametric 1-D waveforms used as reference curves
// in MRI pulse-sequence diagrams.
//
// Each waveform kind is a closed-form formula over its own sampling domain:
// RF pulse envelopes (sinc, Gaussian, adiabatic hyperbolic secant, ...),
// signal decays (FID, spin echo, STIR), gradient lobes (trapezoid, spiral,
// EPI readout, ...) and marker shapes (trigger, flag). Generators are pure:
// the same kind and parameters always produce the same sample sequence.
//
// # Contract
//
// Generate returns a slice of exactly numPoints amplitudes. Every generator
// routes its raw formula output through [Normalize], which rescales into
// [-1, 1] with the raw minimum mapping to -1 and the raw maximum to +1.
// A constant raw sequence normalizes to all zeros rather than dividing by
// zero. The one documented exception is [Bipolar], whose output is already
// exactly {+1, -1} and is returned unnormalized.
//
// Results are memoized: the first Generate call computes the sequence, later
// calls return the same slice. Callers that need a fresh computation build a
// new generator.
//
// # Construction by kind
//
// Callers that hold a kind name and an argument record (typically from a
// catalog entry) use the registry:
//
//	gen, err := shape.New("sinc", 100, shape.Args{"bandwidth": 4})
//	if err != nil {
//	    // UNKNOWN_KIND or INVALID_PARAMETER
//	}
//	samples := gen.Generate()
//
// Direct constructors (NewSinc, NewTrapezoid, ...) are available when the
// kind is known at compile time.
package shape
