package catalog

import "github.com/dpizetta/mrdiagram/pkg/shape"

// Default returns the built-in catalog with one entry per registered
// generator kind, so the converter, editor and server work without a
// shapes.json file. Arguments mirror each variant's documented defaults;
// entries carry enough metadata for the editor's table view.
func Default() *Catalog {
	return &Catalog{Shapes: []Spec{
		{
			ID: "rf-rect", Name: "Rectangular", Kind: shape.KindRectangular, Category: CategoryRF,
			Selectivity: "low", Duration: "short", SAR: "high",
			Description: "Hard pulse with uniform amplitude.",
			Usage:       "Non-selective excitation, short TR sequences.",
			Tags:        []string{"rf", "hard-pulse"},
		},
		{
			ID: "rf-sinc", Name: "Sinc", Kind: shape.KindSinc, Category: CategoryRF,
			Args:        shape.Args{"bandwidth": shape.DefaultSincBandwidth},
			Selectivity: "high", Duration: "medium", SAR: "medium",
			Description: "Band-limited sin(x)/x excitation envelope.",
			Usage:       "Slice-selective excitation.",
			Tags:        []string{"rf", "selective"},
		},
		{
			ID: "rf-gauss", Name: "Gaussian", Kind: shape.KindGaussian, Category: CategoryRF,
			Args:        shape.Args{"sigma": shape.DefaultGaussianSigma},
			Selectivity: "medium", Duration: "short", SAR: "low",
			Description: "Gaussian envelope with smooth spectral response.",
			Usage:       "Low-SAR selective excitation.",
			Tags:        []string{"rf", "selective"},
		},
		{
			ID: "rf-hamming-sinc", Name: "Hamming Sinc", Kind: shape.KindHammingSinc, Category: CategoryRF,
			Args:        shape.Args{"bandwidth": shape.DefaultHammingSincBandwidth},
			Selectivity: "high", Duration: "medium", SAR: "medium",
			Description: "Sinc apodized with a Hamming window to suppress ringing.",
			Usage:       "Slice selection with reduced side lobes.",
			Tags:        []string{"rf", "selective", "windowed"},
		},
		{
			ID: "rf-chess", Name: "CHESS", Kind: shape.KindChess, Category: CategoryRF,
			Args:        shape.Args{"sigma": shape.DefaultChessSigma, "omega": shape.DefaultChessOmega},
			Selectivity: "high", Duration: "long", SAR: "low",
			Description: "Chemical shift selective saturation pulse.",
			Usage:       "Fat or water suppression.",
			Tags:        []string{"rf", "saturation"},
		},
		{
			ID: "rf-adiabatic", Name: "Adiabatic", Kind: shape.KindAdiabatic, Category: CategoryRF,
			Args:        shape.Args{"beta": shape.DefaultAdiabaticBeta},
			Selectivity: "medium", Duration: "long", SAR: "high",
			Description: "Hyperbolic secant amplitude envelope.",
			Usage:       "B1-insensitive inversion.",
			Tags:        []string{"rf", "adiabatic"},
		},
		{
			ID: "rf-slr", Name: "SLR", Kind: shape.KindSLR, Category: CategoryRF,
			Args:        shape.Args{"multiplier": shape.DefaultSLRMultiplier},
			Selectivity: "high", Duration: "medium", SAR: "medium",
			Description: "Shinnar-Le Roux designed pulse profile.",
			Usage:       "Sharp slice profiles.",
			Tags:        []string{"rf", "selective", "slr"},
		},
		{
			ID: "rf-verse", Name: "VERSE", Kind: shape.KindVerse, Category: CategoryRF,
			Selectivity: "high", Duration: "medium", SAR: "low",
			Description: "Variable-rate selective excitation envelope.",
			Usage:       "SAR reduction at constant slice profile.",
			Tags:        []string{"rf", "verse"},
		},
		{
			ID: "rf-fermi", Name: "Fermi", Kind: shape.KindFermi, Category: CategoryRF,
			Args:        shape.Args{"transition": shape.DefaultFermiTransition, "plateau_width": shape.DefaultFermiPlateauWidth},
			Selectivity: "medium", Duration: "medium", SAR: "medium",
			Description: "Flat plateau with smooth sigmoid edges.",
			Usage:       "Magnetization transfer, saturation.",
			Tags:        []string{"rf", "fermi"},
		},
		{
			ID: "rf-spsp", Name: "Spatial-Spectral", Kind: shape.KindSPSP, Category: CategoryRF,
			Args:        shape.Args{"spatial_freq": shape.DefaultSPSPSpatialFreq, "spectral_freq": shape.DefaultSPSPSpectralFreq},
			Selectivity: "tunable", Duration: "long", SAR: "medium",
			Description: "Simultaneous spatial and spectral selectivity.",
			Usage:       "Water-only excitation in fat-bearing anatomy.",
			Tags:        []string{"rf", "spsp"},
		},
		{
			ID: "rf-composite", Name: "Composite", Kind: shape.KindComposite, Category: CategoryRF,
			Selectivity: "low", Duration: "medium", SAR: "high",
			Description: "Three-segment composite pulse train.",
			Usage:       "B0/B1-compensated inversion.",
			Tags:        []string{"rf", "composite"},
		},
		{
			ID: "rf-dante", Name: "DANTE", Kind: shape.KindDante, Category: CategoryRF,
			Args: shape.Args{
				"num_pulses":  float64(shape.DefaultDantePulses),
				"pulse_width": shape.DefaultDantePulseWidth,
				"spacing":     shape.DefaultDanteSpacing,
			},
			Selectivity: "high", Duration: "long", SAR: "low",
			Description: "Train of narrow pulses with periodic excitation response.",
			Usage:       "Tagging, flow imaging.",
			Tags:        []string{"rf", "dante", "train"},
		},
		{
			ID: "rf-hs", Name: "Hyperbolic Secant", Kind: shape.KindHyperbolicSecant, Category: CategoryRF,
			Args:        shape.Args{"beta": shape.DefaultHSBeta, "mu": shape.DefaultHSMu},
			Selectivity: "medium", Duration: "long", SAR: "high",
			Description: "Full adiabatic sech/tanh pulse.",
			Usage:       "Adiabatic full passage inversion.",
			Tags:        []string{"rf", "adiabatic"},
		},
		{
			ID: "rf-bir", Name: "BIR", Kind: shape.KindBIR, Category: CategoryRF,
			Args:        shape.Args{"n": shape.DefaultBIROrder},
			Selectivity: "low", Duration: "long", SAR: "high",
			Description: "B1-insensitive rotation envelope.",
			Usage:       "Adiabatic excitation without slice selection.",
			Tags:        []string{"rf", "adiabatic", "bir"},
		},
		{
			ID: "sig-fid", Name: "FID", Kind: shape.KindFID, Category: CategorySignal,
			Args: shape.Args{
				"t2_star":   shape.DefaultFIDT2Star,
				"frequency": shape.DefaultFIDFrequency,
				"phase":     shape.DefaultFIDPhase,
			},
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Free induction decay with T2* envelope.",
			Usage:       "Signal after excitation.",
			Tags:        []string{"signal", "fid"},
		},
		{
			ID: "sig-echo", Name: "Spin Echo", Kind: shape.KindEcho, Category: CategorySignal,
			Args: shape.Args{
				"t2":        shape.DefaultEchoT2,
				"t2_star":   shape.DefaultEchoT2Star,
				"echo_time": shape.DefaultEchoTime,
				"frequency": shape.DefaultEchoFrequency,
				"phase":     shape.DefaultEchoPhase,
			},
			Selectivity: "not_applicable", Duration: "medium", SAR: "not_applicable",
			Description: "Refocused echo symmetric around TE.",
			Usage:       "Spin-echo readout.",
			Tags:        []string{"signal", "echo"},
		},
		{
			ID: "sig-stir", Name: "STIR", Kind: shape.KindSTIR, Category: CategorySignal,
			Args:        shape.Args{"t1": shape.DefaultSTIRT1, "ti": shape.DefaultSTIRTI},
			Selectivity: "not_applicable", Duration: "long", SAR: "not_applicable",
			Description: "Inversion recovery signal at inversion time TI.",
			Usage:       "Fat-suppressed imaging.",
			Tags:        []string{"signal", "inversion-recovery"},
		},
		{
			ID: "trig-trigger", Name: "Trigger", Kind: shape.KindTrigger, Category: CategoryTrigger,
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Physiological trigger marker pulse.",
			Usage:       "Cardiac or respiratory gating.",
			Tags:        []string{"trigger", "gating"},
		},
		{
			ID: "flag-flag", Name: "Flag", Kind: shape.KindFlag, Category: CategoryFlag,
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Single-sample annotation marker.",
			Usage:       "Event annotation in diagrams.",
			Tags:        []string{"flag", "marker"},
		},
		{
			ID: "grad-trapezoid", Name: "Trapezoid", Kind: shape.KindTrapezoid, Category: CategoryGradient,
			Args: shape.Args{
				"rise_fraction":    shape.DefaultTrapezoidRise,
				"plateau_fraction": shape.DefaultTrapezoidPlateau,
				"fall_fraction":    shape.DefaultTrapezoidFall,
			},
			Selectivity: "not_applicable", Duration: "medium", SAR: "not_applicable",
			Description: "Ramp-plateau-ramp gradient lobe.",
			Usage:       "Slice selection, readout, spoiling.",
			Tags:        []string{"gradient", "trapezoid"},
		},
		{
			ID: "grad-ramp-up", Name: "Ramp Up", Kind: shape.KindRampUp, Category: CategoryGradient,
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Linear rise from zero to full amplitude.",
			Usage:       "Gradient switching segments.",
			Tags:        []string{"gradient", "ramp"},
		},
		{
			ID: "grad-ramp-down", Name: "Ramp Down", Kind: shape.KindRampDown, Category: CategoryGradient,
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Linear fall from full amplitude to zero.",
			Usage:       "Gradient switching segments.",
			Tags:        []string{"gradient", "ramp"},
		},
		{
			ID: "grad-radial", Name: "Radial", Kind: shape.KindRadial, Category: CategoryGradient,
			Args:        shape.Args{"phase": shape.DefaultRadialPhase, "cycles": shape.DefaultRadialCycles},
			Selectivity: "not_applicable", Duration: "medium", SAR: "not_applicable",
			Description: "Cosine readout for radial trajectories.",
			Usage:       "Radial k-space acquisition.",
			Tags:        []string{"gradient", "radial"},
		},
		{
			ID: "grad-spiral", Name: "Spiral", Kind: shape.KindSpiral, Category: CategoryGradient,
			Args:        shape.Args{"turns": shape.DefaultSpiralTurns, "phase": shape.DefaultSpiralPhase},
			Selectivity: "not_applicable", Duration: "medium", SAR: "not_applicable",
			Description: "Growing-radius oscillation of a spiral trajectory.",
			Usage:       "Spiral k-space acquisition.",
			Tags:        []string{"gradient", "spiral"},
		},
		{
			ID: "grad-epi", Name: "EPI Readout", Kind: shape.KindEPI, Category: CategoryGradient,
			Args:        shape.Args{"lines": shape.DefaultEPILines},
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Alternating readout train, one lobe per k-space line.",
			Usage:       "Echo-planar imaging.",
			Tags:        []string{"gradient", "epi"},
		},
		{
			ID: "grad-bipolar", Name: "Bipolar", Kind: shape.KindBipolar, Category: CategoryGradient,
			Selectivity: "not_applicable", Duration: "short", SAR: "not_applicable",
			Description: "Balanced positive/negative lobe pair.",
			Usage:       "Flow encoding, diffusion preparation.",
			Tags:        []string{"gradient", "bipolar"},
		},
	}}
}
