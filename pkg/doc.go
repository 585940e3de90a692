// Package pkg provides the core libraries for mrshapes.
//
// # Overview
//
// mrshapes generates the waveform shapes that make up MR pulse sequence
// diagrams and renders them as icons. The pkg directory is organized as:
//
//  1. [shape] - Waveform generators (RF pulses, gradients, signals, markers)
//  2. [catalog] - Shape metadata records and the JSON catalog format
//  3. [render] - SVG and PNG icon rendering
//  4. [pipeline] - Batch conversion with caching
//  5. [cache] - Local artifact cache for rendered icons
//  6. [errors] - Coded errors shared across the packages
//
// # Architecture
//
// The typical data flow:
//
//	shapes.json catalog (or the built-in catalog)
//	         ↓
//	    [catalog] package (metadata + generator arguments)
//	         ↓
//	    [shape] package (sampled waveform in [-1, 1])
//	         ↓
//	    [render] package (SVG / PNG icon)
//	         ↓
//	    [pipeline] package (output files, cache)
//
// # Quick Start
//
//	gen, err := shape.New(shape.KindSinc, 100, shape.Args{"bandwidth": 2})
//	if err != nil {
//	    return err
//	}
//	svg, err := render.SVG(gen.Generate(), render.WithCategory(catalog.CategoryRF))
package pkg
