// Package pipeline turns a shape catalog into icon files on disk.
//
// The pipeline is the batch counterpart of the single-shape render
// helpers: it iterates a catalog, generates each waveform, renders it
// in every requested format and writes the result under the output
// directory, grouped by category. Both the CLI and the HTTP server go
// through the same Runner so caching behaves identically everywhere.
//
// Usage:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Convert(ctx, cat.Shapes, pipeline.Options{
//	    OutputDir: "icons",
//	    Formats:   []string{"svg", "png"},
//	})
//
// A failing entry does not abort the batch. Failures are collected in
// the result so the caller can report them after the remaining entries
// have been written.
package pipeline

import (
	"time"

	"github.com/dpizetta/mrdiagram/pkg/errors"
	"github.com/dpizetta/mrdiagram/pkg/render"
)

// Supported output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Defaults shared by the CLI flags and the config file.
const (
	DefaultOutputDir = "icons"
	DefaultFormat    = FormatSVG
)

// Options controls one conversion batch.
type Options struct {
	// OutputDir is the directory icons are written under. Each icon
	// lands in a per-category subdirectory.
	OutputDir string

	// Formats lists the outputs to produce per shape ("svg", "png").
	Formats []string

	// Width and Height are the SVG icon dimensions in pixels.
	Width  int
	Height int

	// PNGSize is the square PNG icon edge in pixels.
	PNGSize int

	// StrokeWidth is the waveform line width.
	StrokeWidth float64

	// NumPoints overrides the sample count of every shape when > 0.
	NumPoints int

	// Refresh skips cache reads so every icon is re-rendered.
	Refresh bool
}

// ValidateAndSetDefaults fills zero fields and rejects unusable options.
func (o *Options) ValidateAndSetDefaults() error {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if f != FormatSVG && f != FormatPNG {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg or png)", f)
		}
	}
	if o.Width <= 0 {
		o.Width = render.DefaultSVGWidth
	}
	if o.Height <= 0 {
		o.Height = render.DefaultSVGHeight
	}
	if o.PNGSize <= 0 {
		o.PNGSize = render.DefaultPNGSize
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = render.DefaultStrokeWidth
	}
	if o.NumPoints < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "num_points override must be >= 0, got %d", o.NumPoints)
	}
	return nil
}

// Failure records one catalog entry that could not be converted.
type Failure struct {
	ID   string
	Name string
	Err  error
}

// Result summarizes a conversion batch.
type Result struct {
	// Written lists the paths of all files produced, in catalog order.
	Written []string

	// Converted counts catalog entries that produced every requested
	// format.
	Converted int

	// CacheHits counts artifacts served from the cache instead of
	// being re-rendered.
	CacheHits int

	// Failures lists entries that were skipped, with their errors.
	Failures []Failure

	// Duration is the wall time of the whole batch.
	Duration time.Duration
}
