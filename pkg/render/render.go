// Package render turns generated sample sequences into visual icon
// artifacts. It owns the coordinate mapping from normalized amplitudes to
// pixel space and the color-by-category scheme; it never computes samples
// itself.
package render

import "github.com/dpizetta/mrdiagram/pkg/catalog"

// Default icon geometry.
const (
	DefaultSVGWidth      = 200
	DefaultSVGHeight     = 100
	DefaultPNGSize       = 64
	DefaultStrokeWidth   = 2.0
	svgMargin            = 10.0
	pngMargin            = 8.0
	fallbackColor        = "#374151"
	backgroundColorWhite = "#ffffff"
)

// categoryColors maps shape categories to stroke colors.
var categoryColors = map[catalog.Category]string{
	catalog.CategoryRF:       "#2563eb",
	catalog.CategorySignal:   "#dc2626",
	catalog.CategoryGradient: "#16a34a",
	catalog.CategoryTrigger:  "#ca8a04",
	catalog.CategoryFlag:     "#7c3aed",
}

// ColorFor returns the stroke color for a category, falling back to a
// neutral gray for unknown or General categories.
func ColorFor(c catalog.Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return fallbackColor
}

// Option configures icon rendering.
type Option func(*renderer)

type renderer struct {
	width       int
	height      int
	strokeWidth float64
	color       string
}

// WithSize sets the artifact dimensions in pixels.
func WithSize(width, height int) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

// WithStrokeWidth sets the curve line thickness.
func WithStrokeWidth(w float64) Option {
	return func(r *renderer) { r.strokeWidth = w }
}

// WithCategory selects the stroke color from the category scheme.
func WithCategory(c catalog.Category) Option {
	return func(r *renderer) { r.color = ColorFor(c) }
}

// WithColor sets an explicit stroke color, overriding the category scheme.
func WithColor(color string) Option {
	return func(r *renderer) { r.color = color }
}

func newRenderer(width, height int, opts ...Option) renderer {
	r := renderer{
		width:       width,
		height:      height,
		strokeWidth: DefaultStrokeWidth,
		color:       fallbackColor,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// plotPoints maps samples onto pixel coordinates: x spans the width inside
// the margin, y maps [-1, 1] to [height-margin, margin] with the axis
// flipped for screen coordinates. A single sample sits at the left margin.
func plotPoints(samples []float64, width, height, margin float64) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	span := width - 2*margin
	for i, v := range samples {
		if len(samples) > 1 {
			xs[i] = margin + span*float64(i)/float64(len(samples)-1)
		} else {
			xs[i] = margin
		}
		ys[i] = (1-v)/2*(height-2*margin) + margin
	}
	return xs, ys
}
