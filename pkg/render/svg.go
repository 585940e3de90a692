package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

// Path builds the SVG path data ("M x,y L x,y ...") for a sample sequence
// plotted into a width x height viewport. Coordinates are rounded to one
// decimal place, which is plenty at icon scale and keeps the markup small.
func Path(samples []float64, width, height int) string {
	if len(samples) == 0 {
		return ""
	}
	xs, ys := plotPoints(samples, float64(width), float64(height), svgMargin)

	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f,%.1f", xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		fmt.Fprintf(&b, " L %.1f,%.1f", xs[i], ys[i])
	}
	return b.String()
}

// SVG renders a sample sequence as a standalone SVG icon. The default
// viewport is 200x100 with a 2px stroke; use options to pick size, stroke
// and color (typically [WithCategory]).
func SVG(samples []float64, opts ...Option) ([]byte, error) {
	if len(samples) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot render empty sample sequence")
	}
	r := newRenderer(DefaultSVGWidth, DefaultSVGHeight, opts...)

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\"\n     xmlns=\"http://www.w3.org/2000/svg\">\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, "  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\"\n        stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n",
		Path(samples, r.width, r.height), r.color, r.strokeWidth)
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
