package render

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

// PNG rasterizes a sample sequence as an antialiased icon on a white
// background. The default is a 64x64 square, matching the editor's icon
// overlay; use [WithSize] for other dimensions.
func PNG(samples []float64, opts ...Option) ([]byte, error) {
	if len(samples) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot render empty sample sequence")
	}
	r := newRenderer(DefaultPNGSize, DefaultPNGSize, opts...)

	dc := gg.NewContext(r.width, r.height)
	dc.SetHexColor(backgroundColorWhite)
	dc.Clear()

	xs, ys := plotPoints(samples, float64(r.width), float64(r.height), pngMargin)
	dc.SetHexColor(r.color)
	dc.SetLineWidth(r.strokeWidth)
	dc.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		dc.LineTo(xs[i], ys[i])
	}
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
