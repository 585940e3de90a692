package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
	"github.com/dpizetta/mrdiagram/pkg/errors"
)

func TestPath(t *testing.T) {
	t.Run("Geometry", func(t *testing.T) {
		// Two samples spanning the full range: -1 maps to the bottom margin
		// line, +1 to the top (SVG y grows downward).
		got := Path([]float64{-1, 1}, 200, 100)
		assert.Equal(t, "M 10.0,90.0 L 190.0,10.0", got)
	})

	t.Run("MidlineAtZero", func(t *testing.T) {
		got := Path([]float64{0}, 200, 100)
		assert.Equal(t, "M 10.0,50.0", got)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Path(nil, 200, 100))
	})
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#2563eb", ColorFor(catalog.CategoryRF))
	assert.Equal(t, "#dc2626", ColorFor(catalog.CategorySignal))
	assert.Equal(t, "#16a34a", ColorFor(catalog.CategoryGradient))
	assert.Equal(t, "#374151", ColorFor(catalog.CategoryGeneral))
	assert.Equal(t, "#374151", ColorFor(catalog.Category("unknown")))
}

func TestSVG(t *testing.T) {
	samples := []float64{-1, 0, 1, 0, -1}

	data, err := SVG(samples, WithCategory(catalog.CategoryRF))
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "<?xml"))
	assert.Contains(t, s, `viewBox="0 0 200 100"`)
	assert.Contains(t, s, `stroke="#2563eb"`)
	assert.Contains(t, s, `stroke-width="2"`)
	assert.Contains(t, s, "M 10.0,90.0")
	assert.Contains(t, s, "</svg>")
}

func TestSVGOptions(t *testing.T) {
	data, err := SVG([]float64{0, 1}, WithSize(64, 64), WithStrokeWidth(1.5), WithColor("#000000"))
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `width="64" height="64"`)
	assert.Contains(t, s, `stroke-width="1.5"`)
	assert.Contains(t, s, `stroke="#000000"`)
}

func TestSVGEmptyInput(t *testing.T) {
	_, err := SVG(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestPNG(t *testing.T) {
	samples := []float64{-1, -0.5, 0, 0.5, 1}

	data, err := PNG(samples, WithCategory(catalog.CategoryGradient))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestPNGCustomSize(t *testing.T) {
	data, err := PNG([]float64{0, 1, 0}, WithSize(32, 32))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestPNGEmptyInput(t *testing.T) {
	_, err := PNG(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
