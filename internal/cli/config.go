package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/dpizetta/mrdiagram/pkg/errors"
	"github.com/dpizetta/mrdiagram/pkg/pipeline"
)

// Config mirrors the convert command's flags so a batch setup can live in
// a TOML file. Flags set on the command line override config values.
type Config struct {
	// Catalog is the path of the shape catalog to convert. Empty means
	// the built-in catalog.
	Catalog string `toml:"catalog"`

	// Output is the icon output directory.
	Output string `toml:"output"`

	// Formats lists the outputs per shape ("svg", "png").
	Formats []string `toml:"formats"`

	// Width and Height are the SVG icon dimensions in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// PNGSize is the square PNG icon edge in pixels.
	PNGSize int `toml:"png_size"`

	// StrokeWidth is the waveform line width.
	StrokeWidth float64 `toml:"stroke_width"`

	// NumPoints overrides every shape's sample count when > 0.
	NumPoints int `toml:"num_points"`
}

// loadConfig reads and decodes a TOML config file.
func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %q", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// apply copies the config's non-zero values onto opts.
func (c Config) apply(opts *pipeline.Options) {
	if c.Output != "" {
		opts.OutputDir = c.Output
	}
	if len(c.Formats) > 0 {
		opts.Formats = c.Formats
	}
	if c.Width > 0 {
		opts.Width = c.Width
	}
	if c.Height > 0 {
		opts.Height = c.Height
	}
	if c.PNGSize > 0 {
		opts.PNGSize = c.PNGSize
	}
	if c.StrokeWidth > 0 {
		opts.StrokeWidth = c.StrokeWidth
	}
	if c.NumPoints > 0 {
		opts.NumPoints = c.NumPoints
	}
}
