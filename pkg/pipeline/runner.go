package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dpizetta/mrdiagram/pkg/cache"
	"github.com/dpizetta/mrdiagram/pkg/catalog"
	"github.com/dpizetta/mrdiagram/pkg/render"
)

// Runner converts catalog entries into icon files with caching.
//
// The Runner is stateless except for the cache and logger, so a single
// instance can serve the CLI and the HTTP server at the same time.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger falls back to the package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Convert renders every spec in every requested format and writes the
// files under opts.OutputDir. The batch continues past individual
// failures; it stops early only when ctx is canceled.
func (r *Runner) Convert(ctx context.Context, specs []catalog.Spec, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	result := &Result{}

	for i := range specs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		spec := &specs[i]
		paths, hits, err := r.convertOne(ctx, spec, opts)
		if err != nil {
			r.Logger.Warn("skipping shape", "id", spec.ID, "err", err)
			result.Failures = append(result.Failures, Failure{ID: spec.ID, Name: spec.Name, Err: err})
			continue
		}
		result.Written = append(result.Written, paths...)
		result.CacheHits += hits
		result.Converted++
		r.Logger.Debug("converted shape", "id", spec.ID, "files", len(paths), "cache_hits", hits)
	}

	result.Duration = time.Since(start)
	r.Logger.Info("conversion finished",
		"converted", result.Converted,
		"failed", len(result.Failures),
		"files", len(result.Written),
		"cache_hits", result.CacheHits,
		"duration", result.Duration)
	return result, nil
}

// Render produces one artifact for a single spec without touching the
// filesystem. The HTTP server serves icons through this path.
func (r *Runner) Render(ctx context.Context, spec *catalog.Spec, format string, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}
	return r.renderArtifact(ctx, spec, format, opts)
}

func (r *Runner) convertOne(ctx context.Context, spec *catalog.Spec, opts Options) (paths []string, hits int, err error) {
	dir := filepath.Join(opts.OutputDir, spec.Category.Dir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, 0, fmt.Errorf("creating output directory: %w", err)
	}
	for _, format := range opts.Formats {
		data, hit, err := r.renderArtifact(ctx, spec, format, opts)
		if err != nil {
			return nil, 0, err
		}
		if hit {
			hits++
		}
		path := filepath.Join(dir, spec.ID+"."+format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, 0, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, hits, nil
}

func (r *Runner) renderArtifact(ctx context.Context, spec *catalog.Spec, format string, opts Options) ([]byte, bool, error) {
	numPoints := spec.NumPoints()
	if opts.NumPoints > 0 {
		numPoints = opts.NumPoints
	}

	width, height := opts.Width, opts.Height
	if format == FormatPNG {
		width, height = opts.PNGSize, opts.PNGSize
	}
	key := cache.ArtifactKey(spec.Kind, numPoints, spec.ShapeArgs(), format,
		width, height, opts.StrokeWidth, render.ColorFor(spec.Category))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	gen, err := spec.BuildWithPoints(numPoints)
	if err != nil {
		return nil, false, err
	}
	samples := gen.Generate()

	renderOpts := []render.Option{
		render.WithSize(width, height),
		render.WithStrokeWidth(opts.StrokeWidth),
		render.WithCategory(spec.Category),
	}

	var data []byte
	switch format {
	case FormatSVG:
		data, err = render.SVG(samples, renderOpts...)
	case FormatPNG:
		data, err = render.PNG(samples, renderOpts...)
	default:
		return nil, false, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, data)
	return data, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
