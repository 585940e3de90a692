package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpizetta/mrdiagram/pkg/pipeline"
)

// convertCommand creates the convert command for batch icon generation.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		configPath  string
		catalogPath string
		formatsStr  string
		noCache     bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a shape catalog into icon files",
		Long: `Convert a shape catalog into icon files.

Every entry of the catalog is generated, rendered in each requested
format and written under the output directory, grouped by category
(rf/, gradient/, signal/, trigger/, flag/). Without --catalog the
built-in catalog of standard MR shapes is converted.

Rendered icons are cached locally, so unchanged entries are not
re-rendered on subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				if catalogPath == "" {
					catalogPath = cfg.Catalog
				}
				cfg.apply(&opts)
			}
			// Flags win over the config file.
			if cmd.Flags().Changed("format") || opts.Formats == nil {
				opts.Formats = parseFormats(formatsStr)
			}
			applyChangedFlags(cmd, &opts)

			return c.runConvert(cmd.Context(), catalogPath, opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "shape catalog JSON file (default: built-in catalog)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "output directory (default: icons)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "SVG icon width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "SVG icon height in pixels")
	cmd.Flags().IntVar(&opts.PNGSize, "png-size", 0, "PNG icon edge in pixels")
	cmd.Flags().Float64Var(&opts.StrokeWidth, "stroke", 0, "waveform line width")
	cmd.Flags().IntVar(&opts.NumPoints, "points", 0, "override the sample count of every shape")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// applyChangedFlags re-applies flag values over config file values. Cobra
// already wrote flag defaults into opts before the config was applied, so
// only flags the user actually set are copied back.
func applyChangedFlags(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if v, err := flags.GetString("output"); err == nil && flags.Changed("output") {
		opts.OutputDir = v
	}
	if v, err := flags.GetInt("width"); err == nil && flags.Changed("width") {
		opts.Width = v
	}
	if v, err := flags.GetInt("height"); err == nil && flags.Changed("height") {
		opts.Height = v
	}
	if v, err := flags.GetInt("png-size"); err == nil && flags.Changed("png-size") {
		opts.PNGSize = v
	}
	if v, err := flags.GetFloat64("stroke"); err == nil && flags.Changed("stroke") {
		opts.StrokeWidth = v
	}
	if v, err := flags.GetInt("points"); err == nil && flags.Changed("points") {
		opts.NumPoints = v
	}
}

// runConvert loads the catalog and runs the conversion batch.
func (c *CLI) runConvert(ctx context.Context, catalogPath string, opts pipeline.Options, noCache bool) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Converting %d shapes...", len(cat.Shapes)))
	spinner.Start()

	result, err := runner.Convert(ctx, cat.Shapes, opts)
	if err != nil {
		spinner.StopWithError("Conversion failed")
		return fmt.Errorf("convert: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Converted %d shapes", result.Converted))

	printSuccess("Wrote %d icons", len(result.Written))
	for _, path := range result.Written {
		printFile(path)
	}
	printBatchStats(result.Converted, len(result.Failures), len(result.Written), result.CacheHits)

	for _, f := range result.Failures {
		printWarning("%s (%s): %v", f.Name, f.ID, f.Err)
	}
	// Partial failures are reported but do not fail the batch.
	if result.Converted == 0 && len(result.Failures) > 0 {
		return fmt.Errorf("all %d shapes failed", len(result.Failures))
	}
	return nil
}
