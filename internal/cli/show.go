package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
	"github.com/dpizetta/mrdiagram/pkg/pipeline"
)

// Terminal preview dimensions.
const (
	plotWidth  = 64
	plotHeight = 13
)

// showCommand creates the show command for inspecting one catalog entry.
func (c *CLI) showCommand() *cobra.Command {
	var (
		catalogPath string
		output      string
		formatsStr  string
		numPoints   int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a shape's metadata and waveform",
		Long: `Show a shape's metadata and waveform.

The waveform is plotted in the terminal. With --output the shape is
also rendered to an icon file next to the metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			spec, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("no shape %q in catalog", args[0])
			}

			fmt.Println(StyleTitle.Render(spec.Name))
			printKeyValue("ID", spec.ID)
			printKeyValue("Kind", spec.Kind)
			printKeyValue("Category", string(spec.Category))
			if spec.Selectivity != "" {
				printKeyValue("Selectivity", spec.Selectivity)
			}
			if spec.Duration != "" {
				printKeyValue("Duration", spec.Duration)
			}
			if spec.SAR != "" {
				printKeyValue("SAR", spec.SAR)
			}
			if len(spec.Tags) > 0 {
				printKeyValue("Tags", strings.Join(spec.Tags, ", "))
			}
			if args := formatArgs(spec.ShapeArgs()); args != "" {
				printKeyValue("Args", args)
			}
			if spec.Description != "" {
				fmt.Println()
				fmt.Println(StyleDim.Render(spec.Description))
			}

			points := numPoints
			if points <= 0 {
				points = spec.NumPoints()
			}
			gen, err := spec.BuildWithPoints(points)
			if err != nil {
				return fmt.Errorf("generate %s: %w", spec.ID, err)
			}
			fmt.Println()
			fmt.Println(plotSamples(gen.Generate(), plotWidth, plotHeight))

			if output == "" {
				return nil
			}
			return c.renderShowOutput(cmd, &spec, output, parseFormats(formatsStr), numPoints)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "shape catalog JSON file (default: built-in catalog)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the icon to this file")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "icon format for --output: svg (default), png")
	cmd.Flags().IntVar(&numPoints, "points", 0, "override the shape's sample count")

	return cmd
}

func (c *CLI) renderShowOutput(cmd *cobra.Command, spec *catalog.Spec, output string, formats []string, numPoints int) error {
	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	data, _, err := runner.Render(cmd.Context(), spec, formats[0], pipeline.Options{NumPoints: numPoints})
	if err != nil {
		return fmt.Errorf("render %s: %w", spec.ID, err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printFile(output)
	return nil
}

// formatArgs renders shape arguments as "name=value" pairs, sorted by name.
func formatArgs(args map[string]float64) string {
	if len(args) == 0 {
		return ""
	}
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, args[name])
	}
	return strings.Join(parts, "  ")
}
