package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
)

// listCommand creates the list command for browsing the catalog.
func (c *CLI) listCommand() *cobra.Command {
	var (
		catalogPath string
		categoryStr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shapes in a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			specs := cat.Shapes
			if categoryStr != "" {
				category := catalog.Category(categoryStr)
				if !category.Valid() {
					return fmt.Errorf("unknown category %q (want one of %v)", categoryStr, catalog.Categories())
				}
				specs = filterByCategory(specs, category)
			}

			fmt.Println(renderCatalogTable(specs))
			printDetail("%d shapes", len(specs))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "shape catalog JSON file (default: built-in catalog)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "only list shapes of this category (RF, Signal, Gradient, Trigger, Flag)")

	return cmd
}

func filterByCategory(specs []catalog.Spec, cat catalog.Category) []catalog.Spec {
	out := make([]catalog.Spec, 0, len(specs))
	for _, s := range specs {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// renderCatalogTable formats specs as a bordered table.
func renderCatalogTable(specs []catalog.Spec) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(specs))
	for i, s := range specs {
		tags := strings.Join(s.Tags, ", ")
		rows[i] = []string{s.ID, s.Name, s.Kind, string(s.Category), s.Selectivity, tags}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Kind", "Category", "Selectivity", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case 3:
				if row < len(specs) {
					return lipgloss.NewStyle().Foreground(categoryTermColor(specs[row].Category))
				}
			case 4, 5:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// categoryTermColor maps catalog categories onto the terminal palette.
func categoryTermColor(c catalog.Category) lipgloss.Color {
	switch c {
	case catalog.CategoryRF:
		return colorBlue
	case catalog.CategorySignal:
		return colorRed
	case catalog.CategoryGradient:
		return colorGreen
	case catalog.CategoryTrigger:
		return colorYellow
	case catalog.CategoryFlag:
		return colorCyan
	default:
		return colorGray
	}
}
