package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCommand creates the edit command for the interactive catalog editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		catalogPath string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a shape catalog interactively",
		Long: `Edit a shape catalog interactively.

The editor lists every catalog entry with a live waveform preview.
Entries can be duplicated, removed and have their generator arguments
adjusted; changes are written back with 's'. Without --catalog the
built-in catalog is loaded and saved to the --output path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			savePath := output
			if savePath == "" {
				savePath = catalogPath
			}
			if savePath == "" {
				savePath = "shapes.json"
			}

			model := newEditorModel(cat, savePath)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}

			if m, ok := final.(editorModel); ok {
				if m.saved {
					printSuccess("Saved %d shapes", len(m.catalog.Shapes))
					printFile(savePath)
				} else if m.dirty {
					printWarning("Discarded unsaved changes")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "shape catalog JSON file (default: built-in catalog)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save path (default: the catalog file)")

	return cmd
}
