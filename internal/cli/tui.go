package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
	"github.com/dpizetta/mrdiagram/pkg/shape"
)

// Editor list styles.
var (
	editorSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editorNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editorDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	editorErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	previewBoxStyle     = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// Preview dimensions inside the editor.
const (
	previewWidth  = 56
	previewHeight = 11
)

// editorMode selects which pane has focus.
type editorMode int

const (
	modeBrowse editorMode = iota
	modeEdit
)

// editorModel is the bubbletea model for the catalog editor. Browse mode
// moves through the catalog; edit mode adjusts one entry's arguments with
// a live preview.
type editorModel struct {
	catalog  *catalog.Catalog
	savePath string

	mode   editorMode
	cursor int
	offset int
	height int

	// Edit mode state. draft is a clone; the catalog entry is only
	// replaced on confirm so escape discards the edit.
	draft      catalog.Spec
	paramNames []string
	paramIdx   int

	dirty  bool
	saved  bool
	status string
}

// newEditorModel creates the editor over cat, saving to savePath.
func newEditorModel(cat *catalog.Catalog, savePath string) editorModel {
	return editorModel{
		catalog:  cat,
		savePath: savePath,
		height:   12,
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - previewHeight - 8
		if m.height < 5 {
			m.height = 5
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m editorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.catalog.Shapes)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "enter":
		if len(m.catalog.Shapes) == 0 {
			return m, nil
		}
		m.mode = modeEdit
		m.draft = m.catalog.Shapes[m.cursor].Clone()
		m.paramNames = editableParams(m.draft)
		m.paramIdx = 0
		m.status = ""
	case "d":
		if len(m.catalog.Shapes) == 0 {
			return m, nil
		}
		copySpec := m.catalog.Shapes[m.cursor].Clone()
		copySpec.ID = copySpec.ID + "-" + uuid.NewString()[:8]
		copySpec.Name = copySpec.Name + " (copy)"
		m.catalog.Shapes = append(m.catalog.Shapes, catalog.Spec{})
		copy(m.catalog.Shapes[m.cursor+2:], m.catalog.Shapes[m.cursor+1:])
		m.catalog.Shapes[m.cursor+1] = copySpec
		m.cursor++
		m.dirty = true
		m.status = fmt.Sprintf("duplicated as %s", copySpec.ID)
	case "x":
		if len(m.catalog.Shapes) == 0 {
			return m, nil
		}
		removed := m.catalog.Shapes[m.cursor].ID
		m.catalog.Shapes = append(m.catalog.Shapes[:m.cursor], m.catalog.Shapes[m.cursor+1:]...)
		if m.cursor >= len(m.catalog.Shapes) && m.cursor > 0 {
			m.cursor--
		}
		m.dirty = true
		m.status = fmt.Sprintf("removed %s", removed)
	case "s":
		if err := m.catalog.Save(m.savePath); err != nil {
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.saved = true
		m.dirty = false
		m.status = "saved " + m.savePath
	}
	return m, nil
}

func (m editorModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeBrowse
		m.status = "edit discarded"
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramIdx > 0 {
			m.paramIdx--
		}
	case "down", "j":
		if m.paramIdx < len(m.paramNames)-1 {
			m.paramIdx++
		}
	case "left", "h":
		m.adjustParam(-1)
	case "right", "l":
		m.adjustParam(+1)
	case "enter":
		m.catalog.Shapes[m.cursor] = m.draft
		m.mode = modeBrowse
		m.dirty = true
		m.status = fmt.Sprintf("updated %s", m.draft.ID)
	}
	return m, nil
}

// adjustParam nudges the selected argument by one step in dir.
func (m *editorModel) adjustParam(dir float64) {
	if len(m.paramNames) == 0 {
		return
	}
	name := m.paramNames[m.paramIdx]
	if m.draft.Args == nil {
		m.draft.Args = shape.Args{}
	}
	v := m.draft.Args.Float(name, defaultParamValue(m.draft, name))
	m.draft.Args[name] = v + dir*paramStep(name, v)
}

// paramStep picks a nudge size proportional to the current value. Sample
// counts move in whole tens.
func paramStep(name string, v float64) float64 {
	if name == "num_points" {
		return 10
	}
	step := v * 0.1
	if step < 0 {
		step = -step
	}
	if step < 0.1 {
		step = 0.1
	}
	return step
}

// defaultParamValue resolves the implicit value of an argument the entry
// does not set explicitly.
func defaultParamValue(s catalog.Spec, name string) float64 {
	if name == "num_points" {
		return float64(s.NumPoints())
	}
	return 0
}

// editableParams lists the entry's argument names plus num_points,
// sorted for a stable cursor.
func editableParams(s catalog.Spec) []string {
	names := make([]string, 0, len(s.Args)+1)
	seen := false
	for name := range s.Args {
		if name == "num_points" {
			seen = true
		}
		names = append(names, name)
	}
	if !seen {
		names = append(names, "num_points")
	}
	sort.Strings(names)
	return names
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Shape Catalog Editor"))
	b.WriteString("\n")
	if m.mode == modeEdit {
		b.WriteString(editorDimStyle.Render("↑/↓ parameter  ←/→ adjust  ⏎ apply  esc discard"))
	} else {
		b.WriteString(editorDimStyle.Render("↑/↓ navigate  ⏎ edit  d duplicate  x remove  s save  q quit"))
	}
	b.WriteString("\n\n")

	if m.mode == modeEdit {
		b.WriteString(m.viewEdit())
	} else {
		b.WriteString(m.viewBrowse())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(editorDimStyle.Render(m.status))
	}
	return b.String()
}

func (m editorModel) viewBrowse() string {
	var b strings.Builder

	end := m.offset + m.height
	if end > len(m.catalog.Shapes) {
		end = len(m.catalog.Shapes)
	}
	for i := m.offset; i < end; i++ {
		s := m.catalog.Shapes[i]
		line := fmt.Sprintf("%-24s %-18s %s", s.Name, s.Kind, s.Category)
		if i == m.cursor {
			b.WriteString(editorSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(editorNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(m.catalog.Shapes) == 0 {
		b.WriteString(editorDimStyle.Render("  catalog is empty"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.catalog.Shapes) > 0 {
		b.WriteString(m.preview(m.catalog.Shapes[m.cursor]))
		b.WriteString("\n")
		b.WriteString(editorDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.catalog.Shapes))))
	}
	return b.String()
}

func (m editorModel) viewEdit() string {
	var b strings.Builder

	b.WriteString(editorSelectedStyle.Render(m.draft.Name))
	b.WriteString(editorDimStyle.Render("  " + m.draft.Kind))
	b.WriteString("\n\n")

	for i, name := range m.paramNames {
		v := m.draft.Args.Float(name, defaultParamValue(m.draft, name))
		line := fmt.Sprintf("%-18s %g", name, v)
		if i == m.paramIdx {
			b.WriteString(editorSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(editorNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.preview(m.draft))
	return b.String()
}

// preview renders the entry's waveform, or the generator error when the
// current arguments are invalid.
func (m editorModel) preview(s catalog.Spec) string {
	gen, err := s.Build()
	if err != nil {
		return previewBoxStyle.Render(editorErrorStyle.Render(err.Error()))
	}
	return previewBoxStyle.Render(plotSamples(gen.Generate(), previewWidth, previewHeight))
}
