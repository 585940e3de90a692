package cli

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
	"github.com/dpizetta/mrdiagram/pkg/shape"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func editorFixture(t *testing.T) editorModel {
	t.Helper()
	cat := &catalog.Catalog{Shapes: []catalog.Spec{
		{ID: "a", Name: "A", Kind: shape.KindRampUp, Category: catalog.CategoryGradient},
		{ID: "b", Name: "B", Kind: shape.KindSinc, Category: catalog.CategoryRF,
			Args: shape.Args{"bandwidth": 2}},
	}}
	return newEditorModel(cat, filepath.Join(t.TempDir(), "shapes.json"))
}

func update(t *testing.T, m editorModel, keys ...string) editorModel {
	t.Helper()
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	out, ok := model.(editorModel)
	if !ok {
		t.Fatalf("model is %T, want editorModel", model)
	}
	return out
}

func TestEditorDuplicate(t *testing.T) {
	m := update(t, editorFixture(t), "d")

	if len(m.catalog.Shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(m.catalog.Shapes))
	}
	dup := m.catalog.Shapes[1]
	if !strings.HasPrefix(dup.ID, "a-") || dup.ID == "a" {
		t.Errorf("duplicate ID = %q, want fresh a- prefix", dup.ID)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (on the duplicate)", m.cursor)
	}
	if !m.dirty {
		t.Error("duplicate did not mark the catalog dirty")
	}
}

func TestEditorRemove(t *testing.T) {
	m := update(t, editorFixture(t), "x")

	if len(m.catalog.Shapes) != 1 || m.catalog.Shapes[0].ID != "b" {
		t.Fatalf("shapes after remove = %+v", m.catalog.Shapes)
	}
	if !m.dirty {
		t.Error("remove did not mark the catalog dirty")
	}
}

func TestEditorEditAdjustsDraftOnly(t *testing.T) {
	m := update(t, editorFixture(t), "down", "enter")
	if m.mode != modeEdit {
		t.Fatalf("mode = %v, want edit", m.mode)
	}

	before := m.catalog.Shapes[1].Args.Float("bandwidth", 0)
	m = update(t, m, "right")
	if got := m.catalog.Shapes[1].Args.Float("bandwidth", 0); got != before {
		t.Errorf("adjust leaked into the catalog: %v", got)
	}
	if m.draft.Args.Float("bandwidth", 0) == before {
		t.Error("adjust did not change the draft")
	}

	m = update(t, m, "esc")
	if m.mode != modeBrowse {
		t.Error("esc did not leave edit mode")
	}
	if m.catalog.Shapes[1].Args.Float("bandwidth", 0) != before {
		t.Error("discarded edit changed the catalog")
	}
}

func TestEditorApplyAndSave(t *testing.T) {
	m := update(t, editorFixture(t), "down", "enter", "right", "enter")
	if m.catalog.Shapes[1].Args.Float("bandwidth", 0) == 2 {
		t.Error("apply did not update the catalog")
	}

	m = update(t, m, "s")
	if !m.saved {
		t.Fatalf("save failed: %s", m.status)
	}
	loaded, err := catalog.Load(m.savePath)
	if err != nil {
		t.Fatalf("load saved catalog: %v", err)
	}
	if len(loaded.Shapes) != 2 {
		t.Errorf("saved catalog has %d shapes, want 2", len(loaded.Shapes))
	}
}

func TestEditableParams(t *testing.T) {
	spec := catalog.Spec{Args: shape.Args{"bandwidth": 2, "num_lobes": 4}}
	got := editableParams(spec)
	want := []string{"bandwidth", "num_lobes", "num_points"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("editableParams = %v, want %v", got, want)
	}
}

func TestParamStep(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"num_points", 100, 10},
		{"bandwidth", 2, 0.2},
		{"phase", 0, 0.1},
		{"offset", -5, 0.5},
	}
	for _, tt := range tests {
		if got := paramStep(tt.name, tt.v); got != tt.want {
			t.Errorf("paramStep(%q, %g) = %g, want %g", tt.name, tt.v, got, tt.want)
		}
	}
}
