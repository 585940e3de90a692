// Package catalog defines the shape database: named, catalogued waveform
// entries with identity, generator selection and descriptive metadata.
//
// A catalog is stored as a JSON document with a single "shapes" array. Each
// entry selects a generator kind from [shape] and carries a free-form
// argument record that is handed to the generator registry unchanged. The
// descriptive fields (selectivity, duration, SAR, usage, tags) are consumed
// by the editor and the renderers for display only; the core formulas never
// read them.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dpizetta/mrdiagram/pkg/errors"
	"github.com/dpizetta/mrdiagram/pkg/shape"
)

// Category classifies a shape for styling and output grouping.
type Category string

// Known categories. General is the fallback for entries that do not fit a
// specific event type.
const (
	CategoryRF       Category = "RF"
	CategorySignal   Category = "Signal"
	CategoryGradient Category = "Gradient"
	CategoryTrigger  Category = "Trigger"
	CategoryFlag     Category = "Flag"
	CategoryGeneral  Category = "General"
)

// Categories lists the known categories in display order.
func Categories() []Category {
	return []Category{CategoryRF, CategorySignal, CategoryGradient, CategoryTrigger, CategoryFlag, CategoryGeneral}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryRF, CategorySignal, CategoryGradient, CategoryTrigger, CategoryFlag, CategoryGeneral:
		return true
	}
	return false
}

// Dir returns the output directory name for the category (lowercase).
func (c Category) Dir() string {
	switch c {
	case CategoryRF:
		return "rf"
	case CategorySignal:
		return "signal"
	case CategoryGradient:
		return "gradient"
	case CategoryTrigger:
		return "trigger"
	case CategoryFlag:
		return "flag"
	default:
		return "general"
	}
}

// Spec is one catalogued shape entry. The core generators only ever see the
// (Kind, Args) pair; everything else is presentation metadata owned by the
// editor.
type Spec struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	Category    Category   `json:"category"`
	Args        shape.Args `json:"args,omitempty"`
	Selectivity string     `json:"selectivity,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	SAR         string     `json:"sar,omitempty"`
	Description string     `json:"description,omitempty"`
	Usage       string     `json:"usage,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// NumPoints returns the sample count for the entry: the num_points argument
// if present, otherwise [shape.DefaultNumPoints].
func (s Spec) NumPoints() int {
	return s.Args.Int("num_points", shape.DefaultNumPoints)
}

// ShapeArgs returns the argument record without the num_points entry, which
// is passed to generators separately.
func (s Spec) ShapeArgs() shape.Args {
	if _, ok := s.Args["num_points"]; !ok {
		return s.Args
	}
	out := make(shape.Args, len(s.Args))
	for k, v := range s.Args {
		if k != "num_points" {
			out[k] = v
		}
	}
	return out
}

// Build constructs the generator the entry describes.
func (s Spec) Build() (shape.Generator, error) {
	return shape.New(s.Kind, s.NumPoints(), s.ShapeArgs())
}

// BuildWithPoints is Build with the sample count overridden.
func (s Spec) BuildWithPoints(numPoints int) (shape.Generator, error) {
	return shape.New(s.Kind, numPoints, s.ShapeArgs())
}

// Clone returns a deep copy of the spec. The editor mutates clones so a
// cancelled edit never touches the stored entry.
func (s Spec) Clone() Spec {
	out := s
	if s.Args != nil {
		out.Args = make(shape.Args, len(s.Args))
		for k, v := range s.Args {
			out.Args[k] = v
		}
	}
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	return out
}

// Catalog is an ordered collection of shape specs.
type Catalog struct {
	Shapes []Spec `json:"shapes"`
}

// Find returns the spec with the given ID, or false if absent.
func (c *Catalog) Find(id string) (Spec, bool) {
	for _, s := range c.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// ByCategory groups the specs by category, preserving entry order within
// each group.
func (c *Catalog) ByCategory() map[Category][]Spec {
	out := make(map[Category][]Spec)
	for _, s := range c.Shapes {
		out[s.Category] = append(out[s.Category], s)
	}
	return out
}

// Validate checks structural catalog invariants: non-empty unique IDs,
// non-empty kinds and known categories. Unknown generator kinds are not
// rejected here; they surface per-entry when the generator is built, so a
// single bad entry cannot block a batch run.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Shapes))
	for i, s := range c.Shapes {
		if s.ID == "" {
			return errors.New(errors.ErrCodeInvalidCatalog, "shape %d: missing id", i)
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeInvalidCatalog, "duplicate shape id: %q", s.ID)
		}
		seen[s.ID] = true
		if s.Kind == "" {
			return errors.New(errors.ErrCodeInvalidCatalog, "shape %q: missing kind", s.ID)
		}
		if s.Category != "" && !s.Category.Valid() {
			return errors.New(errors.ErrCodeInvalidCatalog, "shape %q: unknown category %q", s.ID, s.Category)
		}
	}
	return nil
}

// Read decodes and validates a catalog from r.
func Read(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog from the JSON file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Write encodes the catalog as indented JSON to w.
func (c *Catalog) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// Save writes the catalog to the JSON file at path.
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return c.Write(f)
}
