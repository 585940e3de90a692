package cli

import (
	"strings"
	"testing"

	"github.com/dpizetta/mrdiagram/pkg/shape"
)

func TestPlotSamplesDimensions(t *testing.T) {
	gen, err := shape.NewRampUp(100)
	if err != nil {
		t.Fatalf("NewRampUp: %v", err)
	}
	plot := plotSamples(gen.Generate(), 40, 9)

	lines := strings.Split(plot, "\n")
	if len(lines) != 9 {
		t.Fatalf("plot has %d lines, want 9", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 40 {
			t.Errorf("line %d has %d columns, want 40", i, n)
		}
	}
}

func TestPlotSamplesRampCorners(t *testing.T) {
	gen, err := shape.NewRampUp(100)
	if err != nil {
		t.Fatalf("NewRampUp: %v", err)
	}
	lines := strings.Split(plotSamples(gen.Generate(), 40, 9), "\n")

	// A rising ramp starts at the bottom-left and ends at the top-right.
	if []rune(lines[8])[0] != '●' {
		t.Error("first sample not at the bottom row")
	}
	if []rune(lines[0])[39] != '●' {
		t.Error("last sample not at the top row")
	}
}

func TestPlotSamplesMidline(t *testing.T) {
	lines := strings.Split(plotSamples([]float64{0, 0, 0}, 10, 5), "\n")
	if !strings.Contains(lines[2], "●") {
		t.Error("zero samples not plotted on the midline row")
	}
}

func TestPlotSamplesEmpty(t *testing.T) {
	if plotSamples(nil, 40, 9) != "" {
		t.Error("empty input produced a plot")
	}
	if plotSamples([]float64{1}, 0, 9) != "" {
		t.Error("zero width produced a plot")
	}
}
