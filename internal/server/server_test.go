package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
	"github.com/dpizetta/mrdiagram/pkg/pipeline"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(os.Stderr)
	logger.SetLevel(log.FatalLevel)

	srv := New(catalog.Default(), pipeline.NewRunner(nil, logger), logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListShapes(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts.URL+"/api/shapes")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Shapes []catalog.Spec `json:"shapes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Shapes) != len(catalog.Default().Shapes) {
		t.Errorf("got %d shapes, want %d", len(body.Shapes), len(catalog.Default().Shapes))
	}
}

func TestListShapesCategoryFilter(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts.URL+"/api/shapes?category=Signal")
	var body struct {
		Shapes []catalog.Spec `json:"shapes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, s := range body.Shapes {
		if s.Category != catalog.CategorySignal {
			t.Errorf("shape %s has category %s", s.ID, s.Category)
		}
	}
	if len(body.Shapes) == 0 {
		t.Error("no signal shapes returned")
	}

	if resp := get(t, ts.URL+"/api/shapes?category=Bogus"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown category status = %d, want 400", resp.StatusCode)
	}
}

func TestGetShape(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts.URL+"/api/shapes/rf-sinc?points=50")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		ID      string    `json:"id"`
		Samples []float64 `json:"samples"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ID != "rf-sinc" {
		t.Errorf("id = %q, want rf-sinc", body.ID)
	}
	if len(body.Samples) != 50 {
		t.Errorf("got %d samples, want 50", len(body.Samples))
	}
}

func TestGetShapeNotFound(t *testing.T) {
	ts := testServer(t)
	if resp := get(t, ts.URL+"/api/shapes/nope"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetShapeBadPoints(t *testing.T) {
	ts := testServer(t)
	if resp := get(t, ts.URL+"/api/shapes/rf-sinc?points=many"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSVGIcon(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts.URL+"/icons/rf-sinc.svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}

	buf := make([]byte, 512)
	n, _ := resp.Body.Read(buf)
	if !strings.Contains(string(buf[:n]), "<svg") {
		t.Error("body is not SVG markup")
	}
}

func TestPNGIcon(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts.URL+"/icons/grad-trapezoid.png?size=32")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestIconInvalidArgs(t *testing.T) {
	ts := testServer(t)

	tests := []string{
		"/icons/nope.svg",
		"/icons/rf-sinc.svg?width=wide",
		"/icons/rf-sinc.svg?stroke=thick",
	}
	for _, path := range tests {
		resp := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusNotFound && resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 4xx", path, resp.StatusCode)
		}
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t)
	if resp := get(t, ts.URL+"/healthz"); resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
