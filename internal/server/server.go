// Package server exposes the shape catalog and rendered icons over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dpizetta/mrdiagram/pkg/catalog"
	apperrors "github.com/dpizetta/mrdiagram/pkg/errors"
	"github.com/dpizetta/mrdiagram/pkg/pipeline"
)

// Server serves catalog metadata and icons. Icons are rendered through
// the same pipeline runner as the CLI, so the two share one cache.
type Server struct {
	catalog *catalog.Catalog
	runner  *pipeline.Runner
	logger  *log.Logger
}

// New creates a server over cat. A nil logger falls back to the package
// default.
func New(cat *catalog.Catalog, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{catalog: cat, runner: runner, logger: logger}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/shapes", s.handleListShapes)
	r.Get("/api/shapes/{id}", s.handleGetShape)
	r.Get("/icons/{id}.svg", s.handleIcon(pipeline.FormatSVG))
	r.Get("/icons/{id}.png", s.handleIcon(pipeline.FormatPNG))

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListShapes(w http.ResponseWriter, r *http.Request) {
	specs := s.catalog.Shapes
	if c := r.URL.Query().Get("category"); c != "" {
		cat := catalog.Category(c)
		if !cat.Valid() {
			writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown category %q", c))
			return
		}
		filtered := make([]catalog.Spec, 0, len(specs))
		for _, spec := range specs {
			if spec.Category == cat {
				filtered = append(filtered, spec)
			}
		}
		specs = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{"shapes": specs})
}

// shapeResponse is the detail payload: the catalog entry plus its
// generated waveform.
type shapeResponse struct {
	catalog.Spec
	Samples []float64 `json:"samples"`
}

func (s *Server) handleGetShape(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.catalog.Find(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, apperrors.New(apperrors.ErrCodeNotFound, "no shape %q", chi.URLParam(r, "id")))
		return
	}

	points := spec.NumPoints()
	if p, ok, err := queryInt(r, "points"); err != nil {
		writeError(w, err)
		return
	} else if ok {
		points = p
	}

	gen, err := spec.BuildWithPoints(points)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shapeResponse{Spec: spec, Samples: gen.Generate()})
}

// handleIcon renders one shape in the given format. Query parameters
// width, height, points and stroke override the defaults.
func (s *Server) handleIcon(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, ok := s.catalog.Find(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, apperrors.New(apperrors.ErrCodeNotFound, "no shape %q", chi.URLParam(r, "id")))
			return
		}

		opts := pipeline.Options{}
		var err error
		if opts.Width, _, err = queryInt(r, "width"); err != nil {
			writeError(w, err)
			return
		}
		if opts.Height, _, err = queryInt(r, "height"); err != nil {
			writeError(w, err)
			return
		}
		if opts.PNGSize, _, err = queryInt(r, "size"); err != nil {
			writeError(w, err)
			return
		}
		if opts.NumPoints, _, err = queryInt(r, "points"); err != nil {
			writeError(w, err)
			return
		}
		if v := r.URL.Query().Get("stroke"); v != "" {
			opts.StrokeWidth, err = strconv.ParseFloat(v, 64)
			if err != nil {
				writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid stroke %q", v))
				return
			}
		}

		data, _, err := s.runner.Render(r.Context(), &spec, format, opts)
		if err != nil {
			writeError(w, err)
			return
		}

		switch format {
		case pipeline.FormatSVG:
			w.Header().Set("Content-Type", "image/svg+xml")
		case pipeline.FormatPNG:
			w.Header().Set("Content-Type", "image/png")
		}
		w.Write(data)
	}
}

// queryInt parses an integer query parameter. The boolean reports
// whether the parameter was present.
func queryInt(r *http.Request, name string) (int, bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid %s %q", name, v)
	}
	return n, true, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidParameter,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeUnknownKind:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(apperrors.GetCode(err)),
	})
}
