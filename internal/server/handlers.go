package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/history"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/jmylchreest/tonal/internal/version"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// GradeView describes one grade and its accepted luminance range.
type GradeView struct {
	Grade grade.Grade `json:"grade"`
	Min   float64     `json:"min"`
	Max   float64     `json:"max"`
}

// CheckResponse is returned by POST /api/v1/check.
type CheckResponse struct {
	Color     string           `json:"color"`
	Grade     grade.Grade      `json:"grade"`
	Luminance colour.Luminance `json:"luminance"`
	HSL       string           `json:"hsl"`
	Check     grade.Result     `json:"check"`
}

// SetColorResponse is returned by POST /api/v1/palette/color.
type SetColorResponse struct {
	DidUpdate bool        `json:"did_update"`
	Palette   PaletteView `json:"palette"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Version: version.Short()})
}

func (s *Server) handleListGrades(w http.ResponseWriter, _ *http.Request) {
	gs := grade.Grades()
	out := make([]GradeView, len(gs))
	for i, g := range gs {
		b, _ := grade.Bounds(g)
		out[i] = GradeView{Grade: g, Min: b.Min, Max: b.Max}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	g := grade.Grade(*req.Grade)
	s.writeJSON(w, http.StatusOK, CheckResponse{
		Color:     req.Color,
		Grade:     g,
		Luminance: colour.LuminanceOf(req.Color),
		HSL:       colour.HSLString(req.Color),
		Check:     grade.Check(req.Color, g),
	})
}

// handleGetPalette returns the palette addressed by the request's query
// string. A malformed token is rejected rather than silently replaced so API
// clients notice.
func (s *Server) handleGetPalette(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadPalette(history.TokenFromQuery(r.URL.RawQuery))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.view(p)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSetColor(w http.ResponseWriter, r *http.Request) {
	var req SetColorRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := s.loadPalette(req.Config)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	next, didUpdate := palette.SetColor(p, req.Scale, grade.Grade(*req.Grade), req.Color)
	view, err := s.view(next)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Debug("set colour", "scale", req.Scale, "grade", *req.Grade, "color", req.Color, "updated", didUpdate)
	s.writeJSON(w, http.StatusOK, SetColorResponse{DidUpdate: didUpdate, Palette: view})
}

func (s *Server) loadPalette(token string) (palette.Palette, error) {
	p, err := history.InitialPalette(token)
	if err != nil {
		s.logger.Debug("rejected palette token", "error", err)
		return nil, err
	}
	return p, nil
}

func (s *Server) view(p palette.Palette) (PaletteView, error) {
	token, err := history.Encode(p)
	if err != nil {
		return PaletteView{}, err
	}
	return newPaletteView(p, history.Location(token)), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		resp.Fields = reqErr.Fields
	}
	s.writeJSON(w, status, resp)
}
