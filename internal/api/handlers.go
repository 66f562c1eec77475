package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	ferrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// LayoutRequest is the body of /layout and /render.
type LayoutRequest struct {
	Plan    plan.PlanData    `json:"plan"`
	Prompt  string           `json:"prompt,omitempty"`
	Options pipeline.Options `json:"options"`
}

// ConstraintsRequest is the body of /constraints.
type ConstraintsRequest struct {
	Prompt string `json:"prompt"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Current()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, err := decode[LayoutRequest](r)
	if err != nil {
		writeFailed(w, err)
		return
	}
	opts := s.options(req)

	res, err := s.runner.Layout(r.Context(), req.Plan, opts)
	if err != nil {
		writeFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := decode[LayoutRequest](r)
	if err != nil {
		writeFailed(w, err)
		return
	}
	opts := s.options(req)

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeFailed(w, err)
		return
	}
	if floor := r.URL.Query().Get("floor"); floor != "" {
		opts.Floor = floor
	}
	opts.Formats = []string{format}

	res, err := s.runner.Layout(r.Context(), req.Plan, opts)
	if err != nil {
		writeFailed(w, err)
		return
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), res, opts)
	if err != nil {
		writeFailed(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheHeader(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) handleConstraints(w http.ResponseWriter, r *http.Request) {
	req, err := decode[ConstraintsRequest](r)
	if err != nil {
		writeFailed(w, err)
		return
	}
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = pipeline.FormatJSON
	}

	data, err := pipeline.RenderConstraints(r.Context(), req.Prompt, format)
	if err != nil {
		writeFailed(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// options merges the server defaults with the request.
func (s *Server) options(req LayoutRequest) pipeline.Options {
	opts := req.Options
	d := s.cfg.Defaults
	if opts.WindowMode == "" {
		opts.WindowMode = d.WindowMode
	}
	if opts.Scale == 0 {
		opts.Scale = d.Scale
	}
	if opts.PNGScale == 0 {
		opts.PNGScale = d.PNGScale
	}
	opts.NoRepair = opts.NoRepair || d.NoRepair
	opts.NoMergeWalls = opts.NoMergeWalls || d.NoMergeWalls
	opts.Adjacency = opts.Adjacency || d.Adjacency
	if req.Prompt != "" {
		opts.Prompt = req.Prompt
	}
	opts.Logger = s.logger
	return opts
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return v, ferrors.New(ferrors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return v, ferrors.New(ferrors.ErrCodeInvalidFormat, "decode request body: %v", err)
	}
	return v, nil
}

// writeFailed reports err as a failed layout result.
func writeFailed(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), pipeline.FailedResult(err))
}

func statusFor(err error) int {
	switch ferrors.GetCode(err) {
	case ferrors.ErrCodeInvalidInput, ferrors.ErrCodeInvalidFormat, ferrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case ferrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, `{"code":"INTERNAL_ERROR","message":%q}`, err.Error())
	}
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
