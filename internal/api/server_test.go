package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

const planBody = `{
  "plan": {
    "plotDimensions": {"width": 40, "height": 30},
    "floors": [{"level": "Ground", "rooms": [
      {"name": "Kitchen", "type": "kitchen", "areaSqft": 120},
      {"name": "Dining", "type": "dining", "areaSqft": 150}
    ]}]
  },
  "prompt": "kitchen near dining"
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	return New(pipeline.NewRunner(c, nil, logger), logger, Config{MaxBodyBytes: 4096})
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status": "ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestRequestIDEcho(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q", got)
	}
}

func TestLayout(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/v1/layout", planBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	res, err := plan.UnmarshalResult(rec.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.RoomCount() != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestLayoutInvalid(t *testing.T) {
	tests := []struct {
		name, body, code string
		status           int
	}{
		{"no floors", `{"plan": {"floors": []}}`, "INVALID_INPUT", http.StatusBadRequest},
		{"bad json", `{"plan": `, "INVALID_FORMAT", http.StatusBadRequest},
		{"unknown field", `{"plan": {"floors": []}, "colour": "red"}`, "INVALID_FORMAT", http.StatusBadRequest},
		{"too large", `{"prompt": "` + strings.Repeat("x", 5000) + `"}`, "INVALID_INPUT", http.StatusBadRequest},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/v1/layout", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var res plan.LayoutResult
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
				t.Fatal(err)
			}
			if res.Success || len(res.Errors) != 1 || string(res.Errors[0].Code) != tt.code {
				t.Errorf("result = %+v", res)
			}
		})
	}
}

func TestRender(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/render?format=svg", planBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("X-Cache") != "MISS" {
		t.Errorf("first X-Cache = %q", rec.Header().Get("X-Cache"))
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Error("body is not svg")
	}

	again := do(t, s, http.MethodPost, "/api/v1/render?format=svg", planBody)
	if again.Header().Get("X-Cache") != "HIT" {
		t.Errorf("second X-Cache = %q", again.Header().Get("X-Cache"))
	}

	bad := do(t, s, http.MethodPost, "/api/v1/render?format=gif", planBody)
	if bad.Code != http.StatusBadRequest {
		t.Errorf("gif status = %d", bad.Code)
	}

	missing := do(t, s, http.MethodPost, "/api/v1/render?format=json&floor=Attic", planBody)
	if missing.Code != http.StatusBadRequest {
		t.Errorf("unknown floor status = %d", missing.Code)
	}
}

func TestConstraints(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/constraints", `{"prompt": "bedroom on the left"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report pipeline.ConstraintReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if len(report.Constraints) != 1 || report.Constraints[0].Position != plan.PositionLeft {
		t.Errorf("report = %+v", report)
	}

	dot := do(t, s, http.MethodPost, "/api/v1/constraints?format=dot", `{"prompt": "kitchen near dining"}`)
	if !strings.Contains(dot.Body.String(), "graph constraints") {
		t.Errorf("dot body = %s", dot.Body)
	}
}

func TestRouting(t *testing.T) {
	s := newTestServer(t)
	if rec := do(t, s, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("404 route: status = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/api/v1/layout", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET layout: status = %d", rec.Code)
	}
}

func TestServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
