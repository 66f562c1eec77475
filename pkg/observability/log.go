package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements all
// three hook interfaces.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger, or log.Default when nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Install registers h for pipeline, cache, and HTTP events.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, floors, rooms int) {
	h.Logger.Debug("layout start", "floors", floors, "rooms", rooms)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, warnings int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("layout failed", "duration", d, "err", err)
		return
	}
	h.Logger.Debug("layout done", "warnings", warnings, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "formats", formats, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render done", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string) {
	h.Logger.Debug("cache hit", "kind", kind)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) {
	h.Logger.Debug("cache miss", "kind", kind)
}

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.Logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
