package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type countingHooks struct {
	NoopPipelineHooks
	starts, completes int
}

func (c *countingHooks) OnLayoutStart(context.Context, int, int) { c.starts++ }
func (c *countingHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {
	c.completes++
}

func TestRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("default pipeline hooks are not no-op")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("default cache hooks are not no-op")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("default HTTP hooks are not no-op")
	}

	h := &countingHooks{}
	SetPipelineHooks(h)
	SetPipelineHooks(nil)
	Pipeline().OnLayoutStart(context.Background(), 1, 3)
	Pipeline().OnLayoutComplete(context.Background(), 0, time.Millisecond, nil)
	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts=%d completes=%d", h.starts, h.completes)
	}

	Reset()
	if Pipeline() == PipelineHooks(h) {
		t.Error("Reset kept custom hooks")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Install()

	ctx := context.Background()
	Pipeline().OnLayoutStart(ctx, 2, 7)
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, errors.New("boom"))
	Cache().OnCacheHit(ctx, "layout")
	HTTP().OnResponse(ctx, "POST", "/api/v1/layout", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"layout start", "rooms=7", "render failed", "boom", "cache hit", "kind=layout", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksNilLogger(t *testing.T) {
	if NewLogHooks(nil).Logger == nil {
		t.Error("nil logger not defaulted")
	}
}
