package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerBasic(t *testing.T) {
	var w syncBuffer
	var out bytes.Buffer
	s := newSpinner(context.Background(), &w, newPrinter(&out), "Testing...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(w.String(), "Testing...") {
		t.Errorf("spinner output = %q, want message", w.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var w syncBuffer
	s := newSpinner(ctx, &w, newPrinter(&bytes.Buffer{}), "Testing with context...")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var w syncBuffer
	s := newSpinner(context.Background(), &w, newPrinter(&bytes.Buffer{}), "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var w syncBuffer
	s := newSpinner(context.Background(), &w, newPrinter(&bytes.Buffer{}), "never started")
	s.Stop()
}

func TestSpinnerStopMessages(t *testing.T) {
	tests := []struct {
		name string
		stop func(*Spinner)
		want string
	}{
		{"success", func(s *Spinner) { s.StopWithSuccess("Done!") }, iconSuccess + " Done!"},
		{"error", func(s *Spinner) { s.StopWithError("Failed!") }, iconError + " Failed!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w syncBuffer
			var out bytes.Buffer
			s := newSpinner(context.Background(), &w, newPrinter(&out), "working")
			s.Start()
			tt.stop(s)
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
