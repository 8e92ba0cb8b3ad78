// Package testing provides helpers shared by the parser and splitter tests.
package testing

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger writing into a buffer. The
// buffer is echoed through t.Log when the test fails.
func NewTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	t.Cleanup(func() {
		if t.Failed() && buf.Len() > 0 {
			t.Log(buf.String())
		}
	})
	return slog.New(handler), &buf
}
