package trace

import (
	"io"
	"sync"
)

// StreamTracer writes every accepted event to its writer as it arrives.
// Write errors are swallowed: a broken trace pipe must never fail a parse.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
}

// NewStreamTracer creates a tracer writing to w in the given format.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

// Emit renders and writes one event.
func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	line := FormatEvent(ev, t.format)

	t.mu.Lock()
	_, _ = t.w.Write(line) //nolint:errcheck
	t.mu.Unlock()
}

// Flush forwards to the writer when it buffers, otherwise a no-op.
func (t *StreamTracer) Flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes the writer when it is closable.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Level returns the configured verbosity.
func (t *StreamTracer) Level() Level { return t.level }

// Enabled reports whether any event can be accepted.
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
