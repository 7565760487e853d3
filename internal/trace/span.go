package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number, shared by
// every tracer so merged outputs stay ordered.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID returns a process-unique span identifier.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// Span pairs a begin event with its eventual end. The zero-cost path
// matters: a disabled tracer returns an inert span, so production-level
// instrumentation can stay unconditionally in the parser's hot loops.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
}

// Begin opens a span and emits its KindBegin event, unless the tracer's
// level filters the scope out — then the returned span is inert and End is
// a no-op.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{tracer: Nop}
	}
	id := NextSpanID()
	now := time.Now()
	t.Emit(&Event{
		Time:     now,
		Kind:     KindBegin,
		Scope:    scope,
		SpanID:   id,
		ParentID: parent,
		Name:     name,
	})
	return &Span{tracer: t, id: id, parent: parent, scope: scope, name: name, started: now}
}

// End closes the span, attaching an optional detail string, and returns
// how long it was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() {
		return 0
	}
	dur := time.Since(s.started)
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   detail,
	})
	return dur
}

// ID returns the span's identifier, for parenting nested spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits a standalone event — the shape recovery decisions use:
// name is the decision ("sync:skip", "sync:abort"), detail the parsing
// context it happened in, offset the byte position of the offending token.
func Point(t Tracer, scope Scope, name, detail string, offset uint32) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:   time.Now(),
		Kind:   KindPoint,
		Scope:  scope,
		Name:   name,
		Detail: detail,
		Offset: offset,
	})
}
