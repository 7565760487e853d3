package trace

import "context"

type ctxKey struct{}

// WithTracer attaches t to ctx so the CLI's command tree can hand one
// tracer down to whichever driver entry point ends up running.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the attached tracer, or Nop when none is attached.
func FromContext(ctx context.Context) Tracer {
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok && t != nil {
		return t
	}
	return Nop
}
