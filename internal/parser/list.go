package parser

import (
	"fmt"

	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/recovery"
	"ecmaparser/internal/token"
	"ecmaparser/internal/trace"
)

// ParseList drives the generic "zero or more elements, no separator, some
// terminator" production loop shared by block bodies, class bodies, type
// member lists, switch clause lists, and the like: push ctx, call element
// for every token elementStart recognizes, and hand anything else to the
// synchronization engine. element returns the node it built; it must report
// ok=false without consuming a token if and only if it genuinely could not
// start (letting Synchronize decide whether to skip or abort), never as a
// way to silently swallow a token it already consumed.
func ParseList(c *Cursor, ctx pctx.Context, elementStart func(token.Kind) bool, element func() (ast.NodeID, bool)) []ast.NodeID {
	c.Stack.Push(ctx)
	defer c.Stack.Pop()
	sp := trace.Begin(c.Tracer(), trace.ScopeProduction, ctx.String(), 0)
	defer sp.End("")

	var out []ast.NodeID
	for {
		if c.Fatal() {
			return out
		}
		if recovery.IsContextTerminator(ctx, c.Cur().Kind) {
			return out
		}
		if elementStart(c.Cur().Kind) {
			startOff := c.Cur().Span.Start
			id, ok := element()
			if ok {
				out = append(out, id)
				continue
			}
			if c.Cur().Span.Start != startOff {
				continue
			}
		}
		reportUnexpectedListToken(c, ctx)
		decision := recovery.Synchronize(c.opts.RecoverFromErrors, c.Stack, ctx, c.Cur().Kind, func() { c.Bump() })
		c.traceSync(ctx, decision)
		if decision == recovery.Abort {
			return out
		}
	}
}

// reportUnexpectedListToken emits the diagnostic for a token that could not
// start an element of ctx, before the synchronization engine decides whether
// to skip past it or abort the list — Synchronize itself never reports
// anything, it only decides Skip vs Abort.
func reportUnexpectedListToken(c *Cursor, ctx pctx.Context) {
	c.Fault(diag.SynExpectedToken, c.Cur().Span, fmt.Sprintf("unexpected token in %s", ctx))
}

// ParseCommaList drives the `elem (',' elem)* ','?` shape shared by
// parameter lists, argument lists, array/object literal members, and
// type-parameter/type-argument lists. close is the token that ends the
// list on the happy path (not consumed here); closing the delimiter pair
// itself is the caller's job, since callers differ on whether it is `)`,
// `]`, `}`, or a re-lexed `>`.
func ParseCommaList(c *Cursor, ctx pctx.Context, close token.Kind, elementStart func(token.Kind) bool, element func() (ast.NodeID, bool)) []ast.NodeID {
	c.Stack.Push(ctx)
	defer c.Stack.Pop()
	sp := trace.Begin(c.Tracer(), trace.ScopeProduction, ctx.String(), 0)
	defer sp.End("")

	var out []ast.NodeID
	for {
		if c.Fatal() || c.At(close) {
			return out
		}
		if recovery.IsContextTerminator(ctx, c.Cur().Kind) {
			return out
		}
		if elementStart(c.Cur().Kind) {
			startOff := c.Cur().Span.Start
			id, ok := element()
			if ok {
				out = append(out, id)
				if c.At(token.Comma) {
					commaSpan := c.Cur().Span
					c.Bump()
					if c.At(close) {
						c.State.TrailingCommas[startOff] = commaSpan
					}
					continue
				}
				if c.At(close) {
					return out
				}
				// No comma and no closer: fall through to synchronization
				// rather than looping on the same element again.
			} else if c.Cur().Span.Start != startOff {
				continue
			}
		}
		reportUnexpectedListToken(c, ctx)
		decision := recovery.Synchronize(c.opts.RecoverFromErrors, c.Stack, ctx, c.Cur().Kind, func() { c.Bump() })
		c.traceSync(ctx, decision)
		if decision == recovery.Abort {
			return out
		}
	}
}
