package diag

import (
	"fmt"

	"fortio.org/safecast"
)

// Bag is the ordered diagnostic list one parse fills. Order is load-bearing:
// recovery mode appends diagnostics as the cursor meets them, so the list
// reads in source order, and speculative parses undo their own tail with
// Truncate on rewind. Nothing here reorders entries behind the producer's
// back.
type Bag struct {
	items []*Diagnostic
	limit uint16
}

// NewBag creates a Bag that silently drops diagnostics beyond maximum —
// the cap that keeps a pathological input from flooding a consumer.
func NewBag(maximum int) *Bag {
	capped, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("bag maximum overflow: %w", err))
	}
	return &Bag{
		items: make([]*Diagnostic, 0, capped),
		limit: capped,
	}
}

// Add appends d, reporting false when the cap has been reached and the
// diagnostic was dropped.
func (b *Bag) Add(d *Diagnostic) bool {
	if len(b.items) >= int(b.limit) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len returns the number of held diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the held diagnostics in emission order. The slice is the
// Bag's own backing store; callers must not append to it.
func (b *Bag) Items() []*Diagnostic { return b.items }

// Truncate discards every diagnostic after the first n — the rewind half
// of the checkpoint protocol, and what fatal finalization uses to drop
// everything recorded after the fault.
func (b *Bag) Truncate(n int) {
	if n < 0 || n >= len(b.items) {
		return
	}
	b.items = b.items[:n]
}

// HasErrors reports whether any held diagnostic is SevError.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any held diagnostic is SevWarning.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Severity == SevWarning {
			return true
		}
	}
	return false
}

// Filter keeps only the diagnostics predicate accepts, preserving order —
// how Flow-pragma finalization clears a JS file's parse errors before
// substituting the single not-supported diagnostic.
func (b *Bag) Filter(predicate func(*Diagnostic) bool) {
	kept := b.items[:0]
	for _, d := range b.items {
		if predicate(d) {
			kept = append(kept, d)
		}
	}
	b.items = kept
}
