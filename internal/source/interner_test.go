package source

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("length")
	b := in.Intern("push")
	c := in.Intern("length")

	if a == b {
		t.Fatalf("distinct identifiers must get distinct IDs")
	}
	if a != c {
		t.Fatalf("re-interning the same spelling must return the same ID: %d vs %d", a, c)
	}
	if in.Len() != 3 { // "" + length + push
		t.Fatalf("Len() = %d, want 3", in.Len())
	}
}

func TestInternEmptyStringIsNoStringID(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("empty string must map to NoStringID, got %d", id)
	}
	s, ok := in.Lookup(NoStringID)
	if !ok || s != "" {
		t.Fatalf("NoStringID must resolve to the empty string")
	}
}

func TestLookupRoundTrip(t *testing.T) {
	in := NewInterner()
	// Identifier spellings and substituted dummy names alike round-trip.
	for _, s := range []string{"ident", "useState", "_123", "__computed__", "π"} {
		id := in.Intern(s)
		got, ok := in.Lookup(id)
		if !ok || got != s {
			t.Errorf("Lookup(Intern(%q)) = %q, %v", s, got, ok)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("an ID the interner never issued must not resolve")
	}
}

// The multi-file driver shares one interner across its worker pool; the
// same spelling interned from racing goroutines must converge on one ID.
func TestInternConcurrent(t *testing.T) {
	in := NewInterner()
	const workers = 8
	ids := make([]StringID, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				in.Intern(fmt.Sprintf("shared%d", i))
			}
			ids[w] = in.Intern("exports")
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		if ids[w] != ids[0] {
			t.Fatalf("worker %d got ID %d for %q, worker 0 got %d", w, ids[w], "exports", ids[0])
		}
	}
	if in.Len() != 102 { // "" + shared0..99 + exports
		t.Fatalf("Len() = %d, want 102", in.Len())
	}
}
