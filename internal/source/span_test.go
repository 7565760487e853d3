package source

import "testing"

func TestSpanLenAndEmpty(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		len   uint32
		empty bool
	}{
		{"token", Span{Start: 4, End: 10}, 6, false},
		{"single byte", Span{Start: 7, End: 8}, 1, false},
		{"asi insertion point", Span{Start: 12, End: 12}, 0, true},
		{"file start", Span{Start: 0, End: 0}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
			if got := tt.span.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestSpanBeforeAfter(t *testing.T) {
	sp := Span{File: 2, Start: 5, End: 9}

	before := sp.Before()
	if before != (Span{File: 2, Start: 5, End: 5}) {
		t.Errorf("Before() = %+v", before)
	}
	after := sp.After()
	if after != (Span{File: 2, Start: 9, End: 9}) {
		t.Errorf("After() = %+v", after)
	}
	if !before.Empty() || !after.Empty() {
		t.Errorf("Before/After must produce zero-width spans")
	}
	// Idempotent: collapsing a collapsed span changes nothing.
	if before.Before() != before || after.After() != after {
		t.Errorf("collapsing a zero-width span must be a no-op")
	}
}

// To models the opener-to-closer merge: `(` at 3..4 merged with `)` at 9..10
// spans the whole parenthesized construct.
func TestSpanTo(t *testing.T) {
	opener := Span{File: 1, Start: 3, End: 4}
	closer := Span{File: 1, Start: 9, End: 10}
	if got := opener.To(closer); got != (Span{File: 1, Start: 3, End: 10}) {
		t.Errorf("To() = %+v", got)
	}

	// A closer that ends before the opener (recovery produced it out of
	// order) leaves the opener's span intact.
	if got := closer.To(opener); got != closer {
		t.Errorf("backwards To() must be a no-op, got %+v", got)
	}

	// Cross-file merges don't happen.
	other := Span{File: 2, Start: 50, End: 60}
	if got := opener.To(other); got != opener {
		t.Errorf("cross-file To() must be a no-op, got %+v", got)
	}
}

func TestSpanContains(t *testing.T) {
	sp := Span{Start: 10, End: 14}
	for _, off := range []uint32{10, 11, 13} {
		if !sp.Contains(off) {
			t.Errorf("Contains(%d) = false, want true", off)
		}
	}
	// Half-open: End is outside.
	for _, off := range []uint32{9, 14, 100} {
		if sp.Contains(off) {
			t.Errorf("Contains(%d) = true, want false", off)
		}
	}
	if (Span{Start: 5, End: 5}).Contains(5) {
		t.Errorf("an empty span contains nothing")
	}
}

func TestSpanString(t *testing.T) {
	if got := (Span{File: 3, Start: 1, End: 8}).String(); got != "3:1-8" {
		t.Errorf("String() = %q", got)
	}
}
