package gctx

import "testing"

func TestContextDefault(t *testing.T) {
	if !Default.HasIn() {
		t.Fatalf("Default context must have [In] set")
	}
	if Default.HasYield() || Default.HasAwait() || Default.HasReturn() {
		t.Fatalf("Default context must not have Yield/Await/Return set")
	}
}

func TestContextSaveMutateRestore(t *testing.T) {
	c := Default
	saved := c
	c = c.WithYield(true).WithAwait(true)
	if !c.HasYield() || !c.HasAwait() {
		t.Fatalf("expected Yield and Await set after With*")
	}
	c = saved
	if c.HasYield() || c.HasAwait() {
		t.Fatalf("restoring the saved context must clear mutations")
	}
}

func TestContextWithWithout(t *testing.T) {
	c := Default.With(StrictMode | Ambient)
	if !c.IsStrict() || !c.IsAmbient() {
		t.Fatalf("With must set both bits")
	}
	c = c.Without(Ambient)
	if c.IsAmbient() {
		t.Fatalf("Without must clear Ambient")
	}
	if !c.IsStrict() {
		t.Fatalf("Without must not clear unrelated bits")
	}
}

func TestContextToggleIdempotent(t *testing.T) {
	c := Default
	for i := 0; i < 3; i++ {
		c = c.WithReturn(true)
	}
	if !c.HasReturn() {
		t.Fatalf("repeated WithReturn(true) must remain set")
	}
	c = c.WithReturn(false)
	if c.HasReturn() {
		t.Fatalf("WithReturn(false) must clear")
	}
}
