package intern

import "testing"

func TestIDOfIsIdempotent(t *testing.T) {
	tbl := New()
	a1 := tbl.IDOf("alpha")
	a2 := tbl.IDOf("alpha")
	if a1 != a2 {
		t.Fatalf("expected repeated IDOf(%q) to return the same id, got %d and %d", "alpha", a1, a2)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected exactly one interned entry, got %d", tbl.Len())
	}
}

func TestIDOfDistinctStrings(t *testing.T) {
	tbl := New()
	a := tbl.IDOf("a")
	b := tbl.IDOf("b")
	if a == b {
		t.Fatalf("expected distinct ids for distinct strings")
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected two interned entries, got %d", tbl.Len())
	}
}

func TestViewRoundTrips(t *testing.T) {
	tbl := New()
	id := tbl.IDOf("carry_out")
	if got := tbl.View(id); got != "carry_out" {
		t.Fatalf("View(IDOf(%q)) = %q", "carry_out", got)
	}
}

func TestViewOutOfRange(t *testing.T) {
	tbl := New()
	if got := tbl.View(ID(42)); got != "" {
		t.Fatalf("expected empty string for an unallocated id, got %q", got)
	}
}
