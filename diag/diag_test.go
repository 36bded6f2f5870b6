package diag

import "testing"

func TestBagCapsAtMax(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Message: "one"}) {
		t.Fatalf("expected first Add to succeed")
	}
	if !b.Add(Diagnostic{Message: "two"}) {
		t.Fatalf("expected second Add to succeed")
	}
	if b.Add(Diagnostic{Message: "three"}) {
		t.Fatalf("expected third Add to be dropped at capacity 2")
	}
	if b.Count() != 2 {
		t.Fatalf("expected Count() == 2, got %d", b.Count())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(Diagnostic{Severity: SevWarning, Message: "just a warning"})
	if b.HasErrors() {
		t.Fatalf("expected HasErrors() == false with only a warning")
	}
	b.Add(Diagnostic{Severity: SevError, Message: "an error"})
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors() == true once an error is added")
	}
}

func TestBagSortOrdersByPositionThenSeverity(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Line: 5, Col: 1, Severity: SevWarning, Message: "later line"})
	b.Add(Diagnostic{Line: 2, Col: 9, Severity: SevWarning, Message: "earlier line, later col"})
	b.Add(Diagnostic{Line: 2, Col: 3, Severity: SevWarning, Message: "earlier line, earlier col, warning"})
	b.Add(Diagnostic{Line: 2, Col: 3, Severity: SevError, Message: "earlier line, earlier col, error"})

	b.Sort()
	items := b.Items()
	want := []string{
		"earlier line, earlier col, error",
		"earlier line, earlier col, warning",
		"earlier line, later col",
		"later line",
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i].Message != w {
			t.Fatalf("item %d: expected %q, got %q", i, w, items[i].Message)
		}
	}
}

func TestClassString(t *testing.T) {
	cases := map[Class]string{
		IOError:         "IO_ERROR",
		LexError:        "LEX_ERROR",
		ParseError:      "PARSE_ERROR",
		SemanticWarning: "SEMANTIC_WARNING",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", c, got, want)
		}
	}
}
