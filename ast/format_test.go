package ast

import (
	"testing"

	"github.com/RazKarapetyan/Parser-Verilog/intern"
)

func TestPortFormat(t *testing.T) {
	tbl := intern.New()
	a := tbl.IDOf("a")
	b := tbl.IDOf("b")

	cases := []struct {
		name string
		port Port
		want string
	}{
		{"scalar input", Port{Names: []intern.ID{a}, Range: Range{Beg: -1, End: -1}, Dir: Input}, "input a"},
		{"ranged output wire", Port{Names: []intern.ID{a, b}, Range: Range{Beg: 3, End: 0}, Dir: Output, Type: WireConnection}, "output wire [3:0] a, b"},
		{"inout reg", Port{Names: []intern.ID{a}, Range: Range{Beg: -1, End: -1}, Dir: Inout, Type: RegConnection}, "inout reg a"},
	}
	for _, c := range cases {
		if got := c.port.Format(tbl); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestNetFormat(t *testing.T) {
	tbl := intern.New()
	w := tbl.IDOf("w")

	n := Net{Names: []intern.ID{w}, Range: Range{Beg: 7, End: 0}, Type: WireNet}
	if got, want := n.Format(tbl), "wire [7:0] w"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatConcatCollapsesSingleElement(t *testing.T) {
	tbl := intern.New()
	a := tbl.IDOf("a")

	got := FormatConcat([]NetRef{WholeRef{Name: a}}, tbl)
	if got != "a" {
		t.Errorf("expected single-element concat to collapse to bare name, got %q", got)
	}
}

func TestFormatConcatEmptyIsBlank(t *testing.T) {
	tbl := intern.New()
	if got := FormatConcat(nil, tbl); got != "" {
		t.Errorf("expected an unconnected pin to format as empty, got %q", got)
	}
}

func TestFormatConcatMultipleElements(t *testing.T) {
	tbl := intern.New()
	a := tbl.IDOf("a")
	b := tbl.IDOf("b")

	got := FormatConcat([]NetRef{WholeRef{Name: a}, BitRef{Name: b, Bit: 2}}, tbl)
	if want := "{a, b[2]}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatRefVariants(t *testing.T) {
	tbl := intern.New()
	id := tbl.IDOf("bus")

	cases := []struct {
		ref  NetRef
		want string
	}{
		{WholeRef{Name: id}, "bus"},
		{BitRef{Name: id, Bit: 2}, "bus[2]"},
		{RangeRef{Name: id, Beg: 3, End: 0}, "bus[3:0]"},
		{ConstRef{Value: Constant{Value: "4'b1010", Type: Binary}}, "4'b1010"},
	}
	for _, c := range cases {
		if got := FormatRef(c.ref, tbl); got != c.want {
			t.Errorf("FormatRef(%#v) = %q, want %q", c.ref, got, c.want)
		}
	}
}

func TestAssignmentFormat(t *testing.T) {
	tbl := intern.New()
	a := tbl.IDOf("a")
	y := tbl.IDOf("y")

	asg := Assignment{LHS: []NetRef{WholeRef{Name: y}}, RHS: []NetRef{WholeRef{Name: a}}}
	if got, want := asg.Format(tbl), "assign y = a;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInstanceFormatNamedAndPositional(t *testing.T) {
	tbl := intern.New()
	mod := tbl.IDOf("and_gate")
	inst := tbl.IDOf("g1")
	pa := tbl.IDOf("A")
	a := tbl.IDOf("a")

	named := Instance{
		ModuleName: mod,
		InstName:   inst,
		PinNames:   []NetRef{WholeRef{Name: pa}},
		NetNames:   [][]NetRef{{WholeRef{Name: a}}},
	}
	if got, want := named.Format(tbl), "and_gate g1 (.A(a));"; got != want {
		t.Errorf("named: got %q, want %q", got, want)
	}

	positional := Instance{
		ModuleName: mod,
		InstName:   inst,
		NetNames:   [][]NetRef{{WholeRef{Name: a}}},
	}
	if got, want := positional.Format(tbl), "and_gate g1 (a);"; got != want {
		t.Errorf("positional: got %q, want %q", got, want)
	}
}

func TestRangeScalar(t *testing.T) {
	if !(Range{Beg: -1, End: -1}).Scalar() {
		t.Errorf("expected {-1,-1} to be scalar")
	}
	if (Range{Beg: 3, End: 0}).Scalar() {
		t.Errorf("expected {3,0} to not be scalar")
	}
}
