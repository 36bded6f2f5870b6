package ast

import (
	"strconv"
	"strings"

	"github.com/RazKarapetyan/Parser-Verilog/intern"
)

// FormatRef renders a single NetRef in canonical Verilog syntax: a bare
// name, `name[bit]`, `name[beg:end]`, or a literal's Value.
func FormatRef(ref NetRef, t *intern.Table) string {
	switch r := ref.(type) {
	case WholeRef:
		return t.View(r.Name)
	case BitRef:
		return t.View(r.Name) + "[" + strconv.Itoa(r.Bit) + "]"
	case RangeRef:
		return t.View(r.Name) + "[" + strconv.Itoa(r.Beg) + ":" + strconv.Itoa(r.End) + "]"
	case ConstRef:
		return r.Value.Value
	default:
		return "?"
	}
}

// FormatConcat renders an ordered list of NetRefs, collapsing a
// single-element list to the bare element and wrapping multi-element
// lists in braces, matching the source-level concatenation syntax. An
// empty list (an unconnected named port, `.Y()`) renders as the empty
// string rather than the misleading `{}`.
func FormatConcat(refs []NetRef, t *intern.Table) string {
	if len(refs) == 0 {
		return ""
	}
	if len(refs) == 1 {
		return FormatRef(refs[0], t)
	}
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = FormatRef(r, t)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Format renders a port declaration, e.g. `input [3:0] a, b`.
func (p *Port) Format(t *intern.Table) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(p.Dir.String()))
	if p.Type != NoConnection {
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(p.Type.String()))
	}
	if !p.Range.Scalar() {
		b.WriteString(" [" + strconv.Itoa(p.Range.Beg) + ":" + strconv.Itoa(p.Range.End) + "]")
	}
	b.WriteByte(' ')
	writeNames(&b, p.Names, t)
	return b.String()
}

// Format renders a net declaration, e.g. `wire [7:0] w`.
func (n *Net) Format(t *intern.Table) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(n.Type.String()))
	if !n.Range.Scalar() {
		b.WriteString(" [" + strconv.Itoa(n.Range.Beg) + ":" + strconv.Itoa(n.Range.End) + "]")
	}
	b.WriteByte(' ')
	writeNames(&b, n.Names, t)
	return b.String()
}

func writeNames(b *strings.Builder, names []intern.ID, t *intern.Table) {
	for i, id := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.View(id))
	}
}

// Format renders `assign lhs = rhs;`.
func (a *Assignment) Format(t *intern.Table) string {
	return "assign " + FormatConcat(a.LHS, t) + " = " + FormatConcat(a.RHS, t) + ";"
}

// Format renders `module_name inst_name ( ... );`, choosing named or
// positional connection syntax to match how the instance was parsed.
func (inst *Instance) Format(t *intern.Table) string {
	var b strings.Builder
	b.WriteString(t.View(inst.ModuleName))
	b.WriteByte(' ')
	b.WriteString(t.View(inst.InstName))
	b.WriteString(" (")
	if len(inst.PinNames) > 0 {
		for i, pin := range inst.PinNames {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('.')
			b.WriteString(FormatRef(pin, t))
			b.WriteByte('(')
			b.WriteString(FormatConcat(inst.NetNames[i], t))
			b.WriteByte(')')
		}
	} else {
		for i, nets := range inst.NetNames {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(FormatConcat(nets, t))
		}
	}
	b.WriteString(");")
	return b.String()
}
