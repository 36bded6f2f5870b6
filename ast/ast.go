// Package ast defines the data model emitted by the parser: module
// headers, ports, nets, continuous assignments, and instances, plus
// the net-reference sum type shared by all of them.
package ast

import "github.com/RazKarapetyan/Parser-Verilog/intern"

// ConstantType classifies a numeric or based literal.
type ConstantType int

const (
	NoConstant ConstantType = iota
	Integer
	Binary
	Octal
	Decimal
	Hex
	Real
	Exp
)

func (t ConstantType) String() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Binary:
		return "BINARY"
	case Octal:
		return "OCTAL"
	case Decimal:
		return "DECIMAL"
	case Hex:
		return "HEX"
	case Real:
		return "REAL"
	case Exp:
		return "EXP"
	default:
		return "NONE"
	}
}

// Constant is a literal exactly as it appeared in the source, tagged
// with its base family. Sized/based literals keep the size prefix and
// base-tagged digits together in Value.
type Constant struct {
	Value string
	Type  ConstantType
}

// PortDirection is a module port's direction.
type PortDirection int

const (
	Input PortDirection = iota
	Output
	Inout
)

func (d PortDirection) String() string {
	switch d {
	case Output:
		return "OUTPUT"
	case Inout:
		return "INOUT"
	default:
		return "INPUT"
	}
}

// ConnectionType is a port's net-kind binding (wire/reg), NONE when
// the declaration does not specify one.
type ConnectionType int

const (
	NoConnection ConnectionType = iota
	WireConnection
	RegConnection
)

func (c ConnectionType) String() string {
	switch c {
	case WireConnection:
		return "WIRE"
	case RegConnection:
		return "REG"
	default:
		return "NONE"
	}
}

// NetType is a net declaration's kind.
type NetType int

const (
	NoNetType NetType = iota
	RegNet
	WireNet
	WandNet
	WorNet
	TriNet
	TriorNet
	TriandNet
	Supply0Net
	Supply1Net
)

func (t NetType) String() string {
	switch t {
	case RegNet:
		return "REG"
	case WireNet:
		return "WIRE"
	case WandNet:
		return "WAND"
	case WorNet:
		return "WOR"
	case TriNet:
		return "TRI"
	case TriorNet:
		return "TRIOR"
	case TriandNet:
		return "TRIAND"
	case Supply0Net:
		return "SUPPLY0"
	case Supply1Net:
		return "SUPPLY1"
	default:
		return "NONE"
	}
}

// Range holds a declaration's bit range. Beg == End == -1 marks a
// scalar (unranged) declaration; a single index [k] is stored as
// Beg == End == k.
type Range struct {
	Beg, End int
}

// Scalar reports whether the range is the unranged sentinel.
func (r Range) Scalar() bool {
	return r.Beg == -1 && r.End == -1
}

// Port is one ANSI or non-ANSI port declaration. Names shares a single
// range across every identifier the declaration lists, e.g.
// `input [3:0] a, b;` emits one Port with Names == [a, b].
type Port struct {
	Names []intern.ID
	Range Range
	Dir   PortDirection
	Type  ConnectionType
}

// Net is one net declaration, sharing a range the same way Port does.
type Net struct {
	Names []intern.ID
	Range Range
	Type  NetType
}

// NetRef is the closed sum type used wherever a net expression
// appears: a bare identifier, a single bit, a bit range, or (in RHS
// and instance-connection contexts) a literal constant. The variant
// set is closed — refKind is unexported so no package outside ast can
// add a fifth case.
type NetRef interface {
	refKind()
}

// WholeRef is a bare identifier reference, e.g. `y`.
type WholeRef struct {
	Name intern.ID
}

func (WholeRef) refKind() {}

// BitRef is a single-bit reference, e.g. `b[2]`.
type BitRef struct {
	Name intern.ID
	Bit  int
}

func (BitRef) refKind() {}

// RangeRef is a bit-range reference, e.g. `c[3:0]`. Beg/End preserve
// source order; Beg may be less than End.
type RangeRef struct {
	Name     intern.ID
	Beg, End int
}

func (RangeRef) refKind() {}

// ConstRef wraps a literal appearing in an expression position.
type ConstRef struct {
	Value Constant
}

func (ConstRef) refKind() {}

// Assignment is one continuous `assign` statement. RHS may contain
// ConstRef; LHS never does (a concatenation cannot assign into a
// literal).
type Assignment struct {
	LHS []NetRef
	RHS []NetRef
}

// Instance is one module instantiation. When PinNames is non-empty the
// connections are named (`.pin(expr)`) and len(PinNames) ==
// len(NetNames); when PinNames is empty, NetNames is the positional
// connection list in source order. Each NetNames entry is itself an
// ordered list because a single connection may be a concatenation.
type Instance struct {
	ModuleName intern.ID
	InstName   intern.ID
	PinNames   []NetRef
	NetNames   [][]NetRef
}
