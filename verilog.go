/*
Package verilog implements the core of a Verilog structural netlist
parser: a lexical scanner and a grammar-driven parser that recognize a
structural subset of Verilog (module headers, ports, nets, continuous
assignments, and instances) and deliver typed records to a host
application through the Emitter interface.

Out of scope: semantic elaboration, behavioral constructs (always,
initial, tasks, functions, timing, generate), preprocessing, and
pretty-printing back to source.

Typical usage:

	type myEmitter struct {
		table *intern.Table
	}
	func (e *myEmitter) Intern() *intern.Table    { return e.table }
	func (e *myEmitter) AddModule(name intern.ID) { ... }
	// AddPort, AddNet, AddAssignment and AddInstance likewise.

	d := verilog.NewDriver(&myEmitter{table: intern.New()})
	code := d.Read("design.v")
*/
package verilog

import (
	"github.com/RazKarapetyan/Parser-Verilog/ast"
)

// Emitter is the host callback surface (spec §6.2). See ast.Emitter
// for the full contract; it lives in package ast to avoid an import
// cycle between verilog (which depends on parser) and parser (which
// depends on the Emitter type).
type Emitter = ast.Emitter
