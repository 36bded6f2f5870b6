package ast

import "github.com/RazKarapetyan/Parser-Verilog/intern"

// Emitter is the host callback surface (spec §6.2). The parser invokes
// exactly one of these five methods per recognized construct, in
// source order, transferring ownership of the record to the host.
// Intern gives the host read access to the shared Name Table, which
// the Emitter owns for the lifetime of one parse.
//
// Defined here rather than in the root verilog package so that the
// parser package can depend on it without creating an import cycle
// with verilog, which depends on parser to build its Driver.
type Emitter interface {
	AddModule(name intern.ID)
	AddPort(port Port)
	AddNet(net Net)
	AddAssignment(a Assignment)
	AddInstance(inst Instance)
	Intern() *intern.Table
}
