package main

import (
	"github.com/RazKarapetyan/Parser-Verilog/ast"
	"github.com/RazKarapetyan/Parser-Verilog/intern"
)

// event is one resolved (name-string, not intern.ID) record, shaped
// for JSON/msgpack encoding — the wire formats have no business
// carrying a process-local id space.
type event struct {
	Kind       string   `json:"kind" msgpack:"kind"`
	Module     string   `json:"module,omitempty" msgpack:"module,omitempty"`
	Text       string   `json:"text,omitempty" msgpack:"text,omitempty"`
	InstModule string   `json:"inst_module,omitempty" msgpack:"inst_module,omitempty"`
	InstName   string   `json:"inst_name,omitempty" msgpack:"inst_name,omitempty"`
	Names      []string `json:"names,omitempty" msgpack:"names,omitempty"`
}

// collectingEmitter records every emitted construct in source order,
// mirroring original_source/example/sample_parser.cpp's SampleParser:
// a struct implementing the callback interface, storing each record in a
// slice, printing as it goes.
type collectingEmitter struct {
	table   *intern.Table
	ports   []ast.Port
	nets    []ast.Net
	assigns []ast.Assignment
	insts   []ast.Instance
	events  []event
	print   func(string)
}

func newCollectingEmitter(print func(string)) *collectingEmitter {
	return &collectingEmitter{table: intern.New(), print: print}
}

func (e *collectingEmitter) Intern() *intern.Table { return e.table }

func (e *collectingEmitter) AddModule(name intern.ID) {
	text := e.table.View(name)
	e.print("module " + text)
	e.events = append(e.events, event{Kind: "module", Module: text})
}

func (e *collectingEmitter) AddPort(port ast.Port) {
	e.ports = append(e.ports, port)
	e.print(port.Format(e.table))
	e.events = append(e.events, event{Kind: "port", Text: port.Format(e.table), Names: viewAll(e.table, port.Names)})
}

func (e *collectingEmitter) AddNet(net ast.Net) {
	e.nets = append(e.nets, net)
	e.print(net.Format(e.table))
	e.events = append(e.events, event{Kind: "net", Text: net.Format(e.table), Names: viewAll(e.table, net.Names)})
}

func (e *collectingEmitter) AddAssignment(a ast.Assignment) {
	e.assigns = append(e.assigns, a)
	e.print(a.Format(e.table))
	e.events = append(e.events, event{Kind: "assignment", Text: a.Format(e.table)})
}

func (e *collectingEmitter) AddInstance(inst ast.Instance) {
	e.insts = append(e.insts, inst)
	e.print(inst.Format(e.table))
	e.events = append(e.events, event{
		Kind:       "instance",
		Text:       inst.Format(e.table),
		InstModule: e.table.View(inst.ModuleName),
		InstName:   e.table.View(inst.InstName),
	})
}

func viewAll(t *intern.Table, ids []intern.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = t.View(id)
	}
	return out
}
